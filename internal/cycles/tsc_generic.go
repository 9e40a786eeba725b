//go:build !amd64 && !arm64

package cycles

import "time"

var base = time.Now()

// Now falls back to monotonic-clock nanoseconds on architectures without a
// wired cycle-counter reader. Same contract, coarser resolution.
func Now() uint64 {
	return uint64(time.Since(base))
}
