//go:build amd64

package cycles

// Now returns the current value of the time-stamp counter (RDTSC).
//
//go:noescape
func Now() uint64
