//go:build arm64

package cycles

// Now returns the current value of the virtual counter (CNTVCT_EL0).
// The counter runs at a fixed frequency independent of CPU clock scaling.
//
//go:noescape
func Now() uint64
