// Package cycles reads the hardware cycle counter for sub-microsecond
// latency measurement.
//
// Now returns an opaque, monotonically non-decreasing 64-bit count. Two
// reads bracketing an operation yield elapsed cycles via Since; the
// subtraction is unsigned, so counter wraparound produces a correct small
// delta rather than an error. The counter unit is processor cycles on
// amd64 (RDTSC), fixed-frequency timer ticks on arm64 (CNTVCT_EL0), and
// monotonic-clock nanoseconds elsewhere. Values are only meaningful
// relative to each other within one process run.
package cycles

// Since returns the cycles elapsed since start, tolerating wraparound.
func Since(start uint64) uint64 {
	return Now() - start
}
