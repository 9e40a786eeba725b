// Package vmem wraps the virtual-memory mapping primitives the benchmark
// measures: anonymous mmap/munmap with configurable page-size policy and
// advisory placement hints.
package vmem

import (
	"errors"
	"os"
)

// HugePageSize is the hugetlb granularity requested in PageHuge mode.
// 2 MiB is the base huge-page size on x86-64 and the common arm64 config.
const HugePageSize uintptr = 2 << 20

// ErrUnsupported is returned by System on platforms without the required
// mapping syscalls.
var ErrUnsupported = errors.New("vmem: anonymous mapping not supported on this platform")

// PageMode selects the page granularity of a mapping.
type PageMode int

const (
	// PageDefault uses the platform base page size.
	PageDefault PageMode = iota
	// PageHuge requests hugetlb-backed pages (MAP_HUGETLB).
	PageHuge
)

func (m PageMode) String() string {
	if m == PageHuge {
		return "huge"
	}
	return "default"
}

// Granularity returns the page size active under this mode.
func (m PageMode) Granularity() uintptr {
	if m == PageHuge {
		return HugePageSize
	}
	return uintptr(os.Getpagesize())
}

// Request describes one mapping operation.
type Request struct {
	Size     uintptr  // bytes, must be positive
	Mode     PageMode // page granularity policy
	Hint     uintptr  // advisory placement address; 0 lets the kernel choose
	Populate bool     // pre-fault pages so allocation cost includes population
}

// Region is a successfully mapped range. The zero Region is the sentinel
// for "no mapping".
type Region struct {
	Addr uintptr
	Size uintptr
}

// Valid reports whether r refers to an actual mapping.
func (r Region) Valid() bool {
	return r.Addr != 0
}

// Mapper is the kernel interface the harness times. System is the real
// implementation; tests substitute fakes.
type Mapper interface {
	// Map creates an anonymous private read/write mapping. A failed
	// request returns the zero Region and a non-nil error; the error is
	// per-operation data for the harness, never fatal to it.
	Map(req Request) (Region, error)
	// Unmap releases a region previously returned by Map.
	Unmap(r Region) error
}

// System maps through the host kernel.
type System struct{}

var _ Mapper = System{}

// AlignUp rounds v up to the next multiple of align (a power of two).
func AlignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}

// AlignDown rounds v down to a multiple of align (a power of two).
func AlignDown(v, align uintptr) uintptr {
	return v &^ (align - 1)
}
