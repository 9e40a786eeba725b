//go:build linux

package vmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Map issues an anonymous private mmap. A non-zero req.Hint is passed as
// the requested address without MAP_FIXED, so the kernel is free to place
// the mapping elsewhere.
func (System) Map(req Request) (Region, error) {
	if req.Size == 0 {
		return Region{}, fmt.Errorf("vmem: zero-size mapping request")
	}
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS
	if req.Populate {
		flags |= unix.MAP_POPULATE
	}
	if req.Mode == PageHuge {
		flags |= unix.MAP_HUGETLB
	}
	addr, _, errno := unix.Syscall6(unix.SYS_MMAP,
		req.Hint,
		req.Size,
		uintptr(unix.PROT_READ|unix.PROT_WRITE),
		uintptr(flags),
		^uintptr(0), // fd -1 for anonymous
		0)
	if errno != 0 {
		return Region{}, fmt.Errorf("vmem: mmap %d bytes (%s pages): %w", req.Size, req.Mode, errno)
	}
	return Region{Addr: addr, Size: req.Size}, nil
}

// Unmap releases a mapped region.
func (System) Unmap(r Region) error {
	if !r.Valid() {
		return fmt.Errorf("vmem: unmap of invalid region")
	}
	if _, _, errno := unix.Syscall(unix.SYS_MUNMAP, r.Addr, r.Size, 0); errno != 0 {
		return fmt.Errorf("vmem: munmap %#x (%d bytes): %w", r.Addr, r.Size, errno)
	}
	return nil
}
