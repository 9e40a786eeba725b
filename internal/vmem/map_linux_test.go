//go:build linux

package vmem

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemMapUnmap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	var sys System
	page := uintptr(os.Getpagesize())

	r, err := sys.Map(Request{Size: 4 * page})
	require.NoError(t, err)
	require.True(t, r.Valid())
	assert.Zero(t, r.Addr%page, "mapping must be page aligned")

	// The region must actually be writable.
	*(*byte)(unsafe.Pointer(r.Addr)) = 0x42
	*(*byte)(unsafe.Pointer(r.Addr + r.Size - 1)) = 0x42

	require.NoError(t, sys.Unmap(r))
}

func TestSystemMapHintAdvisory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	var sys System
	page := uintptr(os.Getpagesize())

	r, err := sys.Map(Request{Size: page, Hint: DefaultHintBase})
	require.NoError(t, err)
	require.True(t, r.Valid())
	// The kernel may place the mapping elsewhere; only validity is
	// guaranteed, not the address.
	require.NoError(t, sys.Unmap(r))
}

func TestSystemMapZeroSize(t *testing.T) {
	var sys System
	_, err := sys.Map(Request{Size: 0})
	assert.Error(t, err)
}

func TestSystemMapImpossibleSize(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	var sys System
	// More than the 47-bit user address space; must fail cleanly.
	_, err := sys.Map(Request{Size: 1 << 55})
	assert.Error(t, err)
}

func TestSystemUnmapInvalidRegion(t *testing.T) {
	var sys System
	assert.Error(t, sys.Unmap(Region{}))
}
