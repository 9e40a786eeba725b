//go:build linux

package harness

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/mapbench/internal/vmem"
)

// End-to-end against the real kernel interface, sized small enough to run
// anywhere.
func TestRunAgainstKernel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	page := uint64(os.Getpagesize())
	cfg := Config{
		TotalBytes: 8 * 4 * page, // 4 pages per op
		Ops:        8,
		Threads:    2,
		Populate:   true,
		KeepAddrs:  true,
	}
	r, err := New(cfg, vmem.System{})
	require.NoError(t, err)
	rep, err := r.Run()
	require.NoError(t, err)

	assert.Equal(t, uint64(8), rep.AllocAttempts)
	assert.Equal(t, uint64(0), rep.AllocFails)
	assert.Equal(t, uint64(0), rep.UnmapFails)
	assert.Positive(t, rep.Alloc.Cycles)
	assert.Positive(t, rep.Dealloc.Cycles)
	assert.Len(t, rep.Addresses, 8)
}
