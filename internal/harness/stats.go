package harness

import (
	"github.com/intuitivelabs/counters"
)

// stats is the registered counter group for one runner. Counters are
// atomic, so workers bump them directly; they are read only after both
// phases join.
type stats struct {
	grp *counters.Group

	hAllocAttempts counters.Handle
	hAllocFails    counters.Handle
	hUnmapCalls    counters.Handle
	hUnmapFails    counters.Handle
}

func newStats() *stats {
	st := &stats{}
	defs := [...]counters.Def{
		{H: &st.hAllocAttempts, Name: "alloc_attempts",
			Desc: "mapping operations attempted"},
		{H: &st.hAllocFails, Name: "alloc_fails",
			Desc: "mapping operations that returned a failure"},
		{H: &st.hUnmapCalls, Name: "unmap_calls",
			Desc: "unmapping operations attempted"},
		{H: &st.hUnmapFails, Name: "unmap_fails",
			Desc: "unmapping operations that returned a failure (region leaked)"},
	}
	// Each runner owns a private, unregistered group. Registering by name
	// (counters.NewGroup) returns the existing group on a name collision,
	// which would make every runner in the process share and accumulate
	// the same counters.
	st.grp = &counters.Group{}
	st.grp.Init("mapbench", nil, len(defs))
	if !st.grp.RegisterDefs(defs[:]) {
		panic("harness: failed to register counters")
	}
	return st
}

func (st *stats) allocAttempts() uint64 { return uint64(st.grp.Get(st.hAllocAttempts)) }
func (st *stats) allocFails() uint64    { return uint64(st.grp.Get(st.hAllocFails)) }
func (st *stats) unmapCalls() uint64    { return uint64(st.grp.Get(st.hUnmapCalls)) }
func (st *stats) unmapFails() uint64    { return uint64(st.grp.Get(st.hUnmapFails)) }
