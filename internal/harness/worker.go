package harness

import (
	"runtime"

	"github.com/joshuapare/mapbench/internal/cycles"
	"github.com/joshuapare/mapbench/internal/logging"
	"github.com/joshuapare/mapbench/internal/vmem"
)

// phaseResult is one worker's contribution, handed back over the results
// channel after its batch completes. Totals are never accumulated in
// shared state; the controller folds these after join.
type phaseResult struct {
	thread   int
	cycles   uint64
	ops      int // successful operations
	failures int
}

// hintSpan returns the address range one thread's cursor may descend
// through, so per-thread cursors never suggest overlapping placements.
func (c Config) hintSpan() uintptr {
	return vmem.AlignUp(c.OpSize(), c.Mode.Granularity()) * uintptr(c.OpsPerThread())
}

// allocWorker performs thread id's share of the allocate phase: wait for
// the gate once, then map, time, and record each operation. A failed
// mapping leaves its slot zero and the batch continues.
func (r *Runner) allocWorker(id int, slots []Record, out chan<- phaseResult) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var cursor *vmem.Cursor
	if r.cfg.HintBase != 0 {
		// Threads whose slice of the hint range would start below zero
		// run without hints rather than with wrapped garbage addresses.
		span := r.cfg.hintSpan()
		offset := uintptr(id) * span
		if overflowed := id > 0 && offset/uintptr(id) != span; !overflowed && offset < r.cfg.HintBase {
			cursor = vmem.NewCursor(r.cfg.HintBase-offset, r.cfg.Mode)
		}
	}

	res := phaseResult{thread: id}
	size := r.cfg.OpSize()

	r.gate.Wait()
	for i := range slots {
		req := vmem.Request{
			Size:     size,
			Mode:     r.cfg.Mode,
			Populate: r.cfg.Populate,
		}
		if cursor != nil {
			req.Hint = cursor.Next(size)
		}

		start := cycles.Now()
		region, err := r.mapper.Map(req)
		res.cycles += cycles.Since(start)

		r.st.grp.Inc(r.st.hAllocAttempts)
		if err != nil {
			res.failures++
			r.st.grp.Inc(r.st.hAllocFails)
			logging.L.Debug("mapping failed", "thread", id, "op", i, "err", err)
			continue
		}
		slots[i] = Record{Region: region}
		res.ops++
	}
	out <- res
}

// deallocWorker unmaps the records thread id produced, in order, timing
// each call. Failed allocation slots are skipped; a failed unmap is
// counted and logged (the region leaks for the rest of the run) but never
// aborts the phase.
func (r *Runner) deallocWorker(id int, slots []Record, out chan<- phaseResult) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	res := phaseResult{thread: id}

	r.gate.Wait()
	for i := range slots {
		if !slots[i].OK() {
			continue
		}

		start := cycles.Now()
		err := r.mapper.Unmap(slots[i].Region)
		res.cycles += cycles.Since(start)

		r.st.grp.Inc(r.st.hUnmapCalls)
		if err != nil {
			res.failures++
			r.st.grp.Inc(r.st.hUnmapFails)
			logging.L.Warn("unmap failed, region leaked",
				"thread", id, "op", i,
				"addr", slots[i].Region.Addr, "size", slots[i].Region.Size,
				"err", err)
			continue
		}
		res.ops++
	}
	out <- res
}
