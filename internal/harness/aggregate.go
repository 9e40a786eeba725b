package harness

// PhaseTotals is the harness-wide sum for one phase plus the per-thread
// breakdown. Summation is commutative, so the totals are independent of
// the order workers finished in.
type PhaseTotals struct {
	Cycles    uint64   `json:"cycles"`
	PerThread []uint64 `json:"per_thread_cycles"`
	Ops       int      `json:"ops"`
	Failures  int      `json:"failures"`
}

func aggregate(results []phaseResult) PhaseTotals {
	t := PhaseTotals{PerThread: make([]uint64, len(results))}
	for _, pr := range results {
		t.Cycles += pr.cycles
		t.PerThread[pr.thread] = pr.cycles
		t.Ops += pr.ops
		t.Failures += pr.failures
	}
	return t
}
