// Package spinbarrier provides the synchronized-start gate for benchmark
// worker threads.
//
// The gate is a single release flag polled by workers. Polling (rather than
// blocking on a channel or condition variable) is deliberate: the
// measurement depends on every thread entering its timed region the moment
// the controller releases the gate, without scheduler wake-up latency in
// between. The controller confirms every worker has arrived at its poll
// loop before releasing, so no thread's timed region can start early and
// skew the aggregate.
package spinbarrier

import (
	"runtime"
	"sync/atomic"
)

// WaitPolicy selects how workers poll for release.
type WaitPolicy int

const (
	// WaitSpin busy-loops on the flag. Lowest release-to-start latency;
	// burns a core per waiter. The benchmark default.
	WaitSpin WaitPolicy = iota
	// WaitYield calls runtime.Gosched between polls. CPU-friendlier, at
	// the cost of scheduler latency on release.
	WaitYield
)

func (p WaitPolicy) String() string {
	switch p {
	case WaitSpin:
		return "spin"
	case WaitYield:
		return "yield"
	}
	return "unknown"
}

// Gate releases a fixed set of workers simultaneously.
//
// Protocol: the controller constructs the gate for n workers; each worker
// calls Wait (which registers its arrival, then polls); the controller
// calls AwaitArrivals and only then Release. Reset rearms the gate for the
// next phase with the same worker count.
type Gate struct {
	expected int32
	arrivals atomic.Int32
	released atomic.Bool
	policy   WaitPolicy
}

// New returns a gate expecting n workers, initially not released.
func New(n int, policy WaitPolicy) *Gate {
	return &Gate{expected: int32(n), policy: policy}
}

// Wait registers this worker's arrival and polls until the gate is
// released. It returns as soon as the release flag is observed.
func (g *Gate) Wait() {
	g.arrivals.Add(1)
	for !g.released.Load() {
		if g.policy == WaitYield {
			runtime.Gosched()
		}
	}
}

// AwaitArrivals blocks until every expected worker has entered Wait.
// Must be called before Release; releasing earlier would let some workers
// start their timed region before others exist.
func (g *Gate) AwaitArrivals() {
	for g.arrivals.Load() < g.expected {
		runtime.Gosched()
	}
}

// Release opens the gate. All current and future waiters return.
func (g *Gate) Release() {
	g.released.Store(true)
}

// Reset rearms the gate between phases. The caller must ensure no worker
// is still inside Wait (the controller joins all workers first).
func (g *Gate) Reset() {
	g.arrivals.Store(0)
	g.released.Store(false)
}

// Arrived reports how many workers have reached their poll loop.
func (g *Gate) Arrived() int {
	return int(g.arrivals.Load())
}
