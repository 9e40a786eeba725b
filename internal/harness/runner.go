package harness

import (
	"github.com/joshuapare/mapbench/internal/logging"
	"github.com/joshuapare/mapbench/internal/spinbarrier"
	"github.com/joshuapare/mapbench/internal/vmem"
)

// Runner phases. A runner moves strictly forward; Run is one-shot.
type state int

const (
	stateConfiguring state = iota
	stateAllocate
	stateDeallocate
	stateReporting
	stateDone
)

// Runner owns one benchmark run: it validates the configuration, spawns
// the allocate-phase workers behind the start gate, joins them, repeats
// for the deallocate phase over the same per-thread record slices, and
// aggregates per-thread cycle totals into a Report.
type Runner struct {
	cfg    Config
	mapper vmem.Mapper
	gate   *spinbarrier.Gate
	st     *stats
	arena  *recordArena
	state  state
}

// New validates cfg and returns a runner using the given mapper. A nil
// mapper means the host kernel (vmem.System).
func New(cfg Config, mapper vmem.Mapper) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if mapper == nil {
		mapper = vmem.System{}
	}
	return &Runner{
		cfg:    cfg,
		mapper: mapper,
		gate:   spinbarrier.New(cfg.Threads, cfg.Wait),
		st:     newStats(),
	}, nil
}

// Run executes both phases to completion and returns the report. Fatal
// errors (setup only; configuration was settled in New) abort before any
// phase starts. Per-operation mapping and unmapping failures never abort;
// they surface in the report.
func (r *Runner) Run() (*Report, error) {
	if r.state != stateConfiguring {
		return nil, &Error{Kind: ErrKindSetup, Msg: "runner already consumed"}
	}

	arena, err := newRecordArena(r.cfg.Threads, r.cfg.OpsPerThread())
	if err != nil {
		return nil, err
	}
	r.arena = arena

	r.state = stateAllocate
	logging.L.Debug("allocate phase",
		"threads", r.cfg.Threads, "ops_per_thread", r.cfg.OpsPerThread(),
		"op_size", r.cfg.OpSize(), "pages", r.cfg.Mode.String())
	allocTotals := r.runPhase(r.allocWorker)

	r.gate.Reset()

	r.state = stateDeallocate
	logging.L.Debug("deallocate phase", "threads", r.cfg.Threads)
	deallocTotals := r.runPhase(r.deallocWorker)

	r.state = stateReporting
	rep := r.buildReport(allocTotals, deallocTotals)

	r.state = stateDone
	return rep, nil
}

// runPhase spawns one worker per thread over its record slice, releases
// the gate only after every worker has reached its poll loop, then joins
// them and folds the per-thread results.
func (r *Runner) runPhase(worker func(id int, slots []Record, out chan<- phaseResult)) PhaseTotals {
	out := make(chan phaseResult, r.cfg.Threads)
	for id := 0; id < r.cfg.Threads; id++ {
		go worker(id, r.arena.thread(id), out)
	}
	r.gate.AwaitArrivals()
	r.gate.Release()

	results := make([]phaseResult, r.cfg.Threads)
	for i := 0; i < r.cfg.Threads; i++ {
		pr := <-out
		results[pr.thread] = pr
	}
	return aggregate(results)
}
