package harness

import (
	"fmt"

	"github.com/joshuapare/mapbench/internal/spinbarrier"
	"github.com/joshuapare/mapbench/internal/vmem"
)

// Config fixes the shape of one benchmark run. Every derived quantity
// (per-thread operation count, per-operation size) is settled by Validate
// before the first worker spawns; nothing about the workload changes after
// the start gate opens.
type Config struct {
	TotalBytes uint64                 // total address space to allocate across all operations
	Ops        int                    // number of discrete mapping operations
	Threads    int                    // worker threads; Ops must divide evenly across them
	Mode       vmem.PageMode          // page granularity policy
	Populate   bool                   // pre-fault pages (MAP_POPULATE)
	HintBase   uintptr                // non-zero enables per-thread descending hint cursors
	Wait       spinbarrier.WaitPolicy // start-gate poll policy
	KeepAddrs  bool                   // retain successful mapping addresses on the report
}

func configErrorf(format string, args ...any) error {
	return &Error{Kind: ErrKindConfig, Msg: fmt.Sprintf(format, args...)}
}

// Validate checks the run invariants. Violations are fatal configuration
// errors reported before any thread is spawned.
func (c Config) Validate() error {
	if c.Threads <= 0 {
		return configErrorf("thread count must be positive, got %d", c.Threads)
	}
	if c.Ops <= 0 {
		return configErrorf("operation count must be positive, got %d", c.Ops)
	}
	if c.Ops%c.Threads != 0 {
		return configErrorf("operation count %d not evenly divisible by thread count %d", c.Ops, c.Threads)
	}
	if c.TotalBytes == 0 {
		return configErrorf("total size must be positive")
	}
	if c.TotalBytes%uint64(c.Ops) != 0 {
		return configErrorf("total size %d not evenly divisible by operation count %d", c.TotalBytes, c.Ops)
	}
	opSize := c.TotalBytes / uint64(c.Ops)
	if opSize > uint64(^uintptr(0)) {
		// Only reachable on 32-bit platforms; OpSize would truncate.
		return configErrorf("per-operation size %d exceeds the platform address size", opSize)
	}
	gran := c.Mode.Granularity()
	if uintptr(opSize)%gran != 0 {
		return configErrorf("per-operation size %d not a multiple of the %s page size %d",
			opSize, c.Mode, gran)
	}
	return nil
}

// OpsPerThread returns each worker's share of the operations. Only valid
// after Validate has passed.
func (c Config) OpsPerThread() int {
	return c.Ops / c.Threads
}

// OpSize returns the size of each mapping operation in bytes.
func (c Config) OpSize() uintptr {
	return uintptr(c.TotalBytes / uint64(c.Ops))
}
