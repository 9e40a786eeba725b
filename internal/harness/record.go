package harness

import "github.com/joshuapare/mapbench/internal/vmem"

// maxRecords bounds the bookkeeping arena. Beyond this the arena itself
// would rival the mappings under test; treat it as resource exhaustion
// rather than letting make() abort the process.
const maxRecords = 1 << 28

// Record is one allocation slot: the mapped region for a successful
// operation, or the zero value for a failed one. A record is written once
// by the allocating worker and consumed once by the deallocating worker of
// the same thread index; it is never shared between threads.
type Record struct {
	Region vmem.Region
}

// OK reports whether the slot holds a live mapping.
func (r Record) OK() bool {
	return r.Region.Valid()
}

// recordArena is the backing store for all allocation records, carved into
// per-thread sub-slices by index range. Ownership is partitioned by range,
// so no synchronization exists on the arena itself.
type recordArena struct {
	slots     []Record
	perThread int
}

func newRecordArena(threads, perThread int) (*recordArena, error) {
	total := threads * perThread
	if total/threads != perThread || total > maxRecords {
		return nil, &Error{
			Kind: ErrKindSetup,
			Msg:  "record arena too large for bookkeeping",
		}
	}
	return &recordArena{
		slots:     make([]Record, total),
		perThread: perThread,
	}, nil
}

// thread returns the slice owned by worker id for both phases.
func (a *recordArena) thread(id int) []Record {
	return a.slots[id*a.perThread : (id+1)*a.perThread]
}
