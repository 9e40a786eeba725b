package vmem

// DefaultHintBase is the placement origin used when hint mode is enabled
// without an explicit base. It sits in the middle of the canonical user
// address range, clear of the heap and the usual library mappings.
const DefaultHintBase uintptr = 0x7f5707200000

// Cursor produces a descending sequence of aligned placement hints so that
// successive requests from one thread never suggest overlapping ranges.
//
// A cursor is owned by exactly one worker and must not be shared. The hint
// is advisory: the cursor advances after every request whether or not the
// kernel honored it, so the sequence stays collision-free among the
// requests themselves.
type Cursor struct {
	next uintptr
	mode PageMode
}

// NewCursor returns a cursor starting at base, or DefaultHintBase if base
// is zero. Hints are aligned to the mode's page granularity.
func NewCursor(base uintptr, mode PageMode) *Cursor {
	if base == 0 {
		base = DefaultHintBase
	}
	return &Cursor{next: AlignDown(base, mode.Granularity()), mode: mode}
}

// Next returns the hint for a request of the given size and advances the
// cursor downward by the size rounded up to the page granularity. A cursor
// that would descend past zero is exhausted: it returns zero from then on,
// which disables the hint and lets the kernel place the mapping.
func (c *Cursor) Next(size uintptr) uintptr {
	hint := c.next
	step := AlignUp(size, c.mode.Granularity())
	if c.next > step {
		c.next = AlignDown(c.next-step, c.mode.Granularity())
	} else {
		c.next = 0
	}
	return hint
}
