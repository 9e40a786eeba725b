package harness

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is the outcome of one run: cycle totals per phase, the operation
// shape they were measured under, and the failure tallies. Addresses of
// successful mappings are retained only when the configuration asked for
// them.
type Report struct {
	TotalBytes uint64 `json:"total_bytes"`
	OpSize     uint64 `json:"op_size_bytes"`
	Ops        int    `json:"ops"`
	Threads    int    `json:"threads"`
	PageMode   string `json:"page_mode"`

	Alloc   PhaseTotals `json:"alloc"`
	Dealloc PhaseTotals `json:"dealloc"`

	AllocAttempts uint64 `json:"alloc_attempts"`
	AllocFails    uint64 `json:"alloc_fails"`
	UnmapCalls    uint64 `json:"unmap_calls"`
	UnmapFails    uint64 `json:"unmap_fails"`

	Addresses []string `json:"addresses,omitempty"`
}

func (r *Runner) buildReport(alloc, dealloc PhaseTotals) *Report {
	rep := &Report{
		TotalBytes: r.cfg.TotalBytes,
		OpSize:     uint64(r.cfg.OpSize()),
		Ops:        r.cfg.Ops,
		Threads:    r.cfg.Threads,
		PageMode:   r.cfg.Mode.String(),

		Alloc:   alloc,
		Dealloc: dealloc,

		AllocAttempts: r.st.allocAttempts(),
		AllocFails:    r.st.allocFails(),
		UnmapCalls:    r.st.unmapCalls(),
		UnmapFails:    r.st.unmapFails(),
	}
	if r.cfg.KeepAddrs {
		for _, rec := range r.arena.slots {
			if rec.OK() {
				rep.Addresses = append(rep.Addresses, fmt.Sprintf("%#x", rec.Region.Addr))
			}
		}
	}
	return rep
}

// Render writes the human-readable report. Cycle counts are printed with
// digit grouping; the two "done in" lines mirror what downstream result
// scrapers expect.
func (rep *Report) Render(w io.Writer) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Allocation done in %d cycles\n", rep.Alloc.Cycles)
	for _, addr := range rep.Addresses {
		fmt.Fprintln(w, addr)
	}
	p.Fprintf(w, "Unmap done in %d cycles\n", rep.Dealloc.Cycles)

	p.Fprintf(w, "%d threads, %d ops of %d bytes (%s pages)\n",
		rep.Threads, rep.Ops, rep.OpSize, rep.PageMode)
	if rep.AllocFails > 0 {
		p.Fprintf(w, "%d of %d mapping operations failed\n", rep.AllocFails, rep.AllocAttempts)
	}
	if rep.UnmapFails > 0 {
		p.Fprintf(w, "%d of %d unmap operations failed (regions leaked)\n", rep.UnmapFails, rep.UnmapCalls)
	}
}
