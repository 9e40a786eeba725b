package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mapbench/internal/harness"
	"github.com/joshuapare/mapbench/internal/spinbarrier"
	"github.com/joshuapare/mapbench/internal/vmem"
)

var (
	runHint     bool
	runHintBase string
	runPopulate bool
	runWait     string
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runHint, "hint", false, "Pass descending per-thread placement hints to mmap")
	cmd.Flags().StringVar(&runHintBase, "hint-base", "", "Hint origin address in hex (implies --hint)")
	cmd.Flags().BoolVar(&runPopulate, "populate", true, "Pre-fault pages (MAP_POPULATE)")
	cmd.Flags().StringVar(&runWait, "wait", "spin", "Start-gate wait policy: spin or yield")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <size-gb> <ops> <threads> [huge]",
		Short: "Run one allocate/deallocate benchmark",
		Long: `The run command maps <size-gb> GiB of anonymous memory in <ops> equal
operations spread across <threads> worker threads, then unmaps it the same
way, timing every operation with the cycle counter. Passing "huge" as the
fourth argument requests hugetlb-backed pages.

Example:
  mapbench run 4 4 4
  mapbench run 16 32 8 huge
  mapbench run 4 4 1 --hint --wait yield`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 || len(args) > 4 {
				return usageErrorf("expected <size-gb> <ops> <threads> [huge], got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
}

func usageErrorf(format string, args ...any) error {
	return &harness.Error{Kind: harness.ErrKindConfig, Msg: fmt.Sprintf(format, args...)}
}

// buildConfig turns the positional arguments and run flags into a
// validated-shape Config. Validation itself happens in harness.New.
func buildConfig(args []string) (harness.Config, error) {
	var cfg harness.Config

	sizeGB, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return cfg, usageErrorf("size must be a whole number of GiB: %q", args[0])
	}
	ops, err := strconv.Atoi(args[1])
	if err != nil {
		return cfg, usageErrorf("operation count must be an integer: %q", args[1])
	}
	threads, err := strconv.Atoi(args[2])
	if err != nil {
		return cfg, usageErrorf("thread count must be an integer: %q", args[2])
	}
	if len(args) == 4 {
		if args[3] != "huge" {
			return cfg, usageErrorf("fourth argument must be \"huge\", got %q", args[3])
		}
		cfg.Mode = vmem.PageHuge
	}

	cfg.TotalBytes = sizeGB << 30
	cfg.Ops = ops
	cfg.Threads = threads
	cfg.Populate = runPopulate

	switch runWait {
	case "spin":
		cfg.Wait = spinbarrier.WaitSpin
	case "yield":
		cfg.Wait = spinbarrier.WaitYield
	default:
		return cfg, usageErrorf("wait policy must be spin or yield, got %q", runWait)
	}

	if runHintBase != "" {
		base, err := strconv.ParseUint(runHintBase, 0, 64)
		if err != nil {
			return cfg, usageErrorf("hint base must be an address: %q", runHintBase)
		}
		cfg.HintBase = uintptr(base)
	} else if runHint {
		cfg.HintBase = vmem.DefaultHintBase
	}

	// Addresses are echoed in hint mode (and under --verbose), matching
	// what result-scraping scripts consume.
	cfg.KeepAddrs = cfg.HintBase != 0 || verbose

	return cfg, nil
}

func runRun(args []string) error {
	cfg, err := buildConfig(args)
	if err != nil {
		return err
	}

	r, err := harness.New(cfg, nil)
	if err != nil {
		return err
	}
	rep, err := r.Run()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(rep)
	}
	rep.Render(os.Stdout)
	return nil
}
