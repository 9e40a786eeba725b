package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/mapbench/internal/harness"
	"github.com/joshuapare/mapbench/internal/logging"
)

// Exit codes. Missing or invalid configuration gets its own code so
// wrapping scripts can tell a usage mistake from a failed run.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "mapbench",
	Short: "Measure virtual-memory mapping and unmapping latency",
	Long: `mapbench is a micro-benchmark harness for kernel memory-allocation
subsystems. It drives worker threads through a synchronized-start allocate
phase and a matching deallocate phase, timing each mmap and munmap with the
hardware cycle counter and reporting aggregate cycle totals.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logging.Init(logging.Options{
			Enabled: !quiet,
			Level:   level,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.SilenceUsage = true
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if harness.IsKind(err, harness.ErrKindConfig) {
			os.Exit(exitUsage)
		}
		os.Exit(exitError)
	}
	os.Exit(exitOK)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
