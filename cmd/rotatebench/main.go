package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/oisee/rotate/pkg/bench"
	"github.com/oisee/rotate/pkg/oracle"
	"github.com/oisee/rotate/pkg/tune"
)

func main() {
	defer glog.Flush()

	rootCmd := &cobra.Command{
		Use:   "rotatebench",
		Short: "Rotation algorithm benchmark, verification, and threshold tuning",
	}

	rootCmd.AddCommand(newBenchCmd(), newVerifyCmd(), newTuneCmd())

	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("%v", err)
		os.Exit(1)
	}
}

func newBenchCmd() *cobra.Command {
	var (
		numWorkers      int
		maxSize         int
		sizesFlag       string
		minDuration     time.Duration
		includeBuffered bool
		verbose         bool
		output          string
		checkpointPath  string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sweep every rotation algorithm across a size/left matrix and report timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := resolveSizes(sizesFlag, maxSize)
			if err != nil {
				return fmt.Errorf("parsing --sizes: %w", err)
			}

			var resume *bench.Checkpoint
			if checkpointPath != "" {
				ckpt, err := bench.LoadCheckpoint(checkpointPath)
				if err != nil {
					glog.Warningf("could not load checkpoint %q, starting fresh: %v", checkpointPath, err)
				} else {
					resume = ckpt
				}
			}

			fmt.Printf("Rotation benchmark\n")
			fmt.Printf("  Workers: %d\n", workersOrNumCPU(numWorkers))
			fmt.Printf("  Include buffered algorithms: %v\n\n", includeBuffered)

			table := bench.Run(cmd.Context(), bench.Config{
				Sizes:           sizes,
				NumWorkers:      numWorkers,
				MinDuration:     minDuration,
				IncludeBuffered: includeBuffered,
				Verbose:         verbose,
				Resume:          resume,
			})

			if err := table.WriteText(os.Stdout); err != nil {
				return err
			}

			fmt.Printf("\nFastest algorithm per case:\n")
			fastest := bench.NewTable()
			for _, r := range table.Fastest() {
				fastest.Add(r)
			}
			if err := fastest.WriteText(os.Stdout); err != nil {
				return err
			}

			if checkpointPath != "" {
				ckpt := &bench.Checkpoint{Results: table.Results(), CompletedTasks: table.Len(), TotalTasks: table.Len()}
				if err := bench.SaveCheckpoint(checkpointPath, ckpt); err != nil {
					return fmt.Errorf("saving checkpoint: %w", err)
				}
			}

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				defer f.Close()
				enc := json.NewEncoder(f)
				enc.SetIndent("", "  ")
				if err := enc.Encode(table.Results()); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Printf("\nWritten to %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "Largest size of the default ladder to sweep (0 = use the whole ladder)")
	cmd.Flags().StringVar(&sizesFlag, "sizes", "", "Comma-separated explicit size list, overrides --max-size")
	cmd.Flags().DurationVar(&minDuration, "min-duration", 50*time.Millisecond, "Minimum measurement window per case")
	cmd.Flags().BoolVar(&includeBuffered, "buffered", false, "Also time aux/naive-aux/bridge/trinity")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress")
	cmd.Flags().StringVar(&output, "output", "", "Write results as JSON to this file")
	cmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "Gob checkpoint path: loaded to resume, rewritten on completion")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	var (
		maxSize int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Exhaustively check every rotation algorithm against the reference implementation",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Verifying all registered algorithms up to n=%d...\n", maxSize)
			failures := oracle.VerifyAll(maxSize)
			if len(failures) == 0 {
				fmt.Println("All algorithms agree with the reference rotation.")
				return nil
			}
			for name, err := range failures {
				fmt.Printf("  FAIL %s: %v\n", name, err)
			}
			return fmt.Errorf("%d algorithm(s) failed verification", len(failures))
		},
	}
	cmd.Flags().IntVar(&maxSize, "max-size", 200, "Largest n to sweep (every left from 0..n is checked)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "No effect: verify prints no progress output")
	return cmd
}

func newTuneCmd() *cobra.Command {
	var (
		chains     int
		iterations int
		decay      float64
		verbose    bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Search for better dispatcher thresholds via simulated annealing",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Tuning dispatcher thresholds\n")
			fmt.Printf("  Chains: %d, iterations: %d, decay: %.6f\n", chains, iterations, decay)
			fmt.Printf("  Starting point: %+v\n\n", tune.Default())

			results := tune.Run(cmd.Context(), tune.Config{
				Chains:     chains,
				Iterations: iterations,
				Decay:      decay,
				Verbose:    verbose,
			})

			winner := tune.Winner(results)
			fmt.Printf("\nBest thresholds found: %+v (cost %.1f ns)\n", winner.Thresholds, winner.Cost)
			for _, r := range results {
				fmt.Printf("  chain %d: %+v cost=%.1f accepted=%d rejected=%d\n",
					r.ChainID, r.Thresholds, r.Cost, r.Accepted, r.Rejected)
			}

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				defer f.Close()
				enc := json.NewEncoder(f)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Printf("\nWritten to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&chains, "chains", runtime.NumCPU(), "Number of parallel annealing chains")
	cmd.Flags().IntVar(&iterations, "iterations", 2000, "Iterations per chain")
	cmd.Flags().Float64Var(&decay, "decay", 0.999, "Temperature decay factor per step")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress")
	cmd.Flags().StringVar(&output, "output", "", "Write winning thresholds per chain as JSON to this file")
	return cmd
}

func workersOrNumCPU(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// resolveSizes turns --sizes/--max-size into a concrete size ladder.
// An explicit --sizes list wins; --max-size keeps the bench.DefaultSizes
// entries that are at or below it, or just [maxSize] when none is; both
// empty means use bench.DefaultSizes unchanged.
func resolveSizes(sizesFlag string, maxSize int) ([]int, error) {
	if sizesFlag != "" {
		parts := strings.Split(sizesFlag, ",")
		sizes := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("invalid size %q: %w", p, err)
			}
			sizes = append(sizes, n)
		}
		return sizes, nil
	}
	if maxSize <= 0 {
		return nil, nil
	}
	sizes := make([]int, 0, len(bench.DefaultSizes))
	for _, n := range bench.DefaultSizes {
		if n > maxSize {
			break
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		sizes = append(sizes, maxSize)
	}
	return sizes, nil
}
