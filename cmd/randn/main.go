// Command randn generates standard-normal vectors, matrices and batches and
// prints a summary of what it drew.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fumitoshi0524/randn"
	"github.com/fumitoshi0524/randn/tensor"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "randn",
		Short: "Parallel standard-normal generator",
		Long: `randn fills vectors, matrices and batches of matrices with independent
standard-normal draws, sampling in parallel across all cores.`,
		SilenceUsage: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML profile with workers, grain, seed, max_memory, verbose")
	flags.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS)")
	flags.Int("grain", randn.DefaultGrain, "Draws per chunk task")
	flags.Uint64("seed", 0, "Seed for reproducible output (unseeded when not given)")
	flags.String("max-memory", "unlimited", "Largest sample storage per call, e.g. 512MiB")
	flags.BoolP("verbose", "v", false, "Log each generation call to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "randn v%s\n", version)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "vector SIZE",
		Short: "Generate a vector of SIZE draws",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := parseDims(args)
			if err != nil {
				return err
			}
			return generate(cmd, fmt.Sprintf("vector %d", dims[0]), func(ctx context.Context, e *randn.Engine) ([]*tensor.Tensor, error) {
				v, err := e.Vector(ctx, dims[0])
				return []*tensor.Tensor{v}, err
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "matrix ROWS COLS",
		Short: "Generate a ROWS x COLS matrix, filled row-major",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := parseDims(args)
			if err != nil {
				return err
			}
			return generate(cmd, fmt.Sprintf("matrix %dx%d", dims[0], dims[1]), func(ctx context.Context, e *randn.Engine) ([]*tensor.Tensor, error) {
				m, err := e.Matrix(ctx, dims[0], dims[1])
				return []*tensor.Tensor{m}, err
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "batch ROWS COLS SIMS",
		Short: "Generate SIMS independent ROWS x COLS matrices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := parseDims(args)
			if err != nil {
				return err
			}
			op := fmt.Sprintf("matrix batch %dx%dx%d", dims[0], dims[1], dims[2])
			return generate(cmd, op, func(ctx context.Context, e *randn.Engine) ([]*tensor.Tensor, error) {
				return e.MatrixBatch(ctx, dims[0], dims[1], dims[2])
			})
		},
	})

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the reference workloads",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().Int("iterations", 20, "Runs per workload")
	rootCmd.AddCommand(benchCmd)

	return rootCmd
}

func engineFor(cmd *cobra.Command) (*randn.Engine, error) {
	p, err := resolve(cmd)
	if err != nil {
		return nil, err
	}
	opts, err := p.options(func() randn.Option {
		return randn.WithLogger(log.New(cmd.ErrOrStderr(), "randn: ", log.LstdFlags))
	})
	if err != nil {
		return nil, err
	}
	return randn.New(opts...), nil
}

func generate(cmd *cobra.Command, op string, run func(context.Context, *randn.Engine) ([]*tensor.Tensor, error)) error {
	e, err := engineFor(cmd)
	if err != nil {
		return err
	}
	started := time.Now()
	out, err := run(cmd.Context(), e)
	if err != nil {
		return err
	}
	report{op: op, elapsed: time.Since(started), summary: summarize(out...)}.write(cmd.OutOrStdout())
	return nil
}

type workload struct {
	name string
	run  func(context.Context, *randn.Engine) error
}

var workloads = []workload{
	{"vector 50000", func(ctx context.Context, e *randn.Engine) error {
		_, err := e.Vector(ctx, 50_000)
		return err
	}},
	{"matrix 50x1000", func(ctx context.Context, e *randn.Engine) error {
		_, err := e.Matrix(ctx, 50, 1000)
		return err
	}},
	{"matrix batch 50x17x1000", func(ctx context.Context, e *randn.Engine) error {
		_, err := e.MatrixBatch(ctx, 50, 17, 1000)
		return err
	}},
}

func runBench(cmd *cobra.Command, args []string) error {
	iterations, _ := cmd.Flags().GetInt("iterations")
	if iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	e, err := engineFor(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d workers, grain %d, %d iterations\n", e.Workers(), e.Config().Grain, iterations)
	for _, wl := range workloads {
		started := time.Now()
		for i := 0; i < iterations; i++ {
			if err := wl.run(cmd.Context(), e); err != nil {
				return fmt.Errorf("%s: %w", wl.name, err)
			}
		}
		fmt.Fprintf(w, "%-24s %12s/op\n", wl.name, time.Since(started)/time.Duration(iterations))
	}
	return nil
}

func parseDims(args []string) ([]int, error) {
	dims := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("dimension %q must be a non-negative integer", a)
		}
		dims[i] = n
	}
	return dims, nil
}
