package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treewidth"
	"github.com/katalvlaran/treewidth/builder"
)

type benchFlags struct {
	n, m  int
	seed  int64
	count int
}

// benchCommand estimates seeded random G(n, m) graphs and reports widths and
// timings.
func (c *CLI) benchCommand() *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Estimate seeded random G(n, m) graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}
			if f.count < 1 {
				return fmt.Errorf("--count must be positive, got %d", f.count)
			}

			printTitle(c.out, "G(%d, %d), %d graphs from seed %d", f.n, f.m, f.count, f.seed)
			var (
				total        time.Duration
				exact, width int
			)
			for i := 0; i < f.count; i++ {
				seed := f.seed + int64(i)
				g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomGnm(f.n, f.m))
				if err != nil {
					return err
				}

				start := time.Now()
				res, err := treewidth.Estimate(g, opts)
				if err != nil {
					return fmt.Errorf("seed %d: %w", seed, err)
				}
				elapsed := time.Since(start)
				total += elapsed

				printRow(c.out, fmt.Sprintf("seed %d", seed), res.Width, res.LowerBound, res.IsExact)
				c.Logger.Debug("estimate", "seed", seed, "rounds", res.Stats.Rounds,
					"contracted", res.Stats.Contracted, "elapsed", elapsed.Round(time.Microsecond))
				if res.IsExact {
					exact++
				}
				if res.Width > width {
					width = res.Width
				}
			}

			printKeyValue(c.out, "graphs", f.count)
			printKeyValue(c.out, "exact", exact)
			printKeyValue(c.out, "max width", width)
			printKeyValue(c.out, "mean time", (total / time.Duration(f.count)).Round(time.Microsecond))

			return nil
		},
	}

	cmd.Flags().IntVarP(&f.n, "vertices", "n", 30, "number of vertices")
	cmd.Flags().IntVarP(&f.m, "edges", "m", 60, "number of edges")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "first RNG seed")
	cmd.Flags().IntVar(&f.count, "count", 5, "number of graphs")

	return cmd
}
