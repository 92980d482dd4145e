package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treewidth"
	"github.com/katalvlaran/treewidth/builder"
)

// instancesCommand estimates every reference instance and compares the result
// with the known treewidth.
func (c *CLI) instancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "instances",
		Short: "Estimate the built-in reference instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}

			printTitle(c.out, "Reference instances")
			failed := 0
			for _, in := range builder.ReferenceInstances() {
				g, err := in.Graph()
				if err != nil {
					return fmt.Errorf("%s: %w", in.Name, err)
				}
				res, err := treewidth.Estimate(g, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", in.Name, err)
				}
				printRow(c.out, in.Name, res.Width, res.LowerBound, res.IsExact)

				ok := res.Width >= in.Width && res.LowerBound <= in.Width
				if res.IsExact {
					ok = ok && res.Width == in.Width
				}
				if !ok {
					failed++
					c.Logger.Error("width mismatch", "instance", in.Name, "want", in.Width, "got", res.Width)
				}
			}

			printCheck(c.out, failed == 0, "%d instances, %d mismatches", len(builder.ReferenceInstances()), failed)
			if failed > 0 {
				return fmt.Errorf("%d reference instances mismatched", failed)
			}

			return nil
		},
	}
}
