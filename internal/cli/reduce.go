package cli

import (
	"github.com/spf13/cobra"

	"github.com/mallah-elmehdi/computorv1/pkg/pipeline"
)

// reduceCommand creates the reduce command, which stops the pipeline
// after degree classification.
func (c *CLI) reduceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `reduce "<equation>"`,
		Short: "Print the canonical reduced form and degree only",
		Long: `Reduce a polynomial equation to canonical form without solving it.

The output is the left-minus-right form set equal to zero, ordered by
ascending exponent, followed by the polynomial degree.

Use 'solve' to also compute the solution set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.newRunner().Reduce(cmd.Context(), pipeline.Options{Equation: args[0]})
			if err != nil {
				return err
			}
			printReduction(result)
			return nil
		},
	}
}
