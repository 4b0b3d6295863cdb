package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mallah-elmehdi/computorv1/pkg/errors"
	"github.com/mallah-elmehdi/computorv1/pkg/pipeline"
)

// solveCommand creates the solve command running the full pipeline.
func (c *CLI) solveCommand() *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   `solve "<equation>"`,
		Short: "Reduce an equation and report its solution set",
		Long: `Reduce a polynomial equation to canonical form and solve it.

The equation is given as a single argument with exactly one '=' sign.
Terms look like "<coefficient> * X^<exponent>"; anything else in the
input is ignored.

Examples:
  computor solve "5 * X^0 + 4 * X^1 = 1 * X^0"
  computor solve "5*X^0 + 13*X^1 + 3*X^2 = 1*X^0 + 1*X^1"
  computor solve "1*X^2 + 1*X^0 = 0*X^0" --precision 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], precision)
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", defaultPrecision, "decimal places for printed roots")

	return cmd
}

// runSolve executes the pipeline for one equation and prints the
// reduced form, degree, and solution. A degree above two is reported
// as an informational limit after the reduction, not as a failure.
func (c *CLI) runSolve(ctx context.Context, equation string, precision int) error {
	result, err := c.newRunner().Execute(ctx, pipeline.Options{Equation: equation})
	if errors.Is(err, errors.ErrCodeDegreeTooHigh) {
		printReduction(result)
		printWarning(degreeTooHighMessage)
		return nil
	}
	if err != nil {
		return err
	}

	printReduction(result)
	printSolution(result.Solution, result.Degree, precision)
	return nil
}
