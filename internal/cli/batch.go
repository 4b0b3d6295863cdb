package cli

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/mallah-elmehdi/computorv1/pkg/errors"
)

// batchFile is the TOML schema for batch input. Each equation entry
// carries an optional display name:
//
//	[[equations]]
//	name = "first degree"
//	equation = "5 * X^0 + 4 * X^1 = 1 * X^0"
type batchFile struct {
	Equations []batchEquation `toml:"equations"`
}

// batchEquation is one entry in a batch file.
type batchEquation struct {
	Name     string `toml:"name"`
	Equation string `toml:"equation"`
}

// batchCommand creates the batch command for solving a file of equations.
func (c *CLI) batchCommand() *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "batch <file.toml>",
		Short: "Solve every equation listed in a TOML file",
		Long: `Solve every equation listed in a TOML file.

The file holds [[equations]] entries with an optional name and the
equation text. Equations that fail to validate are logged as warnings
and skipped; the rest of the batch still runs.

Example file:
  [[equations]]
  name = "first degree"
  equation = "5 * X^0 + 4 * X^1 = 1 * X^0"

  [[equations]]
  equation = "5*X^0 + 13*X^1 + 3*X^2 = 1*X^0 + 1*X^1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd.Context(), args[0], precision)
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", defaultPrecision, "decimal places for printed roots")

	return cmd
}

// runBatch decodes the batch file and solves each entry in order,
// continuing past per-equation failures.
func (c *CLI) runBatch(ctx context.Context, path string, precision int) error {
	file, err := readBatchFile(path)
	if err != nil {
		return err
	}
	if len(file.Equations) == 0 {
		printWarning("no equations in %s", path)
		return nil
	}

	prog := newProgress(c.Logger)
	solved := 0
	for i, entry := range file.Equations {
		if i > 0 {
			printNewline()
		}
		fmt.Println(StyleTitle.Render(entry.DisplayName(i)))

		if err := c.runSolve(ctx, entry.Equation, precision); err != nil {
			if ctx.Err() != nil {
				return err
			}
			c.Logger.Warnf("%s: %v", entry.DisplayName(i), err)
			printError("%s", errors.UserMessage(err))
			continue
		}
		solved++
	}
	prog.done(fmt.Sprintf("Solved %d of %d equations", solved, len(file.Equations)))

	return nil
}

// DisplayName returns the entry's name, or a positional fallback.
func (e batchEquation) DisplayName(index int) string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("equation %d", index+1)
}

// readBatchFile decodes a TOML batch file.
func readBatchFile(path string) (*batchFile, error) {
	var file batchFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read batch file %s", path)
	}
	return &file, nil
}
