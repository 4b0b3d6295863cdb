package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mallah-elmehdi/computorv1/pkg/errors"
	"github.com/mallah-elmehdi/computorv1/pkg/pipeline"
)

// interactiveCommand creates the interactive command: a prompt loop
// where each entered equation is solved and appended to a scrollback.
func (c *CLI) interactiveCommand() *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Solve equations from an interactive prompt",
		Long: `Solve equations from an interactive prompt.

Type an equation and press enter to solve it; results accumulate in a
scrollback above the prompt. Press esc or ctrl+c to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := newInteractiveModel(c.newRunner(), precision)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", defaultPrecision, "decimal places for printed roots")

	return cmd
}

// solvedEntry is one scrollback record: the equation as typed plus the
// lines it produced.
type solvedEntry struct {
	equation string
	lines    []string
	failed   bool
}

// interactiveModel is the bubbletea model for the prompt loop.
type interactiveModel struct {
	runner    *pipeline.Runner
	precision int

	input   []rune
	history []solvedEntry
}

// newInteractiveModel creates the prompt model.
func newInteractiveModel(runner *pipeline.Runner, precision int) interactiveModel {
	return interactiveModel{runner: runner, precision: precision}
}

func (m interactiveModel) Init() tea.Cmd {
	return nil
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			equation := strings.TrimSpace(string(m.input))
			if equation == "" {
				return m, nil
			}
			m.history = append(m.history, m.solve(equation))
			m.input = nil
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}
	}
	return m, nil
}

func (m interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Computor"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type an equation, enter solves, esc quits"))
	b.WriteString("\n\n")

	for _, entry := range m.history {
		b.WriteString(StyleDim.Render("> ") + StyleValue.Render(entry.equation))
		b.WriteString("\n")
		for _, line := range entry.lines {
			if entry.failed {
				b.WriteString(StyleWarning.Render(line))
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(StyleNumber.Render("> "))
	b.WriteString(string(m.input))
	b.WriteString(StyleDim.Render("█"))

	return b.String()
}

// solve runs the pipeline for one equation and flattens the outcome
// into scrollback lines, mirroring the solve command's output.
func (m interactiveModel) solve(equation string) solvedEntry {
	entry := solvedEntry{equation: equation}

	result, err := m.runner.Execute(context.Background(), pipeline.Options{Equation: equation})
	if errors.Is(err, errors.ErrCodeDegreeTooHigh) {
		entry.lines = append(reductionLines(result), degreeTooHighMessage)
		return entry
	}
	if err != nil {
		entry.failed = true
		entry.lines = []string{errors.UserMessage(err)}
		return entry
	}

	entry.lines = append(reductionLines(result),
		solutionLines(result.Solution, result.Degree, m.precision)...)
	return entry
}

// reductionLines returns the reduced form and degree as plain lines.
func reductionLines(result *pipeline.Result) []string {
	return []string{
		fmt.Sprintf("Reduced form: %s = 0", result.ReducedForm),
		"Polynomial degree: " + strconv.Itoa(result.Degree),
	}
}
