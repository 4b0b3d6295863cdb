package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mallah-elmehdi/computorv1/pkg/pipeline"
	"github.com/mallah-elmehdi/computorv1/pkg/polynomial"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values such as roots.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(19)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

// =============================================================================
// Status Output
// =============================================================================

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Result Output
// =============================================================================

// printReduction prints the reduced form and degree lines.
func printReduction(result *pipeline.Result) {
	printKeyValue("Reduced form:", result.ReducedForm+" = 0")
	printKeyValue("Polynomial degree:", strconv.Itoa(result.Degree))
}

// printSolution prints the degree-specific message and root values.
func printSolution(sol polynomial.Solution, degree, precision int) {
	lines := solutionLines(sol, degree, precision)
	if len(lines) == 0 {
		return
	}
	fmt.Println(lines[0])
	for _, root := range lines[1:] {
		fmt.Println(StyleNumber.Render(root))
	}
}

// solutionLines returns the plain-text display lines for a solution:
// the message first, then one line per root value. The same lines feed
// both the styled command output and the interactive scrollback.
func solutionLines(sol polynomial.Solution, degree, precision int) []string {
	switch sol.Kind {
	case polynomial.AllReals:
		return []string{"All real numbers are solutions."}
	case polynomial.NoSolution:
		return []string{"No solution."}
	case polynomial.OneReal:
		msg := "The solution is:"
		if degree == 2 {
			msg = "Discriminant is zero, the solution is:"
		}
		return []string{msg, formatRoot(sol.X1, precision)}
	case polynomial.TwoReal:
		return []string{
			"Discriminant is strictly positive, the two solutions are:",
			formatRoot(sol.X1, precision),
			formatRoot(sol.X2, precision),
		}
	case polynomial.ComplexPair:
		re := formatRoot(sol.Real, precision)
		im := formatRoot(sol.Imag, precision)
		return []string{
			"Discriminant is strictly negative, the two complex solutions are:",
			fmt.Sprintf("%s + %si", re, im),
			fmt.Sprintf("%s - %si", re, im),
		}
	}
	return nil
}

// degreeTooHighMessage is shown when the reduced degree exceeds two.
// This is a policy limit, not a failure; the reduced form and degree
// are printed before it.
const degreeTooHighMessage = "The polynomial degree is strictly greater than 2, I can't solve."

// formatRoot renders a root rounded to the given number of decimal
// places, with trailing zeros dropped ("-1", "-1.25", "0.262087").
func formatRoot(v float64, precision int) string {
	if precision < 0 {
		precision = defaultPrecision
	}
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(v*scale) / scale
	if rounded == 0 {
		return "0" // avoid "-0" for tiny negatives
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
