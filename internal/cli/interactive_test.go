package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mallah-elmehdi/computorv1/pkg/pipeline"
)

func testModel() interactiveModel {
	return newInteractiveModel(pipeline.NewRunner(nil), defaultPrecision)
}

func TestInteractiveSolve(t *testing.T) {
	entry := testModel().solve("5 * X^0 + 4 * X^1 = 1 * X^0")

	if entry.failed {
		t.Fatalf("solve failed: %v", entry.lines)
	}
	want := []string{
		"Reduced form: 4 * X^0 + 4 * X^1 = 0",
		"Polynomial degree: 1",
		"The solution is:",
		"-1",
	}
	if len(entry.lines) != len(want) {
		t.Fatalf("lines = %q, want %q", entry.lines, want)
	}
	for i, line := range want {
		if entry.lines[i] != line {
			t.Errorf("lines[%d] = %q, want %q", i, entry.lines[i], line)
		}
	}
}

func TestInteractiveSolveDegreeTooHigh(t *testing.T) {
	entry := testModel().solve("1*X^3 = 0*X^0")

	if entry.failed {
		t.Fatalf("degree limit should not mark the entry failed: %v", entry.lines)
	}
	if last := entry.lines[len(entry.lines)-1]; last != degreeTooHighMessage {
		t.Errorf("last line = %q, want the degree limit message", last)
	}
}

func TestInteractiveSolveInvalid(t *testing.T) {
	entry := testModel().solve("no equals sign")

	if !entry.failed {
		t.Fatal("expected a failed entry")
	}
	if len(entry.lines) == 0 {
		t.Fatal("expected an error line")
	}
}

func TestInteractiveUpdate(t *testing.T) {
	m := testModel()

	// Type an equation and solve it.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4*X^0+4*X^1=0*X^0")})
	m = next.(interactiveModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(interactiveModel)

	if len(m.history) != 1 {
		t.Fatalf("history length = %d, want 1", len(m.history))
	}
	if len(m.input) != 0 {
		t.Errorf("input not cleared after enter: %q", string(m.input))
	}

	// Empty input is ignored.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(interactiveModel)
	if len(m.history) != 1 {
		t.Errorf("history length = %d, want 1 after empty enter", len(m.history))
	}

	// Backspace trims the input.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m = next.(interactiveModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(interactiveModel)
	if string(m.input) != "a" {
		t.Errorf("input = %q, want %q", string(m.input), "a")
	}

	// Esc quits.
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("expected a quit command on esc")
	}
}

func TestInteractiveView(t *testing.T) {
	m := testModel()
	m.history = append(m.history, m.solve("1*X^0 = 1*X^0"))

	view := m.View()
	if !strings.Contains(view, "All real numbers are solutions.") {
		t.Errorf("view missing solution line:\n%s", view)
	}
	if !strings.Contains(view, "1*X^0 = 1*X^0") {
		t.Errorf("view missing echoed equation:\n%s", view)
	}
}
