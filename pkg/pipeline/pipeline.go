// Package pipeline ties the polynomial stages into one runnable unit.
//
// This package implements the complete parse → reduce → classify → solve
// pipeline that both the CLI commands and the interactive mode call into.
// Centralizing it keeps equation splitting, validation, and stage timing
// identical across every entry point.
//
// # Architecture
//
// The pipeline consists of three steps:
//
//  1. Parse: split the equation on its single '=' and scan each side
//     for coefficient/exponent terms
//  2. Reduce: merge both sides into the canonical left-minus-right
//     mapping, render it, and classify its degree
//  3. Solve: dispatch on the degree and compute the solution set
//
// The reduce step can be run on its own (see Runner.Reduce) for callers
// that only want the canonical form.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Equation: "5 * X^0 + 4 * X^1 = 1 * X^0",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.ReducedForm + " = 0")
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mallah-elmehdi/computorv1/pkg/errors"
	"github.com/mallah-elmehdi/computorv1/pkg/polynomial"
)

// Options contains all configuration for a pipeline run.
type Options struct {
	// Equation is the raw equation text, e.g. "5 * X^0 + 4 * X^1 = 1 * X^0".
	// It must contain exactly one '=' sign.
	Equation string

	// Logger receives stage-level debug output. Defaults to a discard
	// logger so library callers stay silent unless they opt in.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
//
// An equation without exactly one '=' sign is rejected with an
// INVALID_EQUATION error before any parsing happens.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if strings.TrimSpace(o.Equation) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "equation is required")
	}
	if n := strings.Count(o.Equation, "="); n != 1 {
		return errors.New(errors.ErrCodeInvalidEquation,
			"equation must contain exactly one '=' sign, found %d", n)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	o.validated = true
	return nil
}

// Sides splits the validated equation into its left and right texts.
func (o *Options) Sides() (left, right string) {
	left, right, _ = strings.Cut(o.Equation, "=")
	return left, right
}

// Result contains the outputs of a pipeline run.
//
// On a DEGREE_TOO_HIGH error, Execute still returns a Result carrying
// the reduced form and degree so callers can display them before
// surfacing the limitation message.
type Result struct {
	// Left and Right are the per-side coefficient mappings.
	Left  polynomial.Coefficients
	Right polynomial.Coefficients

	// Reduced is the canonical left-minus-right mapping.
	Reduced polynomial.Coefficients

	// ReducedForm is the rendered canonical form without the trailing
	// " = 0".
	ReducedForm string

	// Degree is the classified degree of the reduced mapping.
	Degree int

	// Solution is the solver outcome. Only meaningful when Execute
	// returned without error.
	Solution polynomial.Solution

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LeftTerms  int // distinct exponents parsed on the left side
	RightTerms int // distinct exponents parsed on the right side

	ParseTime  time.Duration
	ReduceTime time.Duration
	SolveTime  time.Duration
}
