package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mallah-elmehdi/computorv1/pkg/polynomial"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, a discard logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → reduce → classify → solve pipeline.
//
// When the reduced polynomial's degree exceeds two, Execute returns a
// DEGREE_TOO_HIGH error together with a non-nil Result holding the
// reduced form and degree, so callers can report those before the
// limitation message. Every other error returns a nil Result.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	result, err := r.Reduce(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	solveStart := time.Now()
	sol, err := polynomial.Solve(result.Reduced)
	result.Stats.SolveTime = time.Since(solveStart)
	if err != nil {
		return result, err
	}
	result.Solution = sol

	r.Logger.Debug("solved equation",
		"kind", sol.Kind,
		"duration", result.Stats.SolveTime)

	return result, nil
}

// Reduce runs the pipeline up to and including degree classification,
// skipping the solver. The returned Result has a zero Solution.
func (r *Runner) Reduce(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}
	leftText, rightText := opts.Sides()

	parseStart := time.Now()
	result.Left = polynomial.ParseSide(leftText)
	result.Right = polynomial.ParseSide(rightText)
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.LeftTerms = len(result.Left)
	result.Stats.RightTerms = len(result.Right)

	opts.Logger.Debug("parsed equation",
		"left_terms", result.Stats.LeftTerms,
		"right_terms", result.Stats.RightTerms,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reduceStart := time.Now()
	result.Reduced = polynomial.Reduce(result.Left, result.Right)
	result.ReducedForm = result.Reduced.String()
	result.Degree = result.Reduced.Degree()
	result.Stats.ReduceTime = time.Since(reduceStart)

	opts.Logger.Debug("reduced equation",
		"form", result.ReducedForm,
		"degree", result.Degree,
		"duration", result.Stats.ReduceTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
