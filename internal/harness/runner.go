package harness

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"strmath/internal/config"
	"strmath/internal/errtrace"
	"strmath/internal/logger"
)

// Scenario run errors.
var (
	ErrMismatch         = errors.New("result mismatch")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Result is the outcome of one scenario.
type Result struct {
	Err      error
	Name     string
	Op       string
	Input    string
	Expected string
	Actual   string
	Passed   bool
}

// Summary aggregates the results of a run.
type Summary struct {
	Suite   string
	Results []Result
	Passed  int
	Failed  int
}

// OK returns true if every executed scenario passed.
func (s *Summary) OK() bool {
	return s.Failed == 0
}

// Total returns the number of executed scenarios.
func (s *Summary) Total() int {
	return len(s.Results)
}

// Runner executes the scenarios of a suite.
type Runner struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRunner creates a runner for cfg.
func NewRunner(cfg *config.Config, log *logger.Logger) *Runner {
	return &Runner{
		cfg: cfg,
		log: log.With("suite", cfg.Suite.Name),
	}
}

// Run executes every scenario in order. It stops early when the context is
// done, returning the partial summary and the context error, or after the
// first failure when the suite is fail-fast.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{Suite: r.cfg.Suite.Name}

	for _, sc := range r.cfg.Suite.Scenarios {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("run interrupted: %w", err)
		}

		res := r.runScenario(sc)
		summary.Results = append(summary.Results, res)

		if res.Passed {
			summary.Passed++

			r.log.Debug("Scenario passed", "scenario", sc.Name, "op", sc.Op)

			continue
		}

		summary.Failed++

		r.log.Warn("Scenario failed", "scenario", sc.Name, "op", sc.Op, "error", res.Err)

		if r.cfg.Suite.FailFast {
			r.log.Info("Stopping after first failure")

			break
		}
	}

	r.log.Info("Suite finished", "passed", summary.Passed, "failed", summary.Failed)

	return summary, nil
}

func (r *Runner) runScenario(sc config.Scenario) Result {
	res := Result{Name: sc.Name, Op: sc.Op}

	op, ok := Lookup(sc.Op)
	if !ok {
		res.Err = errtrace.Wrapf(fmt.Errorf("%w: %q", ErrUnknownOperation, sc.Op), "scenario %q", sc.Name)

		return res
	}

	if op.Int != nil {
		res.Input = strconv.Itoa(int(sc.A)) + ", " + strconv.Itoa(int(sc.B))
		res.Actual = strconv.Itoa(int(op.Int(sc.A, sc.B)))

		if sc.ExpectedSum != nil {
			res.Expected = strconv.Itoa(int(*sc.ExpectedSum))
		}
	} else {
		res.Input = sc.Input
		res.Expected = sc.Expected
		res.Actual = op.Text(sc.Input)
	}

	if err := check(res.Expected, res.Actual); err != nil {
		res.Err = errtrace.Wrapf(err, "scenario %q", sc.Name)

		return res
	}

	res.Passed = true

	return res
}

func check(expected, actual string) error {
	if expected != actual {
		return errtrace.Here(fmt.Errorf("%w: expected %q, actual %q", ErrMismatch, expected, actual))
	}

	return nil
}
