package harness

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strmath/internal/config"
	"strmath/internal/errtrace"
	"strmath/internal/logger"
)

func newTestRunner(t *testing.T, cfg *config.Config) (*Runner, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	return NewRunner(cfg, logger.NewLoggerTo(&buf, "debug")), &buf
}

func int32Ptr(v int32) *int32 {
	return &v
}

func TestLookup(t *testing.T) {
	for _, name := range []string{config.OpLTrim, config.OpRTrim, config.OpTrim} {
		op, ok := Lookup(name)
		require.True(t, ok, name)
		assert.NotNil(t, op.Text, name)
		assert.Nil(t, op.Int, name)
	}

	add, ok := Lookup(config.OpAdd)
	require.True(t, ok)
	assert.NotNil(t, add.Int)
	assert.Equal(t, int32(3), add.Int(1, 2))

	_, ok = Lookup("upper")
	assert.False(t, ok)
}

func TestRunner_DefaultSuitePasses(t *testing.T) {
	runner, logs := newTestRunner(t, config.DefaultConfig())

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.OK())
	assert.Equal(t, 4, summary.Total())
	assert.Equal(t, 4, summary.Passed)
	assert.Equal(t, "strmath", summary.Suite)

	for _, res := range summary.Results {
		assert.True(t, res.Passed, res.Name)
		assert.NoError(t, res.Err, res.Name)
		assert.Equal(t, res.Expected, res.Actual, res.Name)
	}

	add := summary.Results[3]
	assert.Equal(t, "1, 2", add.Input)
	assert.Equal(t, "3", add.Actual)

	assert.Contains(t, logs.String(), "Suite finished")
}

func TestRunner_Mismatch(t *testing.T) {
	cfg := &config.Config{
		Suite: config.SuiteConfig{
			Name: "broken",
			Scenarios: []config.Scenario{
				{Name: "wrong trim", Op: config.OpTrim, Input: " a ", Expected: " a"},
				{Name: "wrong add", Op: config.OpAdd, A: 2, B: 2, ExpectedSum: int32Ptr(5)},
				{Name: "right trim", Op: config.OpTrim, Input: " a ", Expected: "a"},
			},
		},
		Logging: config.LoggingConfig{Level: "info"},
	}

	runner, logs := newTestRunner(t, cfg)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, summary.OK())
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, summary.Passed)

	failed := summary.Results[0]
	require.ErrorIs(t, failed.Err, ErrMismatch)
	assert.Equal(t, "a", failed.Actual)

	trace := errtrace.StackTrace(failed.Err)
	require.Len(t, trace, 4)
	assert.Equal(t, "result mismatch", trace[0])
	assert.Equal(t, `result mismatch: expected " a", actual "a"`, trace[1])
	assert.Contains(t, trace[2], "harness.check(runner.go:")
	assert.True(t, strings.HasPrefix(trace[3], `scenario "wrong trim" `), trace[3])

	assert.Equal(t, "4", summary.Results[1].Actual)
	assert.Contains(t, logs.String(), "Scenario failed")
}

func TestRunner_FailFast(t *testing.T) {
	cfg := &config.Config{
		Suite: config.SuiteConfig{
			FailFast: true,
			Scenarios: []config.Scenario{
				{Name: "first", Op: config.OpLTrim, Input: " x", Expected: "nope"},
				{Name: "second", Op: config.OpLTrim, Input: " x", Expected: "x"},
			},
		},
	}

	runner, _ := newTestRunner(t, cfg)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total())
	assert.Equal(t, 1, summary.Failed)
}

func TestRunner_UnknownOperation(t *testing.T) {
	cfg := &config.Config{
		Suite: config.SuiteConfig{
			Scenarios: []config.Scenario{{Name: "upper", Op: "upper"}},
		},
	}

	runner, _ := newTestRunner(t, cfg)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.ErrorIs(t, summary.Results[0].Err, ErrUnknownOperation)
}

func TestRunner_ContextCancelled(t *testing.T) {
	runner, _ := newTestRunner(t, config.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := runner.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Total())
}
