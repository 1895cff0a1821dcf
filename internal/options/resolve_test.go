package options

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/benchgridgo/internal/analysers"
	"github.com/vk/benchgridgo/internal/columns"
	"github.com/vk/benchgridgo/internal/diagnostics"
	"github.com/vk/benchgridgo/internal/exporters"
	"github.com/vk/benchgridgo/internal/jobs"
	"github.com/vk/benchgridgo/internal/validators"
)

func TestResolveSingleValue(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"jobs=dry"}, reg)

	require.NoError(t, err)
	assert.Equal(t, []*jobs.Job{jobs.Dry}, cfg.Jobs())
	assert.Empty(t, cfg.Columns())
	assert.Empty(t, cfg.Exporters())
}

// Test for: singular/plural, dash-prefix and case equivalence of keys and
// values. Every spelling must yield the exact same selection.
func TestResolveKeySpellingEquivalence(t *testing.T) {
	reg := NewRegistry()

	baseline, err := Resolve(context.Background(), []string{"jobs=dry"}, reg)
	require.NoError(t, err)

	variants := []string{
		"job=dry",
		"--jobs=dry",
		"--job=dry",
		"JOBS=DRY",
		"Jobs=Dry",
		"--JOB=dry",
	}

	for _, variant := range variants {
		t.Run(variant, func(t *testing.T) {
			cfg, err := Resolve(context.Background(), []string{variant}, reg)
			require.NoError(t, err)
			assert.Equal(t, baseline.Jobs(), cfg.Jobs())
		})
	}
}

func TestResolveMultiItemBundle(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"jobs=allsizes"}, reg)

	require.NoError(t, err)
	assert.Equal(t, []*jobs.Job{jobs.Short, jobs.Medium, jobs.Long}, cfg.Jobs())
}

func TestResolveCommaSeparatedValuesInOrder(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"columns=mean,min,max"}, reg)

	require.NoError(t, err)
	assert.Equal(t, []*columns.Column{columns.Mean, columns.Min, columns.Max}, cfg.Columns())
}

func TestResolveDuplicateValuesResolveIndependently(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"columns=mean,mean"}, reg)

	require.NoError(t, err)
	assert.Equal(t, []*columns.Column{columns.Mean, columns.Mean}, cfg.Columns())
}

func TestResolveAllSentinelForColumns(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"columns=all"}, reg)

	require.NoError(t, err)
	// The aggregate keeps registration order, and the allquartiles bundle
	// repeats the quartile columns it overlaps with.
	expected := []*columns.Column{
		columns.Mean, columns.StdErr, columns.StdDev, columns.Min,
		columns.Q1, columns.Median, columns.Q3, columns.Max,
		columns.P90, columns.P95, columns.OpsPerSecond,
		columns.Q1, columns.Median, columns.Q3,
	}
	assert.Equal(t, expected, cfg.Columns())
}

func TestResolveAllSentinelForJobs(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"JOBS=ALL"}, reg)

	require.NoError(t, err)
	expected := []*jobs.Job{
		jobs.Default, jobs.Dry, jobs.Short, jobs.Medium, jobs.Long,
		jobs.Short, jobs.Medium, jobs.Long,
	}
	assert.Equal(t, expected, cfg.Jobs())
}

// Test for: "all" is a sentinel only when it is the sole value. Among other
// values it is looked up as an ordinary name and fails.
func TestResolveAllAmongOtherValuesIsOrdinaryName(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"jobs=all,dry"}, reg)

	require.Error(t, err)
	assert.Nil(t, cfg)
	var unknownErr *UnknownItemError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Job", unknownErr.Kind)
	assert.Equal(t, "all", unknownErr.Value)
}

func TestResolveUnknownValueFails(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"columns=bogus"}, reg)

	require.Error(t, err)
	assert.Nil(t, cfg)
	var unknownErr *UnknownItemError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Column", unknownErr.Kind)
	assert.Equal(t, "bogus", unknownErr.Value)
	assert.Contains(t, err.Error(), "columns=bogus")
}

// Test for: a failure discards everything resolved before it. The caller
// gets no configuration at all, not a partially filled one.
func TestResolveFailureDiscardsEarlierResults(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"jobs=dry", "exporters=json", "columns=bogus"}, reg)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestResolveLoggerSelectionIsUnsupported(t *testing.T) {
	reg := NewRegistry()

	testCases := []struct {
		name          string
		arg           string
		expectedValue string
	}{
		{"plural key", "loggers=console", "console"},
		{"singular key", "logger=console", "console"},
		{"all sentinel", "loggers=all", "all"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Resolve(context.Background(), []string{tc.arg}, reg)

			require.Error(t, err)
			assert.Nil(t, cfg)
			var unsupportedErr *UnsupportedCategoryError
			require.ErrorAs(t, err, &unsupportedErr)
			assert.Equal(t, tc.expectedValue, unsupportedErr.Value)
		})
	}
}

func TestResolveIgnoresNonOptionArguments(t *testing.T) {
	reg := NewRegistry()

	args := []string{"--verbose", "-log-level=debug", "somefile.hcl", "widget=blue"}
	cfg, err := Resolve(context.Background(), args, reg)

	require.NoError(t, err)
	assert.Empty(t, cfg.Jobs())
	assert.Empty(t, cfg.Columns())
	assert.Empty(t, cfg.Exporters())
	assert.Empty(t, cfg.Analysers())
	assert.Empty(t, cfg.Validators())
	assert.Empty(t, cfg.Diagnosers())
}

func TestResolveAccumulatesAcrossArguments(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"jobs=dry", "jobs=long", "job=short"}, reg)

	require.NoError(t, err)
	// Later arguments append, they never replace earlier selections.
	assert.Equal(t, []*jobs.Job{jobs.Dry, jobs.Long, jobs.Short}, cfg.Jobs())
}

func TestResolveDiagnosersByDiscoveredName(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), []string{"diagnoser=MEMORY", "diagnosers=block"}, reg)

	require.NoError(t, err)
	require.Len(t, cfg.Diagnosers(), 2)
	assert.Equal(t, "memory", diagnostics.DisplayName(cfg.Diagnosers()[0]))
	assert.Equal(t, "block", diagnostics.DisplayName(cfg.Diagnosers()[1]))
}

func TestResolveEmptyInput(t *testing.T) {
	reg := NewRegistry()

	cfg, err := Resolve(context.Background(), nil, reg)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Jobs())
}

func TestResolveRealisticInvocation(t *testing.T) {
	reg := NewRegistry()

	args := []string{
		"--jobs=medium",
		"columns=mean,p95",
		"exporter=json",
		"diagnosers=memory",
		"analysers=outliers",
		"validators=baseline,runmode",
		"-width=100",
	}
	cfg, err := Resolve(context.Background(), args, reg)

	require.NoError(t, err)
	assert.Equal(t, []*jobs.Job{jobs.Medium}, cfg.Jobs())
	assert.Equal(t, []*columns.Column{columns.Mean, columns.P95}, cfg.Columns())
	assert.Equal(t, []*exporters.Exporter{exporters.JSON}, cfg.Exporters())
	assert.Equal(t, []*analysers.Analyser{analysers.Outliers}, cfg.Analysers())
	assert.Equal(t, []*validators.Validator{validators.Baseline, validators.RunMode}, cfg.Validators())
	require.Len(t, cfg.Diagnosers(), 1)
}
