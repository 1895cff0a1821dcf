package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/benchgridgo/internal/columns"
	"github.com/vk/benchgridgo/internal/jobs"
	"github.com/vk/benchgridgo/internal/testutil"
)

func TestSessionDefaults_ApplyBeforeArguments(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"session/defaults.hcl": `
		options {
			jobs = "dry"
		}
		`,
	}

	result := testutil.RunResolutionTest(t, files, []string{"jobs=long"})

	require.NoError(t, result.Err)
	require.Equal(t, []*jobs.Job{jobs.Dry, jobs.Long}, result.Config.Jobs())
	testutil.AssertOptionApplied(t, result, "jobs", "dry")
	testutil.AssertOptionApplied(t, result, "jobs", "long")
}

func TestSessionDefaults_MergeAcrossFileFormats(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"session/a.hcl": `
		options {
			jobs = "dry"
		}
		`,
		"session/b.json": `{
			"options": {
				"columns": ["mean", "p95"]
			}
		}`,
	}

	result := testutil.RunResolutionTest(t, files, nil)

	require.NoError(t, result.Err)
	require.Equal(t, []*jobs.Job{jobs.Dry}, result.Config.Jobs())
	require.Equal(t, []*columns.Column{columns.Mean, columns.P95}, result.Config.Columns())
}

func TestSessionDefaults_AggregateKeyword(t *testing.T) {
	t.Parallel()

	result := testutil.RunSessionFileTest(t, `
	options {
		exporters = "all"
	}
	`)

	require.NoError(t, result.Err)
	require.Len(t, result.Config.Exporters(), 5)
}

func TestSessionDefaults_UnknownKeysAreSkipped(t *testing.T) {
	t.Parallel()

	result := testutil.RunSessionFileTest(t, `
	options {
		widget = "blue"
	}
	`)

	require.NoError(t, result.Err)
	require.Empty(t, result.Config.Jobs())
	require.Contains(t, result.LogOutput, "Ignoring unknown option key from session defaults")
}

func TestSessionDefaults_InvalidSettingsFailResolution(t *testing.T) {
	t.Parallel()

	result := testutil.RunSessionFileTest(t, `
	settings {
		output_width = 10
	}
	`)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "failed to load session defaults")
	require.Nil(t, result.Config)
}

func TestSessionDefaults_BadValueFailsResolution(t *testing.T) {
	t.Parallel()

	result := testutil.RunSessionFileTest(t, `
	options {
		jobs = "bogus"
	}
	`)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "Job with name 'bogus' is not registered")
}
