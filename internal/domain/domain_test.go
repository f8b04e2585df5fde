package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sizeMB float64
		want   string
	}{
		{name: "megabytes", sizeMB: 300, want: "~300MB"},
		{name: "small megabytes", sizeMB: 20, want: "~20MB"},
		{name: "exactly one gigabyte", sizeMB: 1024, want: "~1.0GB"},
		{name: "gigabytes", sizeMB: 4096, want: "~4.0GB"},
		{name: "fractional gigabytes", sizeMB: 5120 + 512, want: "~5.5GB"},
		{name: "zero", sizeMB: 0, want: "~0MB"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FormatSize(tc.sizeMB))
		})
	}
}

func TestTotalSizeMB(t *testing.T) {
	t.Parallel()

	libraries := []Library{
		{Name: "matplotlib", SizeMB: 50},
		{Name: "plotly", SizeMB: 100},
		{Name: "seaborn", SizeMB: 20},
	}

	assert.Equal(t, float64(170), TotalSizeMB(libraries))
	assert.Zero(t, TotalSizeMB(nil))
}

func TestCategoryValid(t *testing.T) {
	t.Parallel()

	for _, category := range OrderedCategories() {
		assert.True(t, category.Valid(), category)
	}
	assert.False(t, Category("games").Valid())
}

func TestInstallRecordLogLineRoundTrip(t *testing.T) {
	t.Parallel()

	timestamp := time.Date(2026, 3, 9, 15, 4, 5, 0, time.UTC)

	success := InstallRecord{Library: "spacy", Timestamp: timestamp, Outcome: InstallSucceeded}
	assert.Equal(t, "2026-03-09T15:04:05Z spacy success", success.LogLine())

	parsed, err := ParseInstallRecord(success.LogLine())
	require.NoError(t, err)
	assert.Equal(t, success, parsed)

	failure := InstallRecord{
		Library:   "torch",
		Timestamp: timestamp,
		Outcome:   InstallFailed,
		Reason:    "exit code 1: no matching distribution found",
	}
	assert.Equal(t, "2026-03-09T15:04:05Z torch failure: exit code 1: no matching distribution found", failure.LogLine())

	parsed, err = ParseInstallRecord(failure.LogLine())
	require.NoError(t, err)
	assert.Equal(t, failure, parsed)
}

func TestParseInstallRecordRejectsMalformedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "empty", line: ""},
		{name: "missing outcome", line: "2026-03-09T15:04:05Z spacy"},
		{name: "bad timestamp", line: "yesterday spacy success"},
		{name: "unknown outcome", line: "2026-03-09T15:04:05Z spacy skipped"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseInstallRecord(tc.line)
			require.Error(t, err)
		})
	}
}

func TestInstallFailureError(t *testing.T) {
	t.Parallel()

	withStderr := &InstallFailure{ExitCode: 1, Stderr: "no matching distribution"}
	assert.Equal(t, "installer exited with code 1: no matching distribution", withStderr.Error())

	bare := &InstallFailure{ExitCode: 2}
	assert.Equal(t, "installer exited with code 2", bare.Error())
}
