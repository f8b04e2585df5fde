package catalogview

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/mllib-cli/internal/application"
	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOverview(t *testing.T) {
	output, err := RenderOverview(application.Overview{
		Categories: []application.CategoryView{
			{
				Category: domain.CategoryNLP,
				Libraries: []domain.Library{
					{Name: "spacy", Category: domain.CategoryNLP, SizeMB: 1024, Description: "Industrial-strength NLP"},
					{Name: "nltk", Category: domain.CategoryNLP, SizeMB: 500, Description: "Natural Language Toolkit"},
				},
				TotalMB: 1524,
			},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "ML Library Catalog")
	assert.Contains(t, output, "2 libraries, ~1.5GB total")
	assert.Contains(t, output, "NLP (~1.5GB, 2 libraries)")
	assert.Contains(t, output, "spacy")
	assert.Contains(t, output, "(~1.0GB)")
	assert.Contains(t, output, "Industrial-strength NLP")
}

func TestRenderOverviewEmptyCatalog(t *testing.T) {
	output, err := RenderOverview(application.Overview{})
	require.NoError(t, err)
	assert.Contains(t, output, "Catalog is empty.")
}

func TestRenderLibraryDetail(t *testing.T) {
	output, err := RenderLibrary(domain.Library{
		Name:        "spacy",
		Category:    domain.CategoryNLP,
		SizeMB:      500,
		Description: "industrial NLP toolkit",
	})

	require.NoError(t, err)
	assert.Contains(t, output, "spacy")
	assert.Contains(t, output, "category: NLP")
	assert.Contains(t, output, "size estimate: ~500MB")
	assert.Contains(t, output, "industrial NLP toolkit")
}

func TestRenderReports(t *testing.T) {
	now := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)

	output, err := RenderReports([]application.InstallReport{
		{Record: domain.InstallRecord{Library: "spacy", Timestamp: now, Outcome: domain.InstallSucceeded}},
		{
			Record: domain.InstallRecord{
				Library:   "torch",
				Timestamp: now,
				Outcome:   domain.InstallFailed,
				Reason:    "installer exited with code 1: disk full",
			},
			JournalErr: errors.New("journal install record: permission denied"),
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "spacy installed")
	assert.Contains(t, output, "torch failed: installer exited with code 1: disk full")
	assert.Contains(t, output, "warning: journal install record: permission denied")
}

func TestRenderHistory(t *testing.T) {
	records := []domain.InstallRecord{
		{Library: "spacy", Timestamp: time.Date(2026, 3, 9, 15, 4, 5, 0, time.UTC), Outcome: domain.InstallSucceeded},
		{Library: "torch", Timestamp: time.Date(2026, 3, 9, 15, 6, 0, 0, time.UTC), Outcome: domain.InstallFailed, Reason: "exit 1"},
	}

	output, err := RenderHistory(records)
	require.NoError(t, err)
	assert.Contains(t, output, "Install History")
	assert.Contains(t, output, "2026-03-09T15:04:05Z")
	assert.Contains(t, output, "spacy")
	assert.Contains(t, output, "failure: exit 1")
}

func TestRenderHistoryEmpty(t *testing.T) {
	output, err := RenderHistory(nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No installs recorded yet.")
}
