package menu

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/mllib-cli/internal/application"
	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/bnema/mllib-cli/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	libraries []domain.Library
}

var _ ports.Catalog = (*stubCatalog)(nil)

func (c *stubCatalog) Categories(_ context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	seen := make(map[domain.Category]struct{})
	for _, library := range c.libraries {
		if _, ok := seen[library.Category]; ok {
			continue
		}
		seen[library.Category] = struct{}{}
		categories = append(categories, library.Category)
	}

	return categories, nil
}

func (c *stubCatalog) ListByCategory(_ context.Context, category domain.Category) ([]domain.Library, error) {
	var libraries []domain.Library
	for _, library := range c.libraries {
		if library.Category == category {
			libraries = append(libraries, library)
		}
	}
	if len(libraries) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, category)
	}

	return libraries, nil
}

func (c *stubCatalog) Describe(_ context.Context, name string) (domain.Library, error) {
	for _, library := range c.libraries {
		if library.Name == name {
			return library, nil
		}
	}

	return domain.Library{}, fmt.Errorf("%w: %q", domain.ErrLibraryNotFound, name)
}

type stubInstaller struct {
	failures map[string]error
	calls    []string
}

var _ ports.Installer = (*stubInstaller)(nil)

func (i *stubInstaller) Install(_ context.Context, name string) error {
	i.calls = append(i.calls, name)
	return i.failures[name]
}

type memoryJournal struct {
	records []domain.InstallRecord
}

var _ ports.InstallJournal = (*memoryJournal)(nil)

func (j *memoryJournal) Append(_ context.Context, record domain.InstallRecord) error {
	j.records = append(j.records, record)
	return nil
}

func (j *memoryJournal) List(_ context.Context) ([]domain.InstallRecord, error) {
	return j.records, nil
}

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time {
	return c.now
}

func menuLibraries() []domain.Library {
	return []domain.Library{
		{Name: "scikit-learn", Category: domain.CategoryCoreFrameworks, SizeMB: 300, Description: "Traditional ML algorithms & tools"},
		{Name: "matplotlib", Category: domain.CategoryVisualization, SizeMB: 50, Description: "Basic plotting library"},
		{Name: "spacy", Category: domain.CategoryNLP, SizeMB: 500, Description: "industrial NLP toolkit"},
		{Name: "nltk", Category: domain.CategoryNLP, SizeMB: 500, Description: "Natural Language Toolkit"},
		{Name: "gensim", Category: domain.CategoryNLP, SizeMB: 200, Description: "Topic modeling & document similarity"},
	}
}

func newTestMenu(t *testing.T, installer *stubInstaller, journal *memoryJournal) Model {
	t.Helper()

	now := time.Date(2026, 3, 9, 15, 4, 5, 0, time.UTC)
	service := application.NewService(&stubCatalog{libraries: menuLibraries()}, installer, journal, stubClock{now: now})

	model, err := New(context.Background(), service)
	require.NoError(t, err)
	return model
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func pressKey(t *testing.T, m Model, key string) Model {
	t.Helper()

	switch key {
	case "enter":
		return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	case "up":
		return press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		return press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	case "backspace":
		return press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	default:
		return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
}

// runPendingInstall executes the install command armed by a confirmed menu
// and feeds its completion message back into the model.
func runPendingInstall(t *testing.T, m Model) Model {
	t.Helper()

	require.NotNil(t, m.installCmd)
	msg, ok := m.installCmd().(installDoneMsg)
	require.True(t, ok)
	return press(t, m, msg)
}

func TestMenuStartsOnCategoryMenu(t *testing.T) {
	t.Parallel()

	m := newTestMenu(t, &stubInstaller{}, &memoryJournal{})
	assert.Equal(t, stateCategoryMenu, m.state)

	view := m.View()
	assert.Contains(t, view, "ML Library Installer")
	assert.Contains(t, view, "Core Frameworks")
	assert.Contains(t, view, "NLP")
}

func TestMenuInstallFlowSuccess(t *testing.T) {
	t.Parallel()

	installer := &stubInstaller{}
	journal := &memoryJournal{}
	m := newTestMenu(t, installer, journal)

	// CategoryMenu -> NLP (third category).
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "enter")
	require.Equal(t, stateLibraryMenu, m.state)
	assert.Contains(t, m.View(), "spacy")

	// LibraryMenu -> Detail(spacy).
	m = pressKey(t, m, "enter")
	require.Equal(t, stateDetail, m.state)
	assert.Contains(t, m.View(), "industrial NLP toolkit")
	assert.Contains(t, m.View(), "size estimate: ~500MB")

	// Detail -> Confirm -> install.
	m = pressKey(t, m, "i")
	require.Equal(t, stateConfirm, m.state)
	assert.Contains(t, m.View(), "Install spacy? Size: ~500MB")

	m = pressKey(t, m, "y")
	require.Equal(t, stateInstalling, m.state)

	m = runPendingInstall(t, m)
	assert.Equal(t, stateLibraryMenu, m.state)
	assert.Equal(t, []string{"spacy"}, installer.calls)
	assert.Contains(t, m.View(), "spacy installed")

	require.Len(t, journal.records, 1)
	assert.Equal(t, "2026-03-09T15:04:05Z spacy success", journal.records[0].LogLine())
}

func TestMenuInstallFailureReturnsToLibraryMenu(t *testing.T) {
	t.Parallel()

	installer := &stubInstaller{failures: map[string]error{
		"spacy": &domain.InstallFailure{ExitCode: 1, Stderr: "no space left on device"},
	}}
	journal := &memoryJournal{}
	m := newTestMenu(t, installer, journal)

	m = pressKey(t, m, "down")
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "i")
	m = pressKey(t, m, "y")
	m = runPendingInstall(t, m)

	assert.Equal(t, stateLibraryMenu, m.state)
	assert.NotEqual(t, stateDone, m.state)
	assert.Contains(t, m.View(), "spacy failed")
	assert.Contains(t, m.View(), "exited with code 1")

	require.Len(t, journal.records, 1)
	assert.Equal(t, domain.InstallFailed, journal.records[0].Outcome)
}

func TestMenuConfirmDeclineReturnsToDetail(t *testing.T) {
	t.Parallel()

	installer := &stubInstaller{}
	m := newTestMenu(t, installer, &memoryJournal{})

	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "i")
	require.Equal(t, stateConfirm, m.state)

	m = pressKey(t, m, "n")
	assert.Equal(t, stateDetail, m.state)
	assert.Empty(t, installer.calls)
}

func TestMenuInstallCategory(t *testing.T) {
	t.Parallel()

	installer := &stubInstaller{}
	journal := &memoryJournal{}
	m := newTestMenu(t, installer, journal)

	m = pressKey(t, m, "down")
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "c")
	require.Equal(t, stateConfirm, m.state)
	assert.Contains(t, m.View(), "Install NLP?")

	m = pressKey(t, m, "y")
	m = runPendingInstall(t, m)

	assert.Equal(t, stateLibraryMenu, m.state)
	assert.Equal(t, []string{"spacy", "nltk", "gensim"}, installer.calls)
	assert.Len(t, journal.records, 3)
}

func TestMenuInstallAllFromCategoryMenu(t *testing.T) {
	t.Parallel()

	installer := &stubInstaller{}
	journal := &memoryJournal{}
	m := newTestMenu(t, installer, journal)

	m = pressKey(t, m, "a")
	require.Equal(t, stateConfirm, m.state)
	assert.Contains(t, m.View(), "Install all 5 libraries?")

	m = pressKey(t, m, "y")
	m = runPendingInstall(t, m)

	assert.Equal(t, stateCategoryMenu, m.state)
	assert.Len(t, installer.calls, 5)
	assert.Len(t, journal.records, 5)
}

func TestMenuFuzzyFilter(t *testing.T) {
	t.Parallel()

	m := newTestMenu(t, &stubInstaller{}, &memoryJournal{})

	m = pressKey(t, m, "down")
	m = pressKey(t, m, "down")
	m = pressKey(t, m, "enter")
	require.Len(t, m.visible, 3)

	m = pressKey(t, m, "/")
	require.True(t, m.filtering)
	m = pressKey(t, m, "spa")
	require.Len(t, m.visible, 1)
	assert.Equal(t, "spacy", m.visible[0].Name)

	// Esc clears the filter entirely.
	m = pressKey(t, m, "esc")
	assert.False(t, m.filtering)
	assert.Len(t, m.visible, 3)
}

func TestMenuQuitFromCategoryMenu(t *testing.T) {
	t.Parallel()

	m := newTestMenu(t, &stubInstaller{}, &memoryJournal{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	next, ok := updated.(Model)
	require.True(t, ok)
	assert.Equal(t, stateDone, next.state)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMenuCtrlCQuitsFromAnyState(t *testing.T) {
	t.Parallel()

	m := newTestMenu(t, &stubInstaller{}, &memoryJournal{})
	m = pressKey(t, m, "enter")
	require.Equal(t, stateLibraryMenu, m.state)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	next, ok := updated.(Model)
	require.True(t, ok)
	assert.Equal(t, stateDone, next.state)
	require.NotNil(t, cmd)
}

func TestMenuEscWalksBack(t *testing.T) {
	t.Parallel()

	m := newTestMenu(t, &stubInstaller{}, &memoryJournal{})

	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	require.Equal(t, stateDetail, m.state)

	m = pressKey(t, m, "esc")
	assert.Equal(t, stateLibraryMenu, m.state)

	m = pressKey(t, m, "esc")
	assert.Equal(t, stateCategoryMenu, m.state)
}
