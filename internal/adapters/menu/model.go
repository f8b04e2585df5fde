package menu

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/mllib-cli/internal/application"
	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

type state int

const (
	stateCategoryMenu state = iota
	stateLibraryMenu
	stateDetail
	stateConfirm
	stateInstalling
	stateDone
)

// confirmScope says what a pending confirmation would install.
type confirmScope int

const (
	scopeLibrary confirmScope = iota
	scopeCategory
	scopeAll
)

type installDoneMsg struct {
	reports []application.InstallReport
	err     error
}

// Model is the interactive catalog menu. All selection state lives here, on
// the model, and is discarded when the program exits.
type Model struct {
	ctx     context.Context
	service *application.Service
	styles  styles
	spinner spinner.Model

	state state

	overview      application.Overview
	categoryIndex int

	category     application.CategoryView
	libraryIndex int
	filter       string
	filtering    bool
	visible      []domain.Library

	detail domain.Library

	scope        confirmScope
	confirmLabel string
	installCmd   tea.Cmd

	reports []application.InstallReport
	err     error
}

// New loads the catalog overview and builds the menu in its initial state.
func New(ctx context.Context, service *application.Service) (Model, error) {
	overview, err := service.Overview(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("load catalog: %w", err)
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		ctx:      ctx,
		service:  service,
		styles:   newStyles(),
		spinner:  s,
		state:    stateCategoryMenu,
		overview: overview,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.state = stateDone
			return m, tea.Quit
		}
		return m.updateKey(msg)
	case spinner.TickMsg:
		if m.state != stateInstalling {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case installDoneMsg:
		m.reports = msg.reports
		m.err = msg.err
		m.state = stateLibraryMenu
		if len(m.category.Libraries) == 0 {
			// Install-all confirmed straight from the category menu.
			m.state = stateCategoryMenu
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateCategoryMenu:
		return m.updateCategoryMenu(msg)
	case stateLibraryMenu:
		return m.updateLibraryMenu(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case stateConfirm:
		return m.updateConfirm(msg)
	case stateInstalling:
		// The running install is awaited to completion; no mid-install keys.
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) updateCategoryMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyUp || msg.String() == "k":
		if m.categoryIndex > 0 {
			m.categoryIndex--
		}
	case msg.Type == tea.KeyDown || msg.String() == "j":
		if m.categoryIndex < len(m.overview.Categories)-1 {
			m.categoryIndex++
		}
	case msg.Type == tea.KeyEnter:
		if len(m.overview.Categories) == 0 {
			return m, nil
		}
		return m.enterCategory(m.overview.Categories[m.categoryIndex]), nil
	case msg.String() == "a":
		m.scope = scopeAll
		m.confirmLabel = fmt.Sprintf("Install all %d libraries? Total size: %s",
			m.overview.LibraryCount(), domain.FormatSize(m.overview.TotalMB()))
		m.installCmd = m.installAllCmd()
		m.category = application.CategoryView{}
		m.state = stateConfirm
	case msg.Type == tea.KeyEsc || msg.String() == "q":
		m.state = stateDone
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateLibraryMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.updateFilter(msg)
	}

	switch {
	case msg.Type == tea.KeyUp || msg.String() == "k":
		if m.libraryIndex > 0 {
			m.libraryIndex--
		}
	case msg.Type == tea.KeyDown || msg.String() == "j":
		if m.libraryIndex < len(m.visible)-1 {
			m.libraryIndex++
		}
	case msg.Type == tea.KeyEnter:
		if len(m.visible) == 0 {
			return m, nil
		}
		m.detail = m.visible[m.libraryIndex]
		m.state = stateDetail
	case msg.String() == "/":
		m.filtering = true
		m.filter = ""
		m.applyFilter()
	case msg.String() == "c":
		m.scope = scopeCategory
		m.confirmLabel = fmt.Sprintf("Install %s? Size: %s",
			m.category.Category.Title(), domain.FormatSize(m.category.TotalMB))
		m.installCmd = m.installCategoryCmd(m.category.Category)
		m.state = stateConfirm
	case msg.Type == tea.KeyEsc || msg.String() == "q":
		m.state = stateCategoryMenu
		m.reports = nil
		m.err = nil
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.applyFilter()
	case tea.KeyBackspace:
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.applyFilter()
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter || msg.String() == "i":
		m.scope = scopeLibrary
		m.confirmLabel = fmt.Sprintf("Install %s? Size: %s",
			m.detail.Name, domain.FormatSize(m.detail.SizeMB))
		m.installCmd = m.installLibraryCmd(m.detail.Name)
		m.state = stateConfirm
	case msg.Type == tea.KeyEsc || msg.String() == "q":
		m.state = stateLibraryMenu
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.state = stateInstalling
		m.reports = nil
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.installCmd)
	case "n", "N":
		return m.cancelConfirm(), nil
	default:
		if msg.Type == tea.KeyEsc {
			return m.cancelConfirm(), nil
		}
	}

	return m, nil
}

func (m Model) cancelConfirm() Model {
	if m.scope == scopeAll {
		m.state = stateCategoryMenu
		return m
	}
	if m.scope == scopeLibrary {
		m.state = stateDetail
		return m
	}

	m.state = stateLibraryMenu
	return m
}

func (m Model) enterCategory(view application.CategoryView) Model {
	m.category = view
	m.libraryIndex = 0
	m.filter = ""
	m.filtering = false
	m.reports = nil
	m.err = nil
	m.state = stateLibraryMenu
	m.applyFilter()
	return m
}

func (m *Model) applyFilter() {
	m.libraryIndex = 0

	if m.filter == "" {
		m.visible = make([]domain.Library, len(m.category.Libraries))
		copy(m.visible, m.category.Libraries)
		return
	}

	names := make([]string, len(m.category.Libraries))
	for i, library := range m.category.Libraries {
		names[i] = library.Name
	}

	matches := fuzzy.Find(m.filter, names)
	m.visible = make([]domain.Library, 0, len(matches))
	for _, match := range matches {
		m.visible = append(m.visible, m.category.Libraries[match.Index])
	}
}

func (m Model) installLibraryCmd(name string) tea.Cmd {
	return func() tea.Msg {
		report, err := m.service.Install(m.ctx, name)
		if err != nil {
			return installDoneMsg{err: err}
		}
		return installDoneMsg{reports: []application.InstallReport{report}}
	}
}

func (m Model) installCategoryCmd(category domain.Category) tea.Cmd {
	return func() tea.Msg {
		reports, err := m.service.InstallCategory(m.ctx, category)
		return installDoneMsg{reports: reports, err: err}
	}
}

func (m Model) installAllCmd() tea.Cmd {
	return func() tea.Msg {
		reports, err := m.service.InstallAll(m.ctx)
		return installDoneMsg{reports: reports, err: err}
	}
}

// Run drives the interactive menu until the user quits.
func Run(ctx context.Context, service *application.Service, input io.Reader, output io.Writer) error {
	model, err := New(ctx, service)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	return err
}
