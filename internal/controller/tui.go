package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"openheader.dev/pkg/openheader/internal/host"
)

// Lines taken by the tab bar, its rule and the footer.
const sessionChromeLines = 4

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	ruleStyle        = lipgloss.NewStyle().Faint(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TUI implements UI using Bubble Tea for the interactive session. One-shot
// output is shared with SimpleUI.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// RunSession runs a full-screen session until the user quits.
func (t *TUI) RunSession(ctx context.Context, workspace Workspace, plugin host.Plugin) error {
	window := newSessionWindow(workspace)

	if err := plugin.Activate(ctx, window); err != nil {
		return fmt.Errorf("activate plugin: %w", err)
	}

	defer func() {
		if err := plugin.Deactivate(ctx); err != nil {
			slog.Error("Failed to deactivate plugin", "error", err)
		}
	}()

	program := tea.NewProgram(
		newSessionModel(ctx, window),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}

	return nil
}

type sessionKeyMap struct {
	next     key.Binding
	previous key.Binding
	quit     key.Binding
}

func (k sessionKeyMap) bindings() []key.Binding {
	return []key.Binding{k.next, k.previous, k.quit}
}

func defaultSessionKeyMap() sessionKeyMap {
	return sessionKeyMap{
		next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		previous: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// sessionModel is the Bubble Tea model of an editor window: a tab per open
// document and a read-only viewport on the active one.
type sessionModel struct {
	ctx      context.Context
	window   *sessionWindow
	keys     sessionKeyMap
	viewport viewport.Model
	shownID  string
	status   string
	width    int
	quitting bool
}

func newSessionModel(ctx context.Context, window *sessionWindow) sessionModel {
	model := sessionModel{
		ctx:      ctx,
		window:   window,
		keys:     defaultSessionKeyMap(),
		viewport: viewport.New(0, 0),
	}
	model.syncViewport()

	return model
}

func (sm sessionModel) Init() tea.Cmd {
	return nil
}

func (sm sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.viewport.Width = msg.Width
		sm.viewport.Height = max(msg.Height-sessionChromeLines, 1)

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	sm.viewport, cmd = sm.viewport.Update(msg)

	return sm, cmd
}

func (sm sessionModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, sm.keys.quit):
		sm.quitting = true
		return sm, tea.Quit

	case key.Matches(msg, sm.keys.next):
		sm.window.Next()
		sm.status = ""
		sm.syncViewport()

		return sm, nil

	case key.Matches(msg, sm.keys.previous):
		sm.window.Previous()
		sm.status = ""
		sm.syncViewport()

		return sm, nil
	}

	if registered, ok := sm.window.actions.match(msg); ok {
		sm.status = ""
		if err := registered.handler(sm.ctx); err != nil {
			slog.Error("Action failed", "action", registered.action.Name, "error", err)
			sm.status = err.Error()
		}

		sm.syncViewport()

		return sm, nil
	}

	var cmd tea.Cmd
	sm.viewport, cmd = sm.viewport.Update(msg)

	return sm, cmd
}

// syncViewport reloads the viewport when the active document changed.
func (sm *sessionModel) syncViewport() {
	active, ok := sm.window.ActiveDocument()
	if !ok {
		sm.shownID = ""
		sm.viewport.SetContent("")

		return
	}

	if active.ID == sm.shownID {
		return
	}

	sm.shownID = active.ID
	sm.viewport.SetContent(sm.window.Content(active.ID))
	sm.viewport.GotoTop()
}

func (sm sessionModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	sm.renderTabs(&b)
	b.WriteString(sm.viewport.View())
	b.WriteString("\n")
	sm.renderFooter(&b)

	return b.String()
}

func (sm sessionModel) renderTabs(b *strings.Builder) {
	active, _ := sm.window.ActiveDocument()

	tabs := make([]string, 0)
	for _, doc := range sm.window.Documents() {
		style := inactiveTabStyle
		if doc.ID == active.ID {
			style = activeTabStyle
		}

		tabs = append(tabs, style.Render(doc.Name))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	ruleWidth := sm.width
	if ruleWidth <= 0 {
		ruleWidth = 40
	}

	b.WriteString(ruleStyle.Render(strings.Repeat("─", ruleWidth)))
	b.WriteString("\n")
}

func (sm sessionModel) renderFooter(b *strings.Builder) {
	bindings := []key.Binding{sm.keys.next, sm.keys.previous}
	for _, registered := range sm.window.actions.list() {
		bindings = append(bindings, registered.binding)
	}

	bindings = append(bindings, sm.keys.quit)

	help := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		help = append(help, h.Key+": "+h.Desc)
	}

	b.WriteString(helpStyle.Render(strings.Join(help, " | ")))

	if sm.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(sm.status))
	}
}
