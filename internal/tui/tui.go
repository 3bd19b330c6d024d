// Package tui is a small token-preview TUI: it renders the resolved
// theme of a scope and lets the user flip the color mode live.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/tint/internal/colormode"
	"github.com/tOgg1/tint/internal/provider"
	"github.com/tOgg1/tint/internal/styles"
)

// Config controls preview TUI behavior.
type Config struct {
	Scope *provider.Scope
}

// Run starts the preview TUI and blocks until it exits.
func Run(cfg Config) error {
	model, err := newModel(cfg)
	if err != nil {
		return err
	}
	defer model.close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// contextMsg carries a re-derived scope context into the update loop.
type contextMsg provider.Context

type model struct {
	scope   *provider.Scope
	ctx     provider.Context
	changes chan provider.Context
	cancel  func()

	width  int
	height int
}

func newModel(cfg Config) (*model, error) {
	if cfg.Scope == nil {
		return nil, fmt.Errorf("tui: scope is required")
	}

	m := &model{
		scope:   cfg.Scope,
		ctx:     cfg.Scope.Context(),
		changes: make(chan provider.Context, 8),
	}
	m.cancel = cfg.Scope.OnChange(func(ctx provider.Context) {
		select {
		case m.changes <- ctx:
		default:
		}
	})
	return m, nil
}

func (m *model) close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *model) Init() tea.Cmd {
	return m.waitForChange
}

func (m *model) waitForChange() tea.Msg {
	return contextMsg(<-m.changes)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case contextMsg:
		m.ctx = provider.Context(msg)
		return m, m.waitForChange

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "d":
			_ = m.ctx.SetMode(colormode.ModeDay)
		case "n":
			_ = m.ctx.SetMode(colormode.ModeNight)
		case "a":
			_ = m.ctx.SetMode(colormode.ModeAuto)
		}
		// SetMode re-derives synchronously; read the fresh context
		// rather than waiting for the change notification.
		m.ctx = m.scope.Context()
		return m, nil
	}

	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	header := styles.New(m.ctx.Theme, styles.Props{Color: "colors.accent", Bold: true})
	b.WriteString(header.Render("tint theme preview"))
	b.WriteString("\n")

	meta := styles.Muted(m.ctx.Theme)
	b.WriteString(meta.Render(fmt.Sprintf("mode=%s polarity=%s", m.ctx.Mode, m.ctx.Polarity)))
	b.WriteString("\n\n")

	b.WriteString(renderTokens(m.ctx))
	b.WriteString("\n")
	b.WriteString(meta.Render("d day · n night · a auto · q quit"))

	return b.String()
}

// renderTokens lists the color tokens of the resolved theme, each with
// a swatch in its own color.
func renderTokens(ctx provider.Context) string {
	raw, ok := ctx.Theme.Get("colors")
	if !ok {
		return "(theme has no colors)"
	}
	colors, ok := raw.(map[string]any)
	if !ok {
		return "(theme has no colors)"
	}

	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	label := styles.Text(ctx.Theme)
	var rows []string
	for _, name := range names {
		value, ok := colors[name].(string)
		if !ok {
			continue
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
		rows = append(rows, fmt.Sprintf("%s %s %s",
			swatch,
			label.Width(14).Render(name),
			styles.Muted(ctx.Theme).Render(value),
		))
	}
	return strings.Join(rows, "\n")
}
