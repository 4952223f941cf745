package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/onceui/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case ThemeChangedMsg:
		m.status = describe(msg.Change)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Primitive):
		m.primitive = (m.primitive + 1) % len(m.primitives)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) cycle(step int) {
	change, err := m.store.Cycle(m.ctx, m.Selected(), step)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = describe(change)
}

func describe(change theme.Change) string {
	parts := make([]string, 0, len(change.Attributes))
	for _, name := range change.Attributes {
		from, _ := change.Previous.Get(name)
		to, _ := change.Current.Get(name)
		parts = append(parts, fmt.Sprintf("%s: %s → %s", name, from, to))
	}
	return strings.Join(parts, ", ")
}
