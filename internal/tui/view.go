package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/onceui/internal/theme"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	cfg := m.store.Config()

	sections := []string{titleStyle.Render("onceui • theme")}
	sections = append(sections, m.renderAttributes(cfg))

	sections = append(sections, sectionStyle.Render("Root"), renderRoot(cfg))

	out := m.Compiled()
	preview := []string{fmt.Sprintf("class=%q", out.ClassName())}
	if len(out.Style) > 0 {
		preview = append(preview, fmt.Sprintf("style=%q", out.Style.String()))
	}
	for _, d := range out.Diagnostics {
		preview = append(preview, warningStyle.Render("! "+d.Message))
	}
	sections = append(sections,
		sectionStyle.Render(fmt.Sprintf("Preview (%s)", m.Primitive().Name)),
		codeStyle.Render(strings.Join(preview, "\n")),
	)

	switch {
	case m.err != nil:
		sections = append(sections, errorStyle.Render(m.err.Error()))
	case m.status != "":
		sections = append(sections, statusStyle.Render(m.status))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderAttributes(cfg theme.Config) string {
	lines := make([]string, 0, len(m.names))
	for i, name := range m.names {
		value, _ := cfg.Get(name)
		label := fmt.Sprintf("%-12s", name)
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("› "+label+" ‹ "+value+" ›"))
			continue
		}
		lines = append(lines, itemStyle.Render("  "+label+"   "+value))
	}
	return strings.Join(lines, "\n")
}

func renderRoot(cfg theme.Config) string {
	attrs := cfg.Attributes()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, attrs[k]))
	}
	return codeStyle.Render(strings.Join(parts, "\n"))
}
