// Package tui implements the interactive theme panel: a list of theme
// attributes whose values are cycled through the theme store, with a live
// preview of the root attributes and of one compiled primitive.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/onceui/internal/style"
	"github.com/alexisbeaulieu97/onceui/internal/theme"
	"github.com/alexisbeaulieu97/onceui/internal/tokens"
)

// ThemeChangedMsg reports a change applied to the store outside the panel.
type ThemeChangedMsg struct {
	Change theme.Change
}

// Model contains the Bubbletea state for the theme panel.
type Model struct {
	ctx        context.Context
	store      *theme.Store
	resolver   *style.Resolver
	names      []string
	primitives []style.Primitive
	preview    style.Props

	cursor    int
	primitive int
	status    string
	err       error
	quitting  bool

	keys keyMap
	help help.Model
}

// DefaultPreview is the prop bag compiled in the preview pane when the
// caller does not supply one.
func DefaultPreview() style.Props {
	return style.Props{
		Direction:    "column",
		Horizontal:   "center",
		Gap:          tokens.Token("8"),
		Padding:      tokens.Token("16"),
		Background:   "surface",
		Border:       "neutral-alpha-medium",
		Radius:       "l",
		Variant:      "body-default-m",
		OnBackground: "neutral-strong",
	}
}

// NewModel constructs a panel over store. The resolver compiles the preview.
func NewModel(ctx context.Context, store *theme.Store, resolver *style.Resolver, preview style.Props) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if resolver == nil {
		resolver = style.NewResolver(nil)
	}
	return Model{
		ctx:        ctx,
		store:      store,
		resolver:   resolver,
		names:      theme.Names(),
		primitives: style.Primitives(),
		preview:    preview,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the attribute under the cursor.
func (m Model) Selected() string {
	return m.names[m.cursor]
}

// Primitive returns the primitive shown in the preview.
func (m Model) Primitive() style.Primitive {
	return m.primitives[m.primitive]
}

// Err returns the last rejected mutation, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Compiled resolves the preview props for the current primitive. The theme
// mode is mirrored onto the dark/light props so the preview reflects it.
func (m Model) Compiled() style.Compiled {
	props := m.preview
	switch m.store.Config().Theme {
	case "dark":
		props.Dark = true
	case "light":
		props.Light = true
	}
	return m.resolver.Resolve(m.Primitive(), props)
}
