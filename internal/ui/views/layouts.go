package views

import (
	"fmt"
	"strings"

	"promodeck/internal/domain"
)

// Built-in layout names
const (
	LayoutCard    = "card"
	LayoutCompact = "compact"
)

// ItemRenderer renders one activity as exactly ItemHeight lines
type ItemRenderer func(a domain.Activity, isSelected bool, width int, keyword string) string

// Layout describes how list items are drawn
type Layout struct {
	Name       string
	ItemHeight int // rows per item, fixed for the whole list
	Render     ItemRenderer
}

// Layouts is a registry of list layouts, cycled in registration order
type Layouts struct {
	order  []string
	byName map[string]Layout
}

// NewLayouts creates an empty registry
func NewLayouts() *Layouts {
	return &Layouts{byName: make(map[string]Layout)}
}

// DefaultLayouts returns a registry holding the card and compact layouts
func DefaultLayouts(r *ActivityRenderer) *Layouts {
	l := NewLayouts()
	_ = l.Register(Layout{Name: LayoutCard, ItemHeight: 3, Render: r.RenderCard})
	_ = l.Register(Layout{Name: LayoutCompact, ItemHeight: 1, Render: r.RenderCompact})
	return l
}

// Register adds a layout. Names must be unique and item heights positive.
func (l *Layouts) Register(layout Layout) error {
	switch {
	case layout.Name == "":
		return fmt.Errorf("layout name is required")
	case layout.ItemHeight < 1:
		return fmt.Errorf("layout %q: item height must be positive, got %d", layout.Name, layout.ItemHeight)
	case layout.Render == nil:
		return fmt.Errorf("layout %q: renderer is required", layout.Name)
	}
	if _, exists := l.byName[layout.Name]; exists {
		return fmt.Errorf("layout %q already registered", layout.Name)
	}
	l.order = append(l.order, layout.Name)
	l.byName[layout.Name] = layout
	return nil
}

// Get looks up a layout by name
func (l *Layouts) Get(name string) (Layout, bool) {
	layout, ok := l.byName[name]
	return layout, ok
}

// Lookup returns the named layout, or the first registered one when unknown
func (l *Layouts) Lookup(name string) Layout {
	if layout, ok := l.byName[name]; ok {
		return layout
	}
	if len(l.order) == 0 {
		return Layout{}
	}
	return l.byName[l.order[0]]
}

// Names returns the registered names in order
func (l *Layouts) Names() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Next returns the layout after name, wrapping around
func (l *Layouts) Next(name string) Layout {
	for i, n := range l.order {
		if n == name {
			return l.byName[l.order[(i+1)%len(l.order)]]
		}
	}
	return l.Lookup("")
}

// renderItem renders a through layout, forcing exactly ItemHeight lines
func (layout Layout) renderItem(a domain.Activity, isSelected bool, width int, keyword string) string {
	lines := strings.Split(layout.Render(a, isSelected, width, keyword), "\n")
	for len(lines) < layout.ItemHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines[:layout.ItemHeight], "\n")
}
