package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/ui/theme"
)

// Menu is a vertical single-choice menu.
type Menu struct {
	Items    []string
	Selected int
}

// NewMenu creates a menu over the given items.
func NewMenu(items []string) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation. It returns true when the user
// confirmed the selection with enter.
func (m Menu) Update(msg tea.Msg) (Menu, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		return m, true
	}

	return m, false
}

// Value returns the currently selected item.
func (m Menu) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		if i == m.Selected {
			s += theme.Selected.Render("  ▸ "+item) + "\n"
		} else {
			s += theme.Unselected.Render("    "+item) + "\n"
		}
	}
	return s
}
