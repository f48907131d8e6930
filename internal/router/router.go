package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/screen"
)

// SwitchScreenMsg requests the router to replace the active screen.
// The interview flow is strictly linear (welcome → interview → report),
// so there is no back-navigation stack.
type SwitchScreenMsg struct {
	Screen screen.Screen
}

// Router holds the active screen and forwards messages to it.
type Router struct {
	active screen.Screen
}

// New creates a Router showing the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards a message to the active screen, handling switches.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if sw, ok := msg.(SwitchScreenMsg); ok {
		r.active = sw.Screen
		return r.active.Init()
	}

	if r.active == nil {
		return nil
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
