package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervu/internal/screen"
)

type recordScreen struct {
	name     string
	inited   bool
	received []tea.Msg
}

func (r *recordScreen) Init() tea.Cmd {
	r.inited = true
	return nil
}

func (r *recordScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	r.received = append(r.received, msg)
	return r, nil
}

func (r *recordScreen) View(int, int) string { return r.name }
func (r *recordScreen) Title() string        { return r.name }

func TestRouterForwardsMessages(t *testing.T) {
	a := &recordScreen{name: "a"}
	r := New(a)

	r.Update("hello")
	if len(a.received) != 1 {
		t.Fatalf("screen received %d messages, want 1", len(a.received))
	}
	if r.View(10, 10) != "a" {
		t.Errorf("view = %q, want a", r.View(10, 10))
	}
}

func TestRouterSwitchesScreens(t *testing.T) {
	a := &recordScreen{name: "a"}
	b := &recordScreen{name: "b"}
	r := New(a)

	r.Update(SwitchScreenMsg{Screen: b})

	if r.Active() != b {
		t.Fatal("active screen did not switch")
	}
	if !b.inited {
		t.Error("new screen was not initialized")
	}

	r.Update("after")
	if len(a.received) != 0 {
		t.Error("old screen still receives messages")
	}
	if len(b.received) != 1 {
		t.Errorf("new screen received %d messages, want 1", len(b.received))
	}
}
