package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"algebramon/internal/screen"
)

// fakeScreen records lifecycle calls and can swap itself on update.
type fakeScreen struct {
	title   string
	inits   int
	updates int
	swapTo  screen.Screen
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	if f.swapTo != nil {
		return f.swapTo, nil
	}
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.title }
func (f *fakeScreen) Title() string        { return f.title }

func active(t *testing.T, r *Router) string {
	t.Helper()
	a := r.Active()
	if a == nil {
		t.Fatal("no active screen")
	}
	return a.Title()
}

func TestNavigationStack(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	picker := &fakeScreen{title: "picker"}
	r.Update(PushScreenMsg{Screen: picker})
	if got := active(t, r); got != "picker" {
		t.Fatalf("after push: active = %q", got)
	}
	if picker.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", picker.inits)
	}

	play := &fakeScreen{title: "play"}
	r.Update(PushScreenMsg{Screen: play})
	if r.Depth() != 3 {
		t.Fatalf("depth = %d, want 3", r.Depth())
	}

	r.Update(PopScreenMsg{})
	if got := active(t, r); got != "picker" {
		t.Errorf("after pop: active = %q", got)
	}
	r.Update(PopScreenMsg{})
	if got := active(t, r); got != "home" {
		t.Errorf("after second pop: active = %q", got)
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{title: "home"})
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1 (bottom screen must survive)", r.Depth())
	}
	if got := active(t, r); got != "home" {
		t.Errorf("active = %q", got)
	}
}

func TestReplaceSwapsWithoutGrowingStack(t *testing.T) {
	r := New(&fakeScreen{title: "starter"})
	r.Update(PushScreenMsg{Screen: &fakeScreen{title: "old"}})

	next := &fakeScreen{title: "home"}
	r.Update(ReplaceScreenMsg{Screen: next})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if got := active(t, r); got != "home" {
		t.Errorf("active = %q", got)
	}
	if next.inits != 1 {
		t.Errorf("replacement inits = %d, want 1", next.inits)
	}

	// Popping lands on the original bottom, not the replaced screen.
	r.Update(PopScreenMsg{})
	if got := active(t, r); got != "starter" {
		t.Errorf("after pop: active = %q", got)
	}
}

func TestUpdateReachesOnlyActiveScreen(t *testing.T) {
	below := &fakeScreen{title: "home"}
	top := &fakeScreen{title: "play"}
	r := New(below)
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if top.updates != 1 {
		t.Errorf("active updates = %d, want 1", top.updates)
	}
	if below.updates != 0 {
		t.Errorf("buried screen updates = %d, want 0", below.updates)
	}
}

func TestUpdateAdoptsReturnedScreen(t *testing.T) {
	next := &fakeScreen{title: "next"}
	first := &fakeScreen{title: "first", swapTo: next}
	r := New(first)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if got := active(t, r); got != "next" {
		t.Errorf("active = %q, want the screen returned from Update", got)
	}
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{title: "home"})
	r.Push(&fakeScreen{title: "stats"})
	if got := r.View(80, 24); got != "stats" {
		t.Errorf("view = %q, want stats", got)
	}
}
