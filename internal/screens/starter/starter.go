// Package starter is the first-run flow: name yourself, pick a
// companion. The companion's type grants a study xp bonus on matching
// question categories.
package starter

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"algebramon/internal/gamedata"
	"algebramon/internal/profile"
	"algebramon/internal/router"
	"algebramon/internal/screen"
	"algebramon/internal/ui/components"
	"algebramon/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepPick
)

// StarterScreen runs once for a fresh profile.
type StarterScreen struct {
	prof     *profile.Profile
	profiles profile.Store
	options  []gamedata.StarterOption
	next     func() screen.Screen

	step  step
	input components.TextInput
	menu  components.Menu
	err   error
}

var _ screen.Screen = (*StarterScreen)(nil)

// New creates the starter flow. next builds the screen to show once
// the profile is complete.
func New(prof *profile.Profile, profiles profile.Store, reg *gamedata.Registry, next func() screen.Screen) *StarterScreen {
	s := &StarterScreen{
		prof:     prof,
		profiles: profiles,
		options:  reg.Starters(),
		next:     next,
		input:    components.NewTextInput("your name", 20),
	}

	items := make([]components.MenuItem, 0, len(s.options))
	for _, opt := range s.options {
		opt := opt
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  (%s)", opt.Name, opt.Type),
			Action: func() tea.Cmd {
				return s.choose(opt)
			},
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *StarterScreen) choose(opt gamedata.StarterOption) tea.Cmd {
	s.prof.Starter = profile.Starter{Name: opt.Name, Type: opt.Type}
	if err := s.profiles.Update(context.Background(), s.prof); err != nil {
		s.err = err
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s.next()}
	}
}

func (s *StarterScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StarterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepName:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			name := strings.TrimSpace(s.input.Value())
			if name == "" {
				s.input.Submit(false)
				return s, nil
			}
			s.prof.DisplayName = name
			s.step = stepPick
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case stepPick:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StarterScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("WELCOME TO ALGEBRAMON"))
	b.WriteString("\n\n")

	switch s.step {
	case stepName:
		b.WriteString(theme.Subtitle.Width(width).Render("What should we call you?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.input.View()))

	case stepPick:
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("Nice to meet you, %s. Pick your companion:", s.prof.DisplayName)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.menu.View()))

		if s.menu.Selected >= 0 && s.menu.Selected < len(s.options) {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
				Render(theme.Hint.Render(s.options[s.menu.Selected].Blurb)))
		}
	}

	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render("  Could not save your choice. Try again."))
	}
	return b.String()
}

func (s *StarterScreen) Title() string {
	return "New Game"
}
