// Package gympick lists the unit gyms and launches a boss run.
package gympick

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"algebramon/internal/engine"
	"algebramon/internal/gamedata"
	"algebramon/internal/router"
	"algebramon/internal/screen"
	"algebramon/internal/screens/play"
	"algebramon/internal/ui/components"
	"algebramon/internal/ui/theme"
)

// GymPickScreen is the gym roster.
type GymPickScreen struct {
	menu components.Menu
	eng  *engine.Engine
	gyms []gamedata.Gym
}

var _ screen.Screen = (*GymPickScreen)(nil)

// New creates the gym picker.
func New(eng *engine.Engine, reg *gamedata.Registry) *GymPickScreen {
	gyms := reg.Gyms()
	earned := make(map[string]bool)
	for _, b := range eng.Profile().Badges {
		earned[b] = true
	}

	items := make([]components.MenuItem, 0, len(gyms))
	for _, g := range gyms {
		g := g
		label := fmt.Sprintf("Unit %s  %s", g.Unit, g.Name)
		if earned[g.Unit] {
			label += "  ★"
		}
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: play.NewGym(eng, g.Unit)}
				}
			},
		})
	}

	return &GymPickScreen{
		menu: components.NewMenu(items),
		eng:  eng,
		gyms: gyms,
	}
}

func (s *GymPickScreen) Init() tea.Cmd {
	return nil
}

func (s *GymPickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *GymPickScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a gym. Each needs correct answers in its unit to enter."))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if s.menu.Selected >= 0 && s.menu.Selected < len(s.gyms) {
		g := s.gyms[s.menu.Selected]
		detail := fmt.Sprintf("%s, %s\nentry: %d correct answers in unit %s",
			g.Leader, g.LeaderTitle, g.Threshold, g.Unit)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Hint.Render(detail)))
	}
	return b.String()
}

func (s *GymPickScreen) Title() string {
	return "Gyms"
}
