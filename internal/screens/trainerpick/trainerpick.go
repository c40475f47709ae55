// Package trainerpick lists roaming trainers and launches a battle.
package trainerpick

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

// TrainerPickScreen is the trainer roster.
type TrainerPickScreen struct {
	menu     components.Menu
	eng      *engine.Engine
	trainers []gamedata.Trainer
}

var _ screen.Screen = (*TrainerPickScreen)(nil)

// New creates the trainer picker.
func New(eng *engine.Engine, reg *gamedata.Registry) *TrainerPickScreen {
	trainers := reg.Trainers()

	items := make([]components.MenuItem, 0, len(trainers))
	for _, tr := range trainers {
		tr := tr
		label := fmt.Sprintf("%s  %s  %s", tr.Name, difficulty(tr.Skill), tr.Title)
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: play.NewTrainer(eng, tr.ID)}
				}
			},
		})
	}

	return &TrainerPickScreen{
		menu:     components.NewMenu(items),
		eng:      eng,
		trainers: trainers,
	}
}

// difficulty turns opponent skill into a coarse star rating.
func difficulty(skill float64) string {
	stars := 1
	switch {
	case skill >= 0.8:
		stars = 4
	case skill >= 0.7:
		stars = 3
	case skill >= 0.6:
		stars = 2
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 4-stars)
}

func (s *TrainerPickScreen) Init() tea.Cmd {
	return nil
}

func (s *TrainerPickScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TrainerPickScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick an opponent. Land enough clean hits before your stamina runs out."))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if s.menu.Selected >= 0 && s.menu.Selected < len(s.trainers) {
		tr := s.trainers[s.menu.Selected]
		detail := tr.Flavor
		if len(tr.Units) > 0 {
			detail += fmt.Sprintf("\nfavors units %s, needs %d hits to beat",
				strings.Join(tr.Units, ", "), tr.WinsNeeded())
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Hint.Render(detail)))
	}
	return b.String()
}

func (s *TrainerPickScreen) Title() string {
	return "Trainers"
}
