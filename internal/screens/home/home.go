// Package home is the main menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"algebramon/internal/engine"
	"algebramon/internal/gamedata"
	"algebramon/internal/router"
	"algebramon/internal/screen"
	"algebramon/internal/screens/gympick"
	"algebramon/internal/screens/play"
	"algebramon/internal/screens/stats"
	"algebramon/internal/screens/trainerpick"
	"algebramon/internal/store"
	"algebramon/internal/ui/components"
	"algebramon/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
	eng  *engine.Engine
	reg  *gamedata.Registry
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(eng *engine.Engine, reg *gamedata.Registry, attempts *store.AttemptRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.NewStudy(eng)}
			}
		}},
		{Label: "GYM CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: gympick.New(eng, reg)}
			}
		}},
		{Label: "TRAINER BATTLE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trainerpick.New(eng, reg)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(eng, reg, attempts)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		eng:  eng,
		reg:  reg,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	prof := h.eng.Profile()

	var sections []string

	title := theme.Title.Width(width).Render("ALGEBRAMON")
	subtitle := theme.Subtitle.Width(width).Render("study, challenge gyms, out-math the trainers")
	sections = append(sections, title+"\n"+subtitle)

	if prof.Starter.Name != "" {
		companion := theme.Hint.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("traveling with %s the %s", prof.Starter.Name, prof.Starter.Type))
		sections = append(sections, companion)
	}

	badgeLine := h.renderBadgeStrip(width)
	sections = append(sections, badgeLine)

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	return "\n" + strings.Join(sections, "\n\n")
}

// renderBadgeStrip shows one slot per gym, filled when earned.
func (h *HomeScreen) renderBadgeStrip(width int) string {
	earned := make(map[string]bool)
	for _, b := range h.eng.Profile().Badges {
		earned[b] = true
	}

	var parts []string
	for _, g := range h.reg.Gyms() {
		if earned[g.Unit] {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render("★"))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("☆"))
		}
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("badges  " + strings.Join(parts, " "))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
