// Package stats shows per-unit accuracy and the badge collection.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"algebramon/internal/engine"
	"algebramon/internal/gamedata"
	"algebramon/internal/progression"
	"algebramon/internal/screen"
	"algebramon/internal/store"
	"algebramon/internal/ui/components"
	"algebramon/internal/ui/theme"
)

// statsLoadedMsg delivers the attempt aggregates.
type statsLoadedMsg struct {
	stats []store.UnitStat
	err   error
}

// StatsScreen renders the progress dashboard.
type StatsScreen struct {
	eng      *engine.Engine
	reg      *gamedata.Registry
	attempts *store.AttemptRepo

	stats  []store.UnitStat
	err    error
	loaded bool
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the stats screen.
func New(eng *engine.Engine, reg *gamedata.Registry, attempts *store.AttemptRepo) *StatsScreen {
	return &StatsScreen{eng: eng, reg: reg, attempts: attempts}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		stats, err := s.attempts.UnitStats(context.Background(), s.eng.Profile().UserID)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		s.stats = m.stats
		s.err = m.err
		s.loaded = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	prof := s.eng.Profile()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"  Level %d   %d/%d xp to next level",
		prof.Level, prof.XP, progression.XPNeeded(prof.Level))))
	b.WriteString("\n\n")
	b.WriteString(s.renderBadges())
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString(theme.Hint.Render("  Loading..."))
	case s.err != nil:
		b.WriteString(theme.Incorrect.Render("  Could not load attempt history."))
	case len(s.stats) == 0:
		b.WriteString(theme.Hint.Render("  No questions answered yet. Go study!"))
	default:
		b.WriteString(theme.Body.Render("  Accuracy by unit"))
		b.WriteString("\n\n")
		barWidth := width - 20
		if barWidth > 50 {
			barWidth = 50
		}
		for _, st := range s.stats {
			bar := components.NewProgressBar(
				fmt.Sprintf("  Unit %-3s", st.Unit), st.Accuracy(), true, barWidth)
			b.WriteString(bar.View())
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d/%d", st.Correct, st.Total)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderBadges lists earned gym badges with their gym names.
func (s *StatsScreen) renderBadges() string {
	earned := make(map[string]bool)
	for _, b := range s.eng.Profile().Badges {
		earned[b] = true
	}

	var parts []string
	for _, g := range s.reg.Gyms() {
		if earned[g.Unit] {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render("★ "+g.Name))
		}
	}
	if len(parts) == 0 {
		return theme.Hint.Render("  No badges yet. Challenge a gym!")
	}
	return theme.Body.Render("  Badges  ") + strings.Join(parts, "   ")
}

func (s *StatsScreen) Title() string {
	return "Stats"
}
