// Package app owns the root Bubble Tea model and the frame layout.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"algebramon/internal/engine"
	"algebramon/internal/gamedata"
	"algebramon/internal/progression"
	"algebramon/internal/router"
	"algebramon/internal/screen"
	"algebramon/internal/screens/home"
	"algebramon/internal/screens/starter"
	"algebramon/internal/stamina"
	"algebramon/internal/store"
	"algebramon/internal/ui/layout"
)

// Options wires the TUI to the engine and its stores.
type Options struct {
	Engine   *engine.Engine
	Registry *gamedata.Registry
	Attempts *store.AttemptRepo
	Profiles *store.ProfileRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel picks the initial screen: the starter flow on a fresh
// profile, otherwise home.
func newAppModel(opts Options) AppModel {
	buildHome := func() screen.Screen {
		return home.New(opts.Engine, opts.Registry, opts.Attempts)
	}

	var initial screen.Screen
	prof := opts.Engine.Profile()
	if prof.Starter.Name == "" {
		initial = starter.New(prof, opts.Profiles, opts.Registry, buildHome)
	} else {
		initial = buildHome()
	}

	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens mid-challenge keep Esc for their own flow.
			if ei, ok := m.router.Active().(screen.EscInterceptor); ok && ei.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) headerStats() layout.HeaderStats {
	prof := m.opts.Engine.Profile()
	return layout.HeaderStats{
		Level:      prof.Level,
		XP:         prof.XP,
		XPNeeded:   progression.XPNeeded(prof.Level),
		Stamina:    m.opts.Engine.Gauge().Value(),
		StaminaMax: stamina.Max,
		Badges:     len(prof.Badges),
	}
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
