// Package play is the world-facing screen: it runs study questions,
// gym boss runs, and trainer battles against the session engine, and
// implements the engine's Presenter interface.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"algebramon/internal/challenge"
	"algebramon/internal/engine"
	"algebramon/internal/router"
	"algebramon/internal/screen"
	"algebramon/internal/ui/components"
	"algebramon/internal/ui/layout"
)

// Action selects what this screen should run.
type Action int

const (
	ActionStudy Action = iota
	ActionGym
	ActionTrainer
)

type phase int

const (
	phaseConfirmStart phase = iota
	phaseAsking
	phaseWaiting
	phaseFeedback
	phaseConfirmFlee
	phaseTerminal
	phaseError
)

// PlayScreen drives one study loop, gym run, or trainer battle.
type PlayScreen struct {
	eng       *engine.Engine
	action    Action
	unit      string
	trainerID string

	phase  phase
	choice components.MultiChoice
	q      engine.QuestionView

	// presenter capture, filled synchronously during engine calls
	pendingQ *engine.QuestionView
	feedback *engine.FeedbackView
	gym      *engine.GymResultView
	round    *engine.TrainerRoundView

	err error
}

var (
	_ screen.Screen         = (*PlayScreen)(nil)
	_ engine.Presenter      = (*PlayScreen)(nil)
	_ screen.EscInterceptor = (*PlayScreen)(nil)
)

// NewStudy runs the free-practice loop.
func NewStudy(eng *engine.Engine) *PlayScreen {
	return &PlayScreen{eng: eng, action: ActionStudy, phase: phaseAsking}
}

// NewGym runs the boss challenge for a unit.
func NewGym(eng *engine.Engine, unit string) *PlayScreen {
	return &PlayScreen{eng: eng, action: ActionGym, unit: unit, phase: startPhase(eng)}
}

// NewTrainer runs a battle against a roaming trainer.
func NewTrainer(eng *engine.Engine, trainerID string) *PlayScreen {
	return &PlayScreen{eng: eng, action: ActionTrainer, trainerID: trainerID, phase: startPhase(eng)}
}

// startPhase asks for confirmation before a challenge on a partial
// gauge. An empty gauge goes straight to the engine's rejection.
func startPhase(eng *engine.Engine) phase {
	if !eng.Gauge().Full() && !eng.Gauge().Depleted() {
		return phaseConfirmStart
	}
	return phaseAsking
}

func (p *PlayScreen) Init() tea.Cmd {
	if p.phase == phaseConfirmStart {
		return nil
	}
	return p.start()
}

func (p *PlayScreen) start() tea.Cmd {
	p.eng.SetPresenter(p)
	p.feedback = nil
	p.gym = nil
	p.round = nil

	ctx := context.Background()
	var err error
	switch p.action {
	case ActionStudy:
		err = p.eng.StartStudy(ctx)
	case ActionGym:
		err = p.eng.StartGym(ctx, p.unit)
	case ActionTrainer:
		err = p.eng.StartTrainerBattle(ctx, p.trainerID)
	}
	if err != nil {
		p.phase = phaseError
		p.err = err
		return nil
	}
	return p.takeQuestion()
}

// ShowQuestion implements engine.Presenter.
func (p *PlayScreen) ShowQuestion(q engine.QuestionView) {
	p.pendingQ = &q
}

// ShowFeedback implements engine.Presenter.
func (p *PlayScreen) ShowFeedback(f engine.FeedbackView) {
	p.feedback = &f
}

// ShowGymResult implements engine.Presenter.
func (p *PlayScreen) ShowGymResult(g engine.GymResultView) {
	p.gym = &g
}

// ShowTrainerRound implements engine.Presenter.
func (p *PlayScreen) ShowTrainerRound(r engine.TrainerRoundView) {
	p.round = &r
}

// takeQuestion moves the captured question into view, honoring its
// pacing delay with a timed command.
func (p *PlayScreen) takeQuestion() tea.Cmd {
	if p.pendingQ == nil {
		return nil
	}
	q := *p.pendingQ
	p.pendingQ = nil

	if q.Delay > 0 {
		p.phase = phaseWaiting
		return tea.Tick(q.Delay, func(t time.Time) tea.Msg {
			return questionReadyMsg{q: q}
		})
	}
	p.install(q)
	return nil
}

func (p *PlayScreen) install(q engine.QuestionView) {
	p.q = q
	p.choice = components.NewMultiChoice(q.Prompt.Text, q.Prompt.Choices, q.Prompt.CorrectIndex)
	p.phase = phaseAsking
	p.feedback = nil
	p.gym = nil
	p.round = nil
}

// InterceptEsc keeps Esc for the screen's own flow until the session
// is over.
func (p *PlayScreen) InterceptEsc() bool {
	switch p.phase {
	case phaseTerminal, phaseError, phaseConfirmStart:
		return false
	}
	return true
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		p.install(msg.q)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.phase {
	case phaseConfirmStart:
		switch key {
		case "y", "enter":
			return p, p.start()
		case "n", "esc":
			return p, popCmd()
		}

	case phaseAsking:
		if key == "esc" {
			return p.handleEsc()
		}
		var cmd tea.Cmd
		p.choice, cmd = p.choice.Update(msg)
		if p.choice.Submitted {
			return p, p.submit()
		}
		return p, cmd

	case phaseFeedback:
		if p.action == ActionStudy {
			switch key {
			case "enter":
				return p, p.start()
			case "esc":
				return p, popCmd()
			}
		}

	case phaseConfirmFlee:
		switch key {
		case "y":
			p.eng.CloseOrFlee()
			p.phase = phaseTerminal
		case "n", "esc":
			p.phase = phaseAsking
		}

	case phaseTerminal, phaseError:
		switch key {
		case "enter", "esc":
			return p, popCmd()
		}
	}
	return p, nil
}

func (p *PlayScreen) handleEsc() (screen.Screen, tea.Cmd) {
	switch p.action {
	case ActionStudy:
		p.eng.CloseOrFlee()
		return p, popCmd()
	case ActionTrainer:
		p.phase = phaseConfirmFlee
		return p, nil
	}
	// Boss runs cannot be fled.
	return p, nil
}

func (p *PlayScreen) submit() tea.Cmd {
	err := p.eng.OnAnswer(context.Background(), p.choice.Chosen())
	if err != nil {
		p.phase = phaseError
		p.err = err
		return nil
	}

	p.phase = phaseFeedback
	if p.terminalReached() {
		p.phase = phaseTerminal
		return nil
	}
	return p.takeQuestion()
}

func (p *PlayScreen) terminalReached() bool {
	if p.gym != nil && p.gym.Progress.Done {
		return true
	}
	if p.round != nil && p.round.Round.State != challenge.BattleOngoing {
		return true
	}
	return false
}

func (p *PlayScreen) Title() string {
	switch p.action {
	case ActionGym:
		return "Gym Challenge"
	case ActionTrainer:
		return "Trainer Battle"
	}
	return "Study"
}

// KeyHints implements screen.KeyHintProvider.
func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseConfirmStart:
		return []layout.KeyHint{
			{Key: "Y", Description: "Start anyway"},
			{Key: "N", Description: "Back"},
		}
	case phaseAsking:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
		switch p.action {
		case ActionStudy:
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
		case ActionTrainer:
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Flee"})
		}
		return hints
	case phaseConfirmFlee:
		return []layout.KeyHint{
			{Key: "Y", Description: "Flee"},
			{Key: "N", Description: "Keep fighting"},
		}
	case phaseFeedback:
		if p.action == ActionStudy {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Next question"},
				{Key: "Esc", Description: "Back"},
			}
		}
	case phaseTerminal, phaseError:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
	return nil
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
