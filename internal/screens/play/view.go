package play

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"algebramon/internal/challenge"
	"algebramon/internal/engine"
	"algebramon/internal/questions"
	"algebramon/internal/stamina"
	"algebramon/internal/ui/components"
	"algebramon/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	switch p.phase {
	case phaseConfirmStart:
		return p.renderConfirmStart(width)
	case phaseAsking, phaseWaiting:
		return p.renderQuestion(width)
	case phaseFeedback:
		return p.renderFeedback(width)
	case phaseConfirmFlee:
		return p.renderConfirmFlee(width)
	case phaseTerminal:
		return p.renderTerminal(width)
	case phaseError:
		return p.renderError(width)
	}
	return ""
}

func (p *PlayScreen) renderConfirmStart(width int) string {
	g := p.eng.Gauge()
	body := fmt.Sprintf(
		"Your stamina is at %d/%d.\n\nWrong answers drain it further, and an empty\ngauge ends the challenge on the spot.\n\nStart anyway? (y/n)",
		g.Value(), stamina.Max)
	return centerCard(theme.Card.Render(body), width)
}

func (p *PlayScreen) renderConfirmFlee(width int) string {
	body := "Flee the battle?\n\nThe trainer keeps the win and your\nprogress in this fight is lost. (y/n)"
	return centerCard(theme.Card.Render(body), width)
}

func (p *PlayScreen) renderQuestion(width int) string {
	var b strings.Builder

	b.WriteString(p.renderContextLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if p.phase == phaseWaiting {
		waiting := "Next question..."
		if p.action == ActionTrainer {
			waiting = "The trainer readies the next question..."
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + waiting))
		if p.feedback != nil {
			b.WriteString("\n\n")
			b.WriteString(p.renderFeedbackLine(width))
		}
		return b.String()
	}

	if p.q.Prompt.ImageURL != "" {
		b.WriteString(theme.Hint.Render("  (this question has a diagram: " + p.q.Prompt.ImageURL + ")"))
		b.WriteString("\n\n")
	}
	b.WriteString(p.choice.View())
	return b.String()
}

// renderContextLine shows what this question counts toward.
func (p *PlayScreen) renderContextLine(width int) string {
	left := ""
	right := components.StaminaPips(p.eng.Gauge().Value(), stamina.Max)

	switch p.action {
	case ActionStudy:
		left = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Study")
		if p.q.Unit != "" {
			left += theme.Hint.Render("  unit " + p.q.Unit)
		}

	case ActionGym:
		if gym, ok := p.eng.ActiveGym(); ok {
			left = lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  " + gym.Name)
			left += theme.Hint.Render(fmt.Sprintf("  vs %s, %s", gym.Leader, gym.LeaderTitle))
		}
		if p.gym != nil {
			right = fmt.Sprintf("%s %s  %s",
				theme.Correct.Render(fmt.Sprintf("✓ %d", p.gym.Progress.Correct)),
				theme.Incorrect.Render(fmt.Sprintf("✗ %d/%d", p.gym.Progress.Misses, challenge.GymMaxMisses)),
				right)
		}

	case ActionTrainer:
		if tr, ok := p.eng.ActiveTrainer(); ok {
			left = lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  " + tr.Name)
			left += theme.Hint.Render("  " + tr.Title)
			wins := 0
			if p.round != nil {
				wins = p.round.Round.PlayerWins
			}
			right = fmt.Sprintf("%s  %s",
				theme.Correct.Render(fmt.Sprintf("hits %d/%d", wins, tr.WinsNeeded())),
				right)
		}
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (p *PlayScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString(p.renderContextLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")
	b.WriteString(p.choice.View())
	b.WriteString("\n")
	b.WriteString(p.renderFeedbackLine(width))
	return b.String()
}

func (p *PlayScreen) renderFeedbackLine(width int) string {
	f := p.feedback
	if f == nil {
		return ""
	}

	var line string
	if f.Correct {
		line = theme.Correct.Render("  Correct!")
	} else {
		line = theme.Incorrect.Render("  Not quite.") +
			theme.Body.Render(" The answer was "+f.CorrectText+".")
	}
	if f.XPDelta != 0 {
		line += theme.Body.Render(fmt.Sprintf("  %+d xp", f.XPDelta))
	}
	if f.LeveledUp {
		line += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("  LEVEL UP! Now level %d", f.Level))
	}

	if p.round != nil {
		line += "\n" + p.renderRoundLine()
	}

	if !f.Correct && f.Explanation != "" {
		line += "\n\n" + theme.Hint.Render("  "+f.Explanation)
	}
	return line
}

func (p *PlayScreen) renderRoundLine() string {
	r := p.round.Round
	name := p.round.Trainer.Name
	switch r.Outcome {
	case challenge.RoundPlayerScores:
		return theme.Correct.Render(fmt.Sprintf("  %s stumbles! %d/%d hits landed.", name, r.PlayerWins, r.WinsNeeded))
	case challenge.RoundCountered:
		return theme.Incorrect.Render(fmt.Sprintf("  %s counters your miss. Extra xp lost!", name))
	case challenge.RoundBothCorrect:
		return theme.Hint.Render(fmt.Sprintf("  %s answers too. No one scores.", name))
	case challenge.RoundBothMissed:
		return theme.Hint.Render(fmt.Sprintf("  %s misses as well. No one scores.", name))
	}
	return ""
}

func (p *PlayScreen) renderTerminal(width int) string {
	var body string

	switch {
	case p.gym != nil && p.gym.Progress.Passed:
		body = theme.Correct.Render("GYM CLEARED!") + "\n\n" +
			fmt.Sprintf("%s is impressed.\n", p.gym.Gym.Leader)
		if p.gym.BadgeUnit != "" {
			body += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("\n★ Unit %s badge earned!", p.gym.BadgeUnit))
		} else {
			body += theme.Hint.Render("\nYou already hold this badge.")
		}
		if p.gym.Gym.Pun != "" {
			body += "\n\n" + theme.Hint.Render(p.gym.Gym.Pun)
		}

	case p.gym != nil:
		var reason, hint string
		switch p.gym.Progress.Reason {
		case challenge.ReasonStamina:
			reason = "You ran out of stamina mid-challenge."
			hint = "Your stamina is spent. Study to recover and try again."
		case challenge.ReasonStrikes:
			reason = "Three strikes. The gym door closes."
			hint = "Your stamina is spent. Study to recover and try again."
		default:
			reason = fmt.Sprintf("Only %d of %d. The leader wants %d.",
				p.gym.Progress.Correct, challenge.GymQuestions, challenge.GymPassNeed)
			hint = "Keep studying and come back for a rematch."
		}
		body = theme.Incorrect.Render("GYM FAILED") + "\n\n" + reason +
			"\n\n" + theme.Hint.Render(hint)

	case p.round != nil:
		switch p.round.Round.State {
		case challenge.BattleWon:
			body = theme.Correct.Render("VICTORY!") + "\n\n" +
				fmt.Sprintf("%s concedes after %d clean hits.", p.round.Trainer.Name, p.round.Round.PlayerWins)
		case challenge.BattleLost:
			body = theme.Incorrect.Render("DEFEATED") + "\n\n" +
				fmt.Sprintf("You collapse from exhaustion. %s wins this one.", p.round.Trainer.Name)
		case challenge.BattleForfeited:
			body = theme.Hint.Render("You fled the battle.") + "\n\n" +
				fmt.Sprintf("%s waves as you go.", p.round.Trainer.Name)
		}

	default:
		body = theme.Hint.Render("Session over.")
	}

	return centerCard(theme.Card.Render(body), width)
}

func (p *PlayScreen) renderError(width int) string {
	msg := friendlyError(p.err)
	return centerCard(theme.Card.Render(theme.Incorrect.Render("Hold on!")+"\n\n"+msg), width)
}

// friendlyError maps engine sentinels to player-facing text.
func friendlyError(err error) string {
	var notReady *engine.NotReadyError
	switch {
	case errors.As(err, &notReady):
		return fmt.Sprintf(
			"This gym unlocks after %d correct answers\nin unit %s. You have %d so far.",
			notReady.Threshold, notReady.Unit, notReady.Correct)
	case errors.Is(err, engine.ErrQuestionDisplayed):
		return "Finish the question on screen first."
	case errors.Is(err, engine.ErrNoStamina):
		return "Your stamina is empty. Answer study questions\nto build it back up."
	case errors.Is(err, engine.ErrChallengeActive):
		return "Finish the current challenge first."
	case errors.Is(err, challenge.ErrInsufficientPool):
		return "Not enough questions in this unit for a full\ngym run. Try again later."
	case errors.Is(err, questions.ErrPoolUnavailable):
		return "The question sheet could not be reached.\nCheck your connection and try again."
	case errors.Is(err, engine.ErrMasteryCheck):
		return "Your progress could not be checked, so the\ngym stays closed for now."
	}
	return err.Error()
}

func centerCard(card string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + card)
}
