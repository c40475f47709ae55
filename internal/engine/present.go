package engine

import (
	"time"

	"algebramon/internal/challenge"
	"algebramon/internal/gamedata"
	"algebramon/internal/questions"
)

// Pacing hints. The presentation layer owns the actual timers; the
// engine stays synchronous.
const (
	GymStepDelay     = 150 * time.Millisecond
	TrainerStepDelay = 500 * time.Millisecond
)

// Mode is what the active question belongs to.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeStudy   Mode = "study"
	ModeGym     Mode = "gym"
	ModeTrainer Mode = "trainer"
)

// QuestionView is a question ready to display.
type QuestionView struct {
	Mode   Mode
	Unit   string
	Prompt questions.Prompt

	// Delay is how long to wait before showing the question.
	Delay time.Duration
}

// FeedbackView reports the settled outcome of the player's answer.
type FeedbackView struct {
	Mode        Mode
	Correct     bool
	CorrectText string
	Explanation string
	XPDelta     int
	Level       int
	XP          int
	LeveledUp   bool
	Stamina     int
}

// GymResultView is emitted on every boss-question step; Progress.Done
// marks the terminal one.
type GymResultView struct {
	Gym      gamedata.Gym
	Progress challenge.GymProgress

	// BadgeUnit is set when this step newly earned the unit badge.
	BadgeUnit string
}

// TrainerRoundView reports one battle exchange.
type TrainerRoundView struct {
	Trainer gamedata.Trainer
	Round   challenge.Round
}

// Presenter receives engine output. The play screen implements it;
// tests use a recording fake.
type Presenter interface {
	ShowQuestion(QuestionView)
	ShowFeedback(FeedbackView)
	ShowGymResult(GymResultView)
	ShowTrainerRound(TrainerRoundView)
}

type nopPresenter struct{}

func (nopPresenter) ShowQuestion(QuestionView)         {}
func (nopPresenter) ShowFeedback(FeedbackView)         {}
func (nopPresenter) ShowGymResult(GymResultView)       {}
func (nopPresenter) ShowTrainerRound(TrainerRoundView) {}
