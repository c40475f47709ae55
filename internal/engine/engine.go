// Package engine orchestrates play sessions. It is the single writer
// for the stamina gauge, the progression ledger, and the active
// challenge, and the only component that resolves answer correctness.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"algebramon/internal/challenge"
	"algebramon/internal/gamedata"
	"algebramon/internal/mastery"
	"algebramon/internal/profile"
	"algebramon/internal/progression"
	"algebramon/internal/questions"
	"algebramon/internal/stamina"
	"algebramon/internal/store"
)

var (
	// ErrChallengeActive rejects starting anything while a gym run or
	// trainer battle is in progress.
	ErrChallengeActive = errors.New("a challenge is already active")

	// ErrNoStamina rejects challenges on an empty gauge.
	ErrNoStamina = errors.New("stamina is empty")

	// ErrNotReady means the gym gate denied entry.
	ErrNotReady = errors.New("not enough correct answers for this gym")

	// ErrMasteryCheck means the gate itself failed; entry is denied.
	ErrMasteryCheck = errors.New("mastery check failed")

	// ErrNoQuestion means OnAnswer was called with nothing displayed.
	ErrNoQuestion = errors.New("no question awaiting an answer")

	// ErrQuestionDisplayed rejects challenge entry while a question is
	// still on screen awaiting an answer.
	ErrQuestionDisplayed = errors.New("a question is awaiting an answer")

	ErrUnknownGym     = errors.New("unknown gym unit")
	ErrUnknownTrainer = errors.New("unknown trainer")
)

// NotReadyError carries the gate counts for messaging.
type NotReadyError struct {
	Unit      string
	Correct   int
	Threshold int
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("gym %s locked: %d of %d correct answers", e.Unit, e.Correct, e.Threshold)
}

func (e *NotReadyError) Unwrap() error { return ErrNotReady }

// AttemptLog is the fire-and-forget answer log.
type AttemptLog interface {
	Log(ctx context.Context, a store.Attempt) error
	LogBoss(ctx context.Context, b store.BossAttempt) error
	LogBossAnswer(ctx context.Context, a store.BossAnswer) error
}

// Deps wires the engine. Profile, Gauge, Registry, Source, Presenter,
// Profiles, Attempts, and Gate are required.
type Deps struct {
	Profile   *profile.Profile
	Profiles  profile.Store
	Gauge     *stamina.Gauge
	Registry  *gamedata.Registry
	Source    questions.Source
	Attempts  AttemptLog
	Gate      *mastery.Gate
	Presenter Presenter

	// Rng drives prompt shuffling and question draws; defaults to a
	// time-seeded generator.
	Rng *rand.Rand

	// BattleRng drives opponent rolls; defaults to Rng.
	BattleRng challenge.Rand
}

type activeQuestion struct {
	row    questions.Row
	prompt questions.Prompt
}

// Engine drives one player's session. Not safe for concurrent use;
// the TUI event loop is the single caller.
type Engine struct {
	prof      *profile.Profile
	profiles  profile.Store
	gauge     *stamina.Gauge
	ledger    *progression.Ledger
	registry  *gamedata.Registry
	source    questions.Source
	attempts  AttemptLog
	gate      *mastery.Gate
	presenter Presenter
	rng       *rand.Rand
	battleRng challenge.Rand

	mode    Mode
	current *activeQuestion

	gymRun    *challenge.GymRun
	activeGym gamedata.Gym

	battle     *challenge.TrainerBattle
	battlePool []questions.Row
}

// New builds an engine around an existing profile.
func New(d Deps) *Engine {
	if d.Rng == nil {
		d.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.BattleRng == nil {
		d.BattleRng = d.Rng
	}
	if d.Presenter == nil {
		d.Presenter = nopPresenter{}
	}
	return &Engine{
		prof:      d.Profile,
		profiles:  d.Profiles,
		gauge:     d.Gauge,
		ledger:    progression.NewLedger(d.Profile.Level, d.Profile.XP, d.Profile.Badges),
		registry:  d.Registry,
		source:    d.Source,
		attempts:  d.Attempts,
		gate:      d.Gate,
		presenter: d.Presenter,
		rng:       d.Rng,
		battleRng: d.BattleRng,
	}
}

// SetPresenter registers the observer for engine output. The play
// screen registers itself when it takes over the session.
func (e *Engine) SetPresenter(p Presenter) {
	if p == nil {
		p = nopPresenter{}
	}
	e.presenter = p
}

// Mode returns what the displayed question belongs to.
func (e *Engine) Mode() Mode {
	if e.mode == "" {
		return ModeIdle
	}
	return e.mode
}

// IsChallengeActive reports whether a gym run or trainer battle is in
// progress. Exactly one challenge may run at a time.
func (e *Engine) IsChallengeActive() bool {
	return e.mode == ModeGym || e.mode == ModeTrainer
}

// Gauge exposes the stamina gauge for display and the partial-stamina
// confirmation upstream.
func (e *Engine) Gauge() *stamina.Gauge { return e.gauge }

// Profile returns the live profile.
func (e *Engine) Profile() *profile.Profile { return e.prof }

// Ledger exposes progression state for display.
func (e *Engine) Ledger() *progression.Ledger { return e.ledger }

// ActiveGym returns the gym under challenge, if any.
func (e *Engine) ActiveGym() (gamedata.Gym, bool) {
	return e.activeGym, e.mode == ModeGym
}

// ActiveTrainer returns the battle opponent, if any.
func (e *Engine) ActiveTrainer() (gamedata.Trainer, bool) {
	if e.mode != ModeTrainer || e.battle == nil {
		return gamedata.Trainer{}, false
	}
	return e.battle.Opponent, true
}

// StartStudy draws a random practice question from the full pool and
// presents it.
func (e *Engine) StartStudy(ctx context.Context) error {
	if e.IsChallengeActive() {
		return ErrChallengeActive
	}
	rows, err := e.source.Fetch(ctx, questions.Filter{})
	if err != nil {
		return fmt.Errorf("study pool: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("study pool: %w", questions.ErrPoolUnavailable)
	}
	row := rows[e.rng.Intn(len(rows))]
	e.show(ModeStudy, row, 0)
	return nil
}

// StartGym begins the boss run for a unit. The caller has already
// handled the partial-stamina confirmation.
func (e *Engine) StartGym(ctx context.Context, unit string) error {
	if e.IsChallengeActive() {
		return ErrChallengeActive
	}
	if e.current != nil {
		return ErrQuestionDisplayed
	}
	if e.gauge.Depleted() {
		return ErrNoStamina
	}
	gym, ok := e.registry.GymByUnit(unit)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGym, unit)
	}

	chk, err := e.gate.CanChallenge(ctx, e.prof.UserID, unit, gym.Threshold)
	if err != nil {
		return errors.Join(ErrMasteryCheck, err)
	}
	if !chk.Ready {
		return &NotReadyError{Unit: unit, Correct: chk.Correct, Threshold: chk.Threshold}
	}

	rows, err := e.source.Fetch(ctx, questions.Filter{Unit: unit})
	if err != nil {
		return fmt.Errorf("gym pool: %w", err)
	}
	run, err := challenge.NewGymRun(unit, rows, e.rng)
	if err != nil {
		return err
	}

	e.gymRun = run
	e.activeGym = gym
	row, _ := run.Current()
	e.show(ModeGym, row, 0)
	return nil
}

// StartTrainerBattle begins a battle against a roaming opponent,
// drawing questions from its focus units when possible.
func (e *Engine) StartTrainerBattle(ctx context.Context, trainerID string) error {
	if e.IsChallengeActive() {
		return ErrChallengeActive
	}
	if e.current != nil {
		return ErrQuestionDisplayed
	}
	if e.gauge.Depleted() {
		return ErrNoStamina
	}
	tr, ok := e.registry.TrainerByID(trainerID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTrainer, trainerID)
	}

	pool, err := e.trainerPool(ctx, tr)
	if err != nil {
		return err
	}

	e.battle = challenge.NewTrainerBattle(tr, e.battleRng)
	e.battlePool = pool
	row := pool[e.rng.Intn(len(pool))]
	e.show(ModeTrainer, row, 0)
	return nil
}

// trainerPool prefers questions from the opponent's focus units and
// falls back to the full pool.
func (e *Engine) trainerPool(ctx context.Context, tr gamedata.Trainer) ([]questions.Row, error) {
	rows, err := e.source.Fetch(ctx, questions.Filter{})
	if err != nil {
		return nil, fmt.Errorf("battle pool: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("battle pool: %w", questions.ErrPoolUnavailable)
	}

	focus := make(map[string]bool, len(tr.Units))
	for _, u := range tr.Units {
		focus[u] = true
	}
	var focused []questions.Row
	for _, r := range rows {
		if focus[r.UnitNorm()] {
			focused = append(focused, r)
		}
	}
	if len(focused) > 0 {
		return focused, nil
	}
	return rows, nil
}

// OnAnswer settles the submitted choice against the displayed
// question: gauge first, then ledger and profile write, then the
// attempt log, then challenge routing and the next presentation.
func (e *Engine) OnAnswer(ctx context.Context, choice string) error {
	if e.current == nil {
		return ErrNoQuestion
	}

	q := e.current
	correct := answerMatches(choice, q.prompt.CorrectText)
	staminaAfter := e.gauge.ApplyOutcome(correct)

	switch e.mode {
	case ModeStudy:
		e.settleStudy(ctx, q, choice, correct, staminaAfter)
	case ModeGym:
		e.settleGym(ctx, q, choice, correct, staminaAfter)
	case ModeTrainer:
		return e.settleTrainer(ctx, q, choice, correct, staminaAfter)
	}
	return nil
}

func (e *Engine) settleStudy(ctx context.Context, q *activeQuestion, choice string, correct bool, staminaAfter int) {
	bonus := correct && e.starterBonus(q.row)
	s := e.ledger.Settle(progression.ContextStudy, correct, bonus, false)
	e.syncProfile(ctx)
	e.logAttempt(ctx, q, choice, "study", correct)

	e.clear()
	e.presenter.ShowFeedback(e.feedback(ModeStudy, q, correct, s, staminaAfter))
}

func (e *Engine) settleGym(ctx context.Context, q *activeQuestion, choice string, correct bool, staminaAfter int) {
	e.logAttempt(ctx, q, choice, "gym", correct)

	run := e.gymRun
	gym := e.activeGym
	p := run.Answer(correct, staminaAfter)
	_ = e.attempts.LogBossAnswer(ctx, store.BossAnswer{
		RunID:   run.ID,
		UserID:  e.prof.UserID,
		Unit:    gym.Unit,
		QIndex:  p.Index,
		Correct: correct,
	})
	e.presenter.ShowFeedback(e.feedback(ModeGym, q, correct, progression.Settlement{
		Level: e.ledger.Level(), XP: e.ledger.XP(),
	}, staminaAfter))

	if !p.Done {
		e.presenter.ShowGymResult(GymResultView{Gym: gym, Progress: p})
		row, _ := run.Current()
		e.show(ModeGym, row, GymStepDelay)
		return
	}

	result := GymResultView{Gym: gym, Progress: p}
	if p.Passed {
		if e.ledger.AwardBadge(gym.Unit) {
			result.BadgeUnit = gym.Unit
		}
		e.syncProfile(ctx)
	} else if p.Reason != challenge.ReasonNone {
		// Only early failures (strikes, empty gauge) cost the rest of
		// the gauge; falling short on the scoreboard does not.
		e.gauge.Drain()
	}
	_ = e.attempts.LogBoss(ctx, store.BossAttempt{
		RunID:   run.ID,
		UserID:  e.prof.UserID,
		Unit:    gym.Unit,
		Passed:  p.Passed,
		Correct: p.Correct,
		Misses:  p.Misses,
		Reason:  string(p.Reason),
	})

	e.clear()
	e.gymRun = nil
	e.activeGym = gamedata.Gym{}
	e.presenter.ShowGymResult(result)
}

func (e *Engine) settleTrainer(ctx context.Context, q *activeQuestion, choice string, correct bool, staminaAfter int) error {
	battle := e.battle
	round := battle.PlayRound(correct, staminaAfter)
	countered := round.Outcome == challenge.RoundCountered

	s := e.ledger.Settle(progression.ContextTrainer, correct, false, countered)
	if s.Delta != 0 {
		e.syncProfile(ctx)
	}
	e.logAttempt(ctx, q, choice, "trainer", correct)

	e.presenter.ShowFeedback(e.feedback(ModeTrainer, q, correct, s, staminaAfter))
	e.presenter.ShowTrainerRound(TrainerRoundView{Trainer: battle.Opponent, Round: round})

	if round.State != challenge.BattleOngoing {
		e.clear()
		e.battle = nil
		e.battlePool = nil
		return nil
	}

	row := e.battlePool[e.rng.Intn(len(e.battlePool))]
	e.show(ModeTrainer, row, TrainerStepDelay)
	return nil
}

// CloseOrFlee forfeits an active trainer battle or dismisses a study
// question. The confirmation step is upstream. Gym runs cannot be
// fled.
func (e *Engine) CloseOrFlee() {
	switch e.mode {
	case ModeTrainer:
		battle := e.battle
		battle.Forfeit()
		e.clear()
		e.battle = nil
		e.battlePool = nil
		e.presenter.ShowTrainerRound(TrainerRoundView{
			Trainer: battle.Opponent,
			Round: challenge.Round{
				PlayerWins: battle.PlayerWins(),
				WinsNeeded: battle.Opponent.WinsNeeded(),
				State:      battle.State(),
			},
		})
	case ModeStudy:
		e.clear()
	}
}

func (e *Engine) show(mode Mode, row questions.Row, delay time.Duration) {
	prompt := questions.BuildPrompt(row, e.rng)
	e.mode = mode
	e.current = &activeQuestion{row: row, prompt: prompt}
	e.presenter.ShowQuestion(QuestionView{
		Mode:   mode,
		Unit:   row.UnitNorm(),
		Prompt: prompt,
		Delay:  delay,
	})
}

func (e *Engine) clear() {
	e.mode = ModeIdle
	e.current = nil
}

func (e *Engine) starterBonus(row questions.Row) bool {
	cat := questions.StarterCategory(e.prof.Starter.Type)
	return cat != "" && questions.InferCategory(row) == cat
}

func (e *Engine) feedback(mode Mode, q *activeQuestion, correct bool, s progression.Settlement, staminaAfter int) FeedbackView {
	return FeedbackView{
		Mode:        mode,
		Correct:     correct,
		CorrectText: q.prompt.CorrectText,
		Explanation: q.row.Explanation,
		XPDelta:     s.Delta,
		Level:       s.Level,
		XP:          s.XP,
		LeveledUp:   s.LeveledUp,
		Stamina:     staminaAfter,
	}
}

func (e *Engine) syncProfile(ctx context.Context) {
	e.prof.Level = e.ledger.Level()
	e.prof.XP = e.ledger.XP()
	e.prof.Badges = e.ledger.Badges()
	_ = e.profiles.Update(ctx, e.prof)
}

func (e *Engine) logAttempt(ctx context.Context, q *activeQuestion, choice, context string, correct bool) {
	_ = e.attempts.Log(ctx, store.Attempt{
		UserID:   e.prof.UserID,
		QID:      q.row.QID,
		Unit:     q.row.UnitNorm(),
		Context:  context,
		Correct:  correct,
		Answered: choice,
	})
}

// answerMatches compares a submitted choice with the canonical answer:
// case-insensitive, whitespace-trimmed equality.
func answerMatches(choice, canonical string) bool {
	return strings.EqualFold(strings.TrimSpace(choice), strings.TrimSpace(canonical))
}
