package engine

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"algebramon/internal/challenge"
	"algebramon/internal/gamedata"
	"algebramon/internal/mastery"
	"algebramon/internal/profile"
	"algebramon/internal/questions"
	"algebramon/internal/stamina"
	"algebramon/internal/store"
)

type fakePresenter struct {
	questions  []QuestionView
	feedbacks  []FeedbackView
	gymResults []GymResultView
	rounds     []TrainerRoundView
}

func (p *fakePresenter) ShowQuestion(v QuestionView)       { p.questions = append(p.questions, v) }
func (p *fakePresenter) ShowFeedback(v FeedbackView)       { p.feedbacks = append(p.feedbacks, v) }
func (p *fakePresenter) ShowGymResult(v GymResultView)     { p.gymResults = append(p.gymResults, v) }
func (p *fakePresenter) ShowTrainerRound(v TrainerRoundView) {
	p.rounds = append(p.rounds, v)
}

func (p *fakePresenter) lastFeedback(t *testing.T) FeedbackView {
	t.Helper()
	if len(p.feedbacks) == 0 {
		t.Fatal("no feedback shown")
	}
	return p.feedbacks[len(p.feedbacks)-1]
}

type fakeSource struct {
	rows []questions.Row
	err  error
}

func (f fakeSource) Fetch(ctx context.Context, flt questions.Filter) ([]questions.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	if flt.Unit == "" {
		return f.rows, nil
	}
	var out []questions.Row
	for _, r := range f.rows {
		if r.UnitNorm() == flt.Unit {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeProfiles struct {
	updates int
	last    profile.Profile
}

func (f *fakeProfiles) Load(ctx context.Context, userID string) (*profile.Profile, error) {
	return nil, profile.ErrNotFound
}
func (f *fakeProfiles) Create(ctx context.Context, p *profile.Profile) error { return nil }
func (f *fakeProfiles) Update(ctx context.Context, p *profile.Profile) error {
	f.updates++
	f.last = *p
	return nil
}

type fakeAttempts struct {
	attempts    []store.Attempt
	boss        []store.BossAttempt
	bossAnswers []store.BossAnswer
}

func (f *fakeAttempts) Log(ctx context.Context, a store.Attempt) error {
	f.attempts = append(f.attempts, a)
	return nil
}
func (f *fakeAttempts) LogBoss(ctx context.Context, b store.BossAttempt) error {
	f.boss = append(f.boss, b)
	return nil
}
func (f *fakeAttempts) LogBossAnswer(ctx context.Context, a store.BossAnswer) error {
	f.bossAnswers = append(f.bossAnswers, a)
	return nil
}

type fixedCounter struct {
	n   int
	err error
}

func (f fixedCounter) CountCorrect(ctx context.Context, userID, unit string) (int, error) {
	return f.n, f.err
}

// seqRand forces opponent rolls in trainer battles.
type seqRand struct {
	floats []float64
	i      int
}

func (s *seqRand) Float64() float64 {
	if s.i >= len(s.floats) {
		return 0.99
	}
	v := s.floats[s.i]
	s.i++
	return v
}

func (s *seqRand) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func testRows(unit string, n int) []questions.Row {
	rows := make([]questions.Row, n)
	for i := range rows {
		rows[i] = questions.Row{
			QID:      string(rune('a' + i)),
			UnitID:   unit,
			Text:     "What is 2 + 2?",
			Answer:   "4",
			Distractors: []string{"3", "5", "22"},
		}
	}
	return rows
}

type harness struct {
	eng       *Engine
	presenter *fakePresenter
	profiles  *fakeProfiles
	attempts  *fakeAttempts
	prof      *profile.Profile
}

func newHarness(t *testing.T, opts func(*Deps)) *harness {
	t.Helper()
	reg, err := gamedata.Default()
	if err != nil {
		t.Fatalf("gamedata: %v", err)
	}

	h := &harness{
		presenter: &fakePresenter{},
		profiles:  &fakeProfiles{},
		attempts:  &fakeAttempts{},
		prof: &profile.Profile{
			UserID: "u1",
			Level:  1,
		},
	}
	d := Deps{
		Profile:   h.prof,
		Profiles:  h.profiles,
		Gauge:     stamina.New(stamina.Max, nil),
		Registry:  reg,
		Source:    fakeSource{rows: testRows("3", 8)},
		Attempts:  h.attempts,
		Gate:      mastery.NewGate(fixedCounter{n: 100}),
		Presenter: h.presenter,
		Rng:       rand.New(rand.NewSource(1)),
	}
	if opts != nil {
		opts(&d)
	}
	h.eng = New(d)
	return h
}

// answer submits the displayed question's canonical answer, or a miss.
func (h *harness) answer(t *testing.T, correct bool) {
	t.Helper()
	if len(h.presenter.questions) == 0 {
		t.Fatal("no question displayed")
	}
	choice := "definitely wrong"
	if correct {
		q := h.presenter.questions[len(h.presenter.questions)-1]
		choice = q.Prompt.CorrectText
	}
	if err := h.eng.OnAnswer(context.Background(), choice); err != nil {
		t.Fatalf("OnAnswer: %v", err)
	}
}

func TestStudyCorrectAnswer(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	if err := h.eng.StartStudy(ctx); err != nil {
		t.Fatalf("StartStudy: %v", err)
	}
	if h.eng.Mode() != ModeStudy {
		t.Fatalf("mode = %q", h.eng.Mode())
	}
	h.answer(t, true)

	fb := h.presenter.lastFeedback(t)
	if !fb.Correct || fb.XPDelta != 10 {
		t.Errorf("feedback = %+v, want correct +10", fb)
	}
	if fb.Stamina != stamina.Max {
		t.Errorf("stamina = %d, want clamped at max", fb.Stamina)
	}
	if h.prof.XP != 10 || h.profiles.updates != 1 {
		t.Errorf("profile xp=%d updates=%d, want 10/1", h.prof.XP, h.profiles.updates)
	}
	if len(h.attempts.attempts) != 1 || h.attempts.attempts[0].Context != "study" {
		t.Errorf("attempts = %+v", h.attempts.attempts)
	}
	if h.eng.Mode() != ModeIdle {
		t.Errorf("mode after answer = %q, want idle", h.eng.Mode())
	}
}

func TestStudyCaseInsensitiveMatch(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		rows := testRows("3", 1)
		rows[0].Answer = "Slope"
		rows[0].Distractors = []string{"intercept", "origin", "axis"}
		d.Source = fakeSource{rows: rows}
	})
	ctx := context.Background()
	if err := h.eng.StartStudy(ctx); err != nil {
		t.Fatalf("StartStudy: %v", err)
	}
	if err := h.eng.OnAnswer(ctx, "  sLoPe "); err != nil {
		t.Fatalf("OnAnswer: %v", err)
	}
	if fb := h.presenter.lastFeedback(t); !fb.Correct {
		t.Errorf("trimmed case-folded answer not accepted: %+v", fb)
	}
}

func TestStudyStarterBonus(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.Profile.Starter = profile.Starter{Name: "Graphlet", Type: "grapher"}
		rows := testRows("3", 1)
		rows[0].Text = "What is the slope of the graphed line?"
		d.Source = fakeSource{rows: rows}
	})
	ctx := context.Background()
	if err := h.eng.StartStudy(ctx); err != nil {
		t.Fatalf("StartStudy: %v", err)
	}
	h.answer(t, true)

	if fb := h.presenter.lastFeedback(t); fb.XPDelta != 15 {
		t.Errorf("delta = %d, want 15 with affinity bonus", fb.XPDelta)
	}
}

func TestStudyIncorrect(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartStudy(ctx); err != nil {
		t.Fatalf("StartStudy: %v", err)
	}
	h.answer(t, false)

	fb := h.presenter.lastFeedback(t)
	if fb.Correct || fb.XPDelta != -2 {
		t.Errorf("feedback = %+v, want incorrect -2", fb)
	}
	if fb.Stamina != stamina.Max-2 {
		t.Errorf("stamina = %d, want %d", fb.Stamina, stamina.Max-2)
	}
	if fb.XP != 0 {
		t.Errorf("xp = %d, want floored at 0", fb.XP)
	}
}

func TestOnAnswerWithoutQuestion(t *testing.T) {
	h := newHarness(t, nil)
	err := h.eng.OnAnswer(context.Background(), "4")
	if !errors.Is(err, ErrNoQuestion) {
		t.Fatalf("err = %v, want ErrNoQuestion", err)
	}
}

func TestGymExclusivity(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}
	if !h.eng.IsChallengeActive() {
		t.Fatal("challenge should be active")
	}
	if err := h.eng.StartGym(ctx, "3"); !errors.Is(err, ErrChallengeActive) {
		t.Errorf("second gym: err = %v", err)
	}
	if err := h.eng.StartTrainerBattle(ctx, "sprout"); !errors.Is(err, ErrChallengeActive) {
		t.Errorf("battle during gym: err = %v", err)
	}
	if err := h.eng.StartStudy(ctx); !errors.Is(err, ErrChallengeActive) {
		t.Errorf("study during gym: err = %v", err)
	}
}

func TestGymEntryChecks(t *testing.T) {
	ctx := context.Background()

	h := newHarness(t, func(d *Deps) { d.Gauge = stamina.New(0, nil) })
	if err := h.eng.StartGym(ctx, "3"); !errors.Is(err, ErrNoStamina) {
		t.Errorf("depleted: err = %v", err)
	}

	h = newHarness(t, nil)
	if err := h.eng.StartGym(ctx, "99"); !errors.Is(err, ErrUnknownGym) {
		t.Errorf("unknown unit: err = %v", err)
	}

	h = newHarness(t, func(d *Deps) { d.Gate = mastery.NewGate(fixedCounter{n: 5}) })
	err := h.eng.StartGym(ctx, "3")
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("locked gym: err = %v", err)
	}
	var nr *NotReadyError
	if !errors.As(err, &nr) {
		t.Fatalf("err = %T, want NotReadyError", err)
	}
	if nr.Correct != 5 || nr.Threshold != 12 {
		t.Errorf("counts = %d/%d, want 5/12", nr.Correct, nr.Threshold)
	}

	h = newHarness(t, func(d *Deps) {
		d.Gate = mastery.NewGate(fixedCounter{err: errors.New("db down")})
	})
	if err := h.eng.StartGym(ctx, "3"); !errors.Is(err, ErrMasteryCheck) {
		t.Errorf("gate failure: err = %v, want ErrMasteryCheck", err)
	}

	h = newHarness(t, func(d *Deps) { d.Source = fakeSource{rows: testRows("3", 4)} })
	if err := h.eng.StartGym(ctx, "3"); !errors.Is(err, challenge.ErrInsufficientPool) {
		t.Errorf("thin pool: err = %v", err)
	}
}

func TestGymPassAwardsBadgeOnce(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}
	for i := 0; i < challenge.GymQuestions; i++ {
		h.answer(t, true)
	}

	final := h.presenter.gymResults[len(h.presenter.gymResults)-1]
	if !final.Progress.Done || !final.Progress.Passed {
		t.Fatalf("final = %+v, want passed", final.Progress)
	}
	if final.BadgeUnit != "3" {
		t.Errorf("badge = %q, want 3", final.BadgeUnit)
	}
	if len(h.prof.Badges) != 1 || h.prof.Badges[0] != "3" {
		t.Errorf("profile badges = %v", h.prof.Badges)
	}
	if len(h.attempts.boss) != 1 || !h.attempts.boss[0].Passed {
		t.Errorf("boss log = %+v", h.attempts.boss)
	}
	if h.eng.IsChallengeActive() {
		t.Error("challenge still active after pass")
	}

	// Second pass of the same gym must not re-award.
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("second StartGym: %v", err)
	}
	for i := 0; i < challenge.GymQuestions; i++ {
		h.answer(t, true)
	}
	final = h.presenter.gymResults[len(h.presenter.gymResults)-1]
	if final.BadgeUnit != "" {
		t.Errorf("re-award badge = %q, want empty", final.BadgeUnit)
	}
	if len(h.prof.Badges) != 1 {
		t.Errorf("badges = %v, want single entry", h.prof.Badges)
	}
}

func TestGymThreeStrikesDrainsStamina(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}
	for i := 0; i < 3; i++ {
		h.answer(t, false)
	}

	final := h.presenter.gymResults[len(h.presenter.gymResults)-1]
	if !final.Progress.Done || final.Progress.Passed {
		t.Fatalf("final = %+v, want failed", final.Progress)
	}
	if final.Progress.Reason != challenge.ReasonStrikes {
		t.Errorf("reason = %q", final.Progress.Reason)
	}
	if !h.eng.Gauge().Depleted() {
		t.Error("gym failure must drain the gauge")
	}
	if len(h.attempts.boss) != 1 || h.attempts.boss[0].Reason != "strikes" {
		t.Errorf("boss log = %+v", h.attempts.boss)
	}
}

func TestGymStaminaCollapse(t *testing.T) {
	h := newHarness(t, func(d *Deps) { d.Gauge = stamina.New(2, nil) })
	ctx := context.Background()
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}
	h.answer(t, false)

	final := h.presenter.gymResults[len(h.presenter.gymResults)-1]
	if !final.Progress.Done || final.Progress.Reason != challenge.ReasonStamina {
		t.Fatalf("final = %+v, want stamina failure", final.Progress)
	}
}

func TestGymScoreboardFailureKeepsStamina(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}

	// Alternating hits and misses: never three strikes, never an empty
	// gauge, but only three of five at the end.
	for i := 0; i < 5; i++ {
		h.answer(t, i%2 == 0)
	}

	final := h.presenter.gymResults[len(h.presenter.gymResults)-1]
	if !final.Progress.Done || final.Progress.Passed {
		t.Fatalf("final = %+v, want scoreboard failure", final.Progress)
	}
	if final.Progress.Reason != challenge.ReasonNone {
		t.Errorf("reason = %q, want none", final.Progress.Reason)
	}
	if h.eng.Gauge().Value() != stamina.Max {
		t.Errorf("stamina = %d, want %d untouched", h.eng.Gauge().Value(), stamina.Max)
	}
	if len(h.attempts.boss) != 1 || h.attempts.boss[0].Reason != "" {
		t.Errorf("boss log = %+v", h.attempts.boss)
	}
}

func TestGymAsksAllFiveQuestions(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}

	for i := 0; i < 4; i++ {
		h.answer(t, true)
		if !h.eng.IsChallengeActive() {
			t.Fatalf("run ended after %d correct answers; the fifth must still be asked", i+1)
		}
	}
	h.answer(t, true)

	final := h.presenter.gymResults[len(h.presenter.gymResults)-1]
	if !final.Progress.Done || !final.Progress.Passed || final.Progress.Index != challenge.GymQuestions {
		t.Fatalf("final = %+v, want pass at index %d", final.Progress, challenge.GymQuestions)
	}
}

func TestGymLogsEachBossAnswer(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}
	for i := 0; i < challenge.GymQuestions; i++ {
		h.answer(t, i != 1)
	}

	if len(h.attempts.bossAnswers) != challenge.GymQuestions {
		t.Fatalf("boss answers logged = %d, want %d", len(h.attempts.bossAnswers), challenge.GymQuestions)
	}
	for i, a := range h.attempts.bossAnswers {
		if a.QIndex != i+1 || a.Unit != "3" || a.UserID != "u1" {
			t.Errorf("boss answer %d = %+v", i, a)
		}
		if a.Correct == (i == 1) {
			t.Errorf("boss answer %d correctness = %v", i, a.Correct)
		}
	}
	if len(h.attempts.boss) != 1 || h.attempts.bossAnswers[0].RunID != h.attempts.boss[0].RunID {
		t.Error("boss answers must share the summary row's run id")
	}
}

func TestChallengeEntryBlockedByDisplayedQuestion(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartStudy(ctx); err != nil {
		t.Fatalf("StartStudy: %v", err)
	}

	if err := h.eng.StartTrainerBattle(ctx, "sprout"); !errors.Is(err, ErrQuestionDisplayed) {
		t.Errorf("battle mid-question: err = %v, want ErrQuestionDisplayed", err)
	}
	if err := h.eng.StartGym(ctx, "3"); !errors.Is(err, ErrQuestionDisplayed) {
		t.Errorf("gym mid-question: err = %v, want ErrQuestionDisplayed", err)
	}
	if h.eng.Mode() != ModeStudy {
		t.Errorf("mode = %q, the study question must survive", h.eng.Mode())
	}
	h.answer(t, true)

	// Once settled, challenge entry opens again.
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Errorf("gym after settle: %v", err)
	}
}

func TestGymQuestionsCarryNoXP(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}
	h.answer(t, true)
	if fb := h.presenter.lastFeedback(t); fb.XPDelta != 0 {
		t.Errorf("gym delta = %d, want 0", fb.XPDelta)
	}
	if h.prof.XP != 0 {
		t.Errorf("profile xp = %d, want 0", h.prof.XP)
	}
}

func TestGymNextQuestionCarriesDelay(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartGym(ctx, "3"); err != nil {
		t.Fatalf("StartGym: %v", err)
	}
	if h.presenter.questions[0].Delay != 0 {
		t.Errorf("first question delay = %v, want 0", h.presenter.questions[0].Delay)
	}
	h.answer(t, true)
	next := h.presenter.questions[len(h.presenter.questions)-1]
	if next.Delay != GymStepDelay {
		t.Errorf("step delay = %v, want %v", next.Delay, GymStepDelay)
	}
}

func TestTrainerBattleWon(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		// Opponent misses every round.
		d.BattleRng = &seqRand{}
	})
	ctx := context.Background()
	if err := h.eng.StartTrainerBattle(ctx, "sprout"); err != nil {
		t.Fatalf("StartTrainerBattle: %v", err)
	}
	if tr, ok := h.eng.ActiveTrainer(); !ok || tr.ID != "sprout" {
		t.Fatalf("active trainer = %+v ok=%v", tr, ok)
	}

	for i := 0; i < 3; i++ {
		h.answer(t, true)
	}
	last := h.presenter.rounds[len(h.presenter.rounds)-1]
	if last.Round.State != challenge.BattleWon {
		t.Fatalf("state = %q, want won", last.Round.State)
	}
	if last.Round.PlayerWins != 3 {
		t.Errorf("wins = %d, want 3", last.Round.PlayerWins)
	}
	if h.eng.IsChallengeActive() {
		t.Error("battle still active after win")
	}
}

func TestTrainerCounterPenalty(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.Profile.XP = 20
		// Opponent answers correctly.
		d.BattleRng = &seqRand{floats: []float64{0.0}}
	})
	ctx := context.Background()
	if err := h.eng.StartTrainerBattle(ctx, "sprout"); err != nil {
		t.Fatalf("StartTrainerBattle: %v", err)
	}
	h.answer(t, false)

	fb := h.presenter.lastFeedback(t)
	if fb.XPDelta != -7 {
		t.Errorf("countered delta = %d, want -7", fb.XPDelta)
	}
	if h.prof.XP != 13 {
		t.Errorf("profile xp = %d, want 13", h.prof.XP)
	}
	round := h.presenter.rounds[len(h.presenter.rounds)-1]
	if round.Round.Outcome != challenge.RoundCountered {
		t.Errorf("outcome = %q", round.Round.Outcome)
	}
}

func TestTrainerBattleLostOnStamina(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.Gauge = stamina.New(2, nil)
		d.BattleRng = &seqRand{} // opponent misses
	})
	ctx := context.Background()
	if err := h.eng.StartTrainerBattle(ctx, "sprout"); err != nil {
		t.Fatalf("StartTrainerBattle: %v", err)
	}
	h.answer(t, false)

	last := h.presenter.rounds[len(h.presenter.rounds)-1]
	if last.Round.State != challenge.BattleLost {
		t.Fatalf("state = %q, want lost", last.Round.State)
	}
	if h.eng.IsChallengeActive() {
		t.Error("battle still active after loss")
	}
}

func TestTrainerFocusPool(t *testing.T) {
	rows := append(testRows("1", 3), testRows("5", 3)...)
	h := newHarness(t, func(d *Deps) {
		d.Source = fakeSource{rows: rows}
	})
	ctx := context.Background()
	// sprout focuses unit 1.
	if err := h.eng.StartTrainerBattle(ctx, "sprout"); err != nil {
		t.Fatalf("StartTrainerBattle: %v", err)
	}
	q := h.presenter.questions[0]
	if q.Unit != "1" {
		t.Errorf("question unit = %q, want focus unit 1", q.Unit)
	}
}

func TestTrainerFlee(t *testing.T) {
	h := newHarness(t, func(d *Deps) { d.BattleRng = &seqRand{} })
	ctx := context.Background()
	if err := h.eng.StartTrainerBattle(ctx, "sprout"); err != nil {
		t.Fatalf("StartTrainerBattle: %v", err)
	}
	h.eng.CloseOrFlee()

	last := h.presenter.rounds[len(h.presenter.rounds)-1]
	if last.Round.State != challenge.BattleForfeited {
		t.Fatalf("state = %q, want forfeited", last.Round.State)
	}
	if h.eng.IsChallengeActive() {
		t.Error("battle still active after flee")
	}
	if err := h.eng.StartStudy(ctx); err != nil {
		t.Errorf("study after flee: %v", err)
	}
}

func TestCloseDismissesStudyQuestion(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	if err := h.eng.StartStudy(ctx); err != nil {
		t.Fatalf("StartStudy: %v", err)
	}
	h.eng.CloseOrFlee()
	if h.eng.Mode() != ModeIdle {
		t.Errorf("mode = %q, want idle", h.eng.Mode())
	}
	if err := h.eng.OnAnswer(ctx, "4"); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("err = %v, want ErrNoQuestion", err)
	}
}

func TestStudyPoolUnavailable(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.Source = fakeSource{err: questions.ErrPoolUnavailable}
	})
	err := h.eng.StartStudy(context.Background())
	if !errors.Is(err, questions.ErrPoolUnavailable) {
		t.Fatalf("err = %v, want ErrPoolUnavailable", err)
	}
}

func TestTrainerPoolErrorLeavesNoSession(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.Source = fakeSource{err: questions.ErrPoolUnavailable}
	})
	err := h.eng.StartTrainerBattle(context.Background(), "sprout")
	if !errors.Is(err, questions.ErrPoolUnavailable) {
		t.Fatalf("err = %v, want ErrPoolUnavailable", err)
	}
	if h.eng.IsChallengeActive() {
		t.Error("failed start must not leave a session behind")
	}
}
