// Package challenge holds the gym run and trainer battle state
// machines. Both are pure: they consume answer outcomes and stamina
// readings and report progress, leaving persistence and presentation
// to the caller.
package challenge

import (
	"errors"

	"github.com/google/uuid"

	"algebramon/internal/questions"
)

// Gym run shape.
const (
	GymQuestions = 5
	GymPassNeed  = 4
	GymMaxMisses = 3
)

// ErrInsufficientPool means the unit's question pool cannot fill a run.
var ErrInsufficientPool = errors.New("not enough questions for a gym run")

// FailReason distinguishes how a gym run was lost.
type FailReason string

const (
	ReasonNone    FailReason = ""
	ReasonStrikes FailReason = "strikes"
	ReasonStamina FailReason = "stamina"
)

// GymProgress is the state after one answered boss question.
type GymProgress struct {
	Index   int
	Correct int
	Misses  int
	Done    bool
	Passed  bool
	Reason  FailReason
}

// GymRun is one attempt at a unit's boss challenge.
type GymRun struct {
	ID   string
	Unit string

	rows    []questions.Row
	index   int
	correct int
	misses  int
	done    bool
	passed  bool
	reason  FailReason
}

// NewGymRun draws GymQuestions from the pool without replacement.
func NewGymRun(unit string, pool []questions.Row, rng Rand) (*GymRun, error) {
	if len(pool) < GymQuestions {
		return nil, ErrInsufficientPool
	}
	rows := make([]questions.Row, 0, GymQuestions)
	for _, i := range rng.Perm(len(pool))[:GymQuestions] {
		rows = append(rows, pool[i])
	}
	return &GymRun{
		ID:   uuid.NewString(),
		Unit: unit,
		rows: rows,
	}, nil
}

// Current returns the question awaiting an answer.
func (r *GymRun) Current() (questions.Row, bool) {
	if r.done || r.index >= len(r.rows) {
		return questions.Row{}, false
	}
	return r.rows[r.index], true
}

// Answer records one outcome and advances the run. staminaAfter is the
// gauge reading after the answer was settled; an empty gauge ends the
// run even before the third strike.
func (r *GymRun) Answer(correct bool, staminaAfter int) GymProgress {
	if r.done {
		return r.progress()
	}

	r.index++
	if correct {
		r.correct++
	} else {
		r.misses++
	}

	switch {
	case r.misses >= GymMaxMisses:
		r.done = true
		r.reason = ReasonStrikes
	case staminaAfter <= 0:
		r.done = true
		r.reason = ReasonStamina
	case r.index >= GymQuestions:
		// Pass or fail is decided only once all five are answered;
		// only strikes and an empty gauge end a run early.
		r.done = true
		r.passed = r.correct >= GymPassNeed
	}

	return r.progress()
}

func (r *GymRun) progress() GymProgress {
	return GymProgress{
		Index:   r.index,
		Correct: r.correct,
		Misses:  r.misses,
		Done:    r.done,
		Passed:  r.passed,
		Reason:  r.reason,
	}
}
