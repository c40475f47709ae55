// Package mastery decides when a unit's boss challenge unlocks.
package mastery

import "context"

// Counter reports how many correct answers a profile has logged for a
// unit, across every context they were answered in.
type Counter interface {
	CountCorrect(ctx context.Context, userID, unit string) (int, error)
}

// Gate checks logged progress against a gym's entry threshold.
type Gate struct {
	counter Counter
}

// NewGate wires a gate to its progress source.
func NewGate(c Counter) *Gate {
	return &Gate{counter: c}
}

// Check is the result of a readiness query.
type Check struct {
	Ready     bool
	Correct   int
	Threshold int
}

// CanChallenge reports whether the profile has enough correct answers
// in the unit to face its gym. A counting failure closes the gate
// rather than waving an unready player through.
func (g *Gate) CanChallenge(ctx context.Context, userID, unit string, threshold int) (Check, error) {
	n, err := g.counter.CountCorrect(ctx, userID, unit)
	if err != nil {
		return Check{Ready: false, Threshold: threshold}, err
	}
	return Check{
		Ready:     n >= threshold,
		Correct:   n,
		Threshold: threshold,
	}, nil
}
