// Package stamina tracks the player's energy gauge. Correct answers
// restore energy, wrong ones spend it, and an empty gauge blocks new
// challenges until the player studies it back up.
package stamina

// Gauge bounds.
const (
	Min = 0
	Max = 10

	gainPerCorrect   = 2
	costPerIncorrect = 2
)

// Saver persists gauge values. Persistence is best effort; a failed
// save never interrupts play.
type Saver interface {
	SaveStamina(value int) error
}

// Gauge is the in-memory stamina value for the active profile.
type Gauge struct {
	value int
	saver Saver
}

// New returns a gauge clamped to [Min, Max]. A nil saver disables
// persistence.
func New(value int, saver Saver) *Gauge {
	return &Gauge{value: clamp(value), saver: saver}
}

// Value returns the current gauge reading.
func (g *Gauge) Value() int { return g.value }

// Depleted reports whether the gauge is empty.
func (g *Gauge) Depleted() bool { return g.value <= Min }

// Full reports whether the gauge is at capacity.
func (g *Gauge) Full() bool { return g.value >= Max }

// ApplyOutcome adjusts the gauge for one answered question and returns
// the new value.
func (g *Gauge) ApplyOutcome(correct bool) int {
	if correct {
		g.value = clamp(g.value + gainPerCorrect)
	} else {
		g.value = clamp(g.value - costPerIncorrect)
	}
	g.persist()
	return g.value
}

// Drain empties the gauge. Used when a boss run ends in failure.
func (g *Gauge) Drain() {
	g.value = Min
	g.persist()
}

func (g *Gauge) persist() {
	if g.saver == nil {
		return
	}
	_ = g.saver.SaveStamina(g.value)
}

func clamp(v int) int {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}
