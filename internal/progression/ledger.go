// Package progression handles XP, levels, and badges.
package progression

import "sort"

// Context identifies where an answer was given. Gym questions carry no
// XP so boss runs stay a pure test of readiness.
type Context string

const (
	ContextStudy   Context = "study"
	ContextGym     Context = "gym"
	ContextTrainer Context = "trainer"
)

// XP amounts per answer.
const (
	studyCorrectXP = 10
	starterBonusXP = 5
	incorrectXP    = -2
	counterPenalty = -5
)

// xpPerLevel scales the requirement with the current level.
const xpPerLevel = 50

// XPNeeded returns the XP required to advance past the given level.
func XPNeeded(level int) int {
	if level < 1 {
		level = 1
	}
	return xpPerLevel * level
}

// Ledger tracks a profile's level, XP toward the next level, and
// earned badges.
type Ledger struct {
	level  int
	xp     int
	badges map[string]bool
}

// NewLedger restores a ledger from persisted values. Level floors at 1
// and XP at 0.
func NewLedger(level, xp int, badges []string) *Ledger {
	if level < 1 {
		level = 1
	}
	if xp < 0 {
		xp = 0
	}
	b := make(map[string]bool, len(badges))
	for _, name := range badges {
		if name != "" {
			b[name] = true
		}
	}
	return &Ledger{level: level, xp: xp, badges: b}
}

// Level returns the current level.
func (l *Ledger) Level() int { return l.level }

// XP returns progress toward the next level.
func (l *Ledger) XP() int { return l.xp }

// Badges returns earned badge names in sorted order.
func (l *Ledger) Badges() []string {
	out := make([]string, 0, len(l.badges))
	for name := range l.badges {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HasBadge reports whether the badge is earned.
func (l *Ledger) HasBadge(name string) bool { return l.badges[name] }

// Settlement describes the result of applying one answer.
type Settlement struct {
	Delta     int
	Level     int
	XP        int
	LeveledUp bool
}

// Settle applies the XP delta for one answered question. Countered only
// matters for incorrect trainer answers, where the opponent's correct
// reply deepens the penalty.
func (l *Ledger) Settle(ctx Context, correct, starterBonus, countered bool) Settlement {
	delta := 0
	switch ctx {
	case ContextGym:
		// Boss questions are scored by the run, not the ledger.
	case ContextStudy:
		if correct {
			delta = studyCorrectXP
			if starterBonus {
				delta += starterBonusXP
			}
		} else {
			delta = incorrectXP
		}
	case ContextTrainer:
		if !correct {
			delta = incorrectXP
			if countered {
				delta += counterPenalty
			}
		}
	}
	return l.apply(delta)
}

func (l *Ledger) apply(delta int) Settlement {
	before := l.level
	l.xp += delta
	if l.xp < 0 {
		l.xp = 0
	}
	for l.xp >= XPNeeded(l.level) {
		l.xp -= XPNeeded(l.level)
		l.level++
	}
	return Settlement{
		Delta:     delta,
		Level:     l.level,
		XP:        l.xp,
		LeveledUp: l.level > before,
	}
}

// AwardBadge records a badge. Returns true if it was newly earned.
func (l *Ledger) AwardBadge(name string) bool {
	if name == "" || l.badges[name] {
		return false
	}
	l.badges[name] = true
	return true
}
