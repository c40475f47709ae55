package stamina

import (
	"errors"
	"testing"
)

type recordSaver struct {
	saved []int
	err   error
}

func (s *recordSaver) SaveStamina(v int) error {
	s.saved = append(s.saved, v)
	return s.err
}

func TestApplyOutcome(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		correct bool
		want    int
	}{
		{"correct adds two", 5, true, 7},
		{"incorrect removes two", 5, false, 3},
		{"clamped at max", 9, true, 10},
		{"already full", 10, true, 10},
		{"clamped at min", 1, false, 0},
		{"already empty", 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.start, nil)
			if got := g.ApplyOutcome(tt.correct); got != tt.want {
				t.Errorf("ApplyOutcome(%v) from %d = %d, want %d", tt.correct, tt.start, got, tt.want)
			}
		})
	}
}

func TestNewClampsValue(t *testing.T) {
	if got := New(42, nil).Value(); got != Max {
		t.Errorf("New(42) = %d, want %d", got, Max)
	}
	if got := New(-3, nil).Value(); got != Min {
		t.Errorf("New(-3) = %d, want %d", got, Min)
	}
}

func TestDepletedAndFull(t *testing.T) {
	g := New(0, nil)
	if !g.Depleted() {
		t.Error("empty gauge should report depleted")
	}
	g = New(10, nil)
	if !g.Full() {
		t.Error("full gauge should report full")
	}
	g = New(5, nil)
	if g.Depleted() || g.Full() {
		t.Error("mid gauge should be neither depleted nor full")
	}
}

func TestDrain(t *testing.T) {
	g := New(8, nil)
	g.Drain()
	if g.Value() != 0 {
		t.Errorf("after Drain value = %d, want 0", g.Value())
	}
	if !g.Depleted() {
		t.Error("drained gauge should report depleted")
	}
}

func TestPersistsEveryChange(t *testing.T) {
	s := &recordSaver{}
	g := New(5, s)
	g.ApplyOutcome(true)
	g.ApplyOutcome(false)
	g.Drain()
	want := []int{7, 5, 0}
	if len(s.saved) != len(want) {
		t.Fatalf("saved %v, want %v", s.saved, want)
	}
	for i := range want {
		if s.saved[i] != want[i] {
			t.Fatalf("saved %v, want %v", s.saved, want)
		}
	}
}

func TestSaveErrorDoesNotDisrupt(t *testing.T) {
	s := &recordSaver{err: errors.New("save failed")}
	g := New(5, s)
	if got := g.ApplyOutcome(true); got != 7 {
		t.Errorf("ApplyOutcome with failing saver = %d, want 7", got)
	}
}
