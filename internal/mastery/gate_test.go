package mastery

import (
	"context"
	"errors"
	"testing"
)

type fakeCounter struct {
	n   int
	err error
}

func (f fakeCounter) CountCorrect(ctx context.Context, userID, unit string) (int, error) {
	return f.n, f.err
}

func TestCanChallenge(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		threshold int
		ready     bool
	}{
		{"one short", 9, 10, false},
		{"exactly at threshold", 10, 10, true},
		{"over threshold", 15, 10, true},
		{"zero threshold", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(fakeCounter{n: tt.correct})
			chk, err := g.CanChallenge(context.Background(), "u1", "3", tt.threshold)
			if err != nil {
				t.Fatalf("CanChallenge error: %v", err)
			}
			if chk.Ready != tt.ready {
				t.Errorf("ready = %v, want %v", chk.Ready, tt.ready)
			}
			if chk.Correct != tt.correct {
				t.Errorf("correct = %d, want %d", chk.Correct, tt.correct)
			}
		})
	}
}

func TestCanChallengeFailsClosed(t *testing.T) {
	g := NewGate(fakeCounter{n: 99, err: errors.New("db down")})
	chk, err := g.CanChallenge(context.Background(), "u1", "3", 10)
	if err == nil {
		t.Fatal("expected error")
	}
	if chk.Ready {
		t.Error("counting failure must not unlock the gate")
	}
}
