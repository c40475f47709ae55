package challenge

import (
	"errors"
	"testing"

	"algebramon/internal/questions"
)

// seqRand feeds fixed values to the state machines.
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

func pool(n int) []questions.Row {
	rows := make([]questions.Row, n)
	for i := range rows {
		rows[i] = questions.Row{Text: "q", Answer: "a", UnitID: "3"}
	}
	return rows
}

func TestNewGymRunPoolTooSmall(t *testing.T) {
	_, err := NewGymRun("3", pool(4), &seqRand{})
	if !errors.Is(err, ErrInsufficientPool) {
		t.Fatalf("err = %v, want ErrInsufficientPool", err)
	}
}

func TestGymRunPass(t *testing.T) {
	r, err := NewGymRun("3", pool(10), &seqRand{})
	if err != nil {
		t.Fatal(err)
	}

	// One early miss, then four correct.
	p := r.Answer(false, 5)
	if p.Done {
		t.Fatal("run ended after one miss")
	}
	for i := 0; i < 3; i++ {
		p = r.Answer(true, 7)
		if p.Done {
			t.Fatalf("run ended early at answer %d: %+v", i+2, p)
		}
	}
	p = r.Answer(true, 9)
	if !p.Done || !p.Passed {
		t.Fatalf("expected pass, got %+v", p)
	}
	if p.Correct != 4 || p.Misses != 1 {
		t.Errorf("correct=%d misses=%d, want 4/1", p.Correct, p.Misses)
	}
}

func TestGymRunPresentsAllFiveQuestions(t *testing.T) {
	r, _ := NewGymRun("3", pool(5), &seqRand{})
	var p GymProgress
	for i := 0; i < 4; i++ {
		p = r.Answer(true, 10)
		if p.Done {
			t.Fatalf("run ended at index %d with four correct; the fifth question must still be asked", p.Index)
		}
	}
	if _, ok := r.Current(); !ok {
		t.Fatal("no fifth question offered")
	}
	p = r.Answer(true, 10)
	if !p.Done || !p.Passed {
		t.Fatalf("expected pass after the fifth answer, got %+v", p)
	}
	if p.Index != GymQuestions {
		t.Errorf("index = %d, want %d", p.Index, GymQuestions)
	}
}

func TestGymRunThreeStrikes(t *testing.T) {
	r, _ := NewGymRun("3", pool(5), &seqRand{})
	r.Answer(false, 8)
	r.Answer(false, 6)
	p := r.Answer(false, 4)
	if !p.Done || p.Passed {
		t.Fatalf("expected strike-out, got %+v", p)
	}
	if p.Reason != ReasonStrikes {
		t.Errorf("reason = %q, want %q", p.Reason, ReasonStrikes)
	}
}

func TestGymRunStaminaCollapse(t *testing.T) {
	r, _ := NewGymRun("3", pool(5), &seqRand{})
	p := r.Answer(false, 0)
	if !p.Done || p.Passed {
		t.Fatalf("expected stamina failure, got %+v", p)
	}
	if p.Reason != ReasonStamina {
		t.Errorf("reason = %q, want %q", p.Reason, ReasonStamina)
	}
	if p.Misses != 1 {
		t.Errorf("misses = %d, want 1", p.Misses)
	}
}

func TestGymRunStrikesWinOverStamina(t *testing.T) {
	r, _ := NewGymRun("3", pool(5), &seqRand{})
	r.Answer(false, 4)
	r.Answer(false, 2)
	p := r.Answer(false, 0)
	if p.Reason != ReasonStrikes {
		t.Errorf("reason = %q, want %q", p.Reason, ReasonStrikes)
	}
}

func TestGymRunFailsAtFiveWithThreeCorrect(t *testing.T) {
	r, _ := NewGymRun("3", pool(5), &seqRand{})
	r.Answer(true, 10)
	r.Answer(false, 8)
	r.Answer(true, 10)
	r.Answer(false, 8)
	p := r.Answer(true, 10)
	if !p.Done || p.Passed {
		t.Fatalf("3 of 5 must not pass, got %+v", p)
	}
	if p.Reason != ReasonNone {
		t.Errorf("reason = %q, want empty", p.Reason)
	}
}

func TestGymRunAnswerAfterDone(t *testing.T) {
	r, _ := NewGymRun("3", pool(5), &seqRand{})
	r.Answer(false, 8)
	r.Answer(false, 6)
	first := r.Answer(false, 4)
	again := r.Answer(true, 10)
	if again != first {
		t.Errorf("answer after done changed state: %+v vs %+v", again, first)
	}
}

func TestGymRunDrawsWithoutReplacement(t *testing.T) {
	rows := pool(8)
	for i := range rows {
		rows[i].QID = string(rune('a' + i))
	}
	r, _ := NewGymRun("3", rows, &seqRand{})
	seen := map[string]bool{}
	for {
		q, ok := r.Current()
		if !ok {
			break
		}
		if seen[q.QID] {
			t.Fatalf("question %s drawn twice", q.QID)
		}
		seen[q.QID] = true
		r.Answer(true, 10)
	}
	if len(seen) != GymQuestions {
		t.Errorf("saw %d questions, want %d", len(seen), GymQuestions)
	}
}
