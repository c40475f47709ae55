package questions

import (
	"math/rand"
	"strings"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestBuildPrompt_InjectsMissingAnswer(t *testing.T) {
	row := Row{
		Text:        "Solve 2x = 6",
		Answer:      "3",
		Distractors: []string{"4", "5", "6"},
		Raw:         map[string]string{},
	}
	p := BuildPrompt(row, testRNG())

	if len(p.Choices) != 4 {
		t.Fatalf("got %d choices, want 4", len(p.Choices))
	}
	if p.CorrectText != "3" {
		t.Errorf("CorrectText = %q, want 3", p.CorrectText)
	}
	if p.CorrectIndex < 0 || p.Choices[p.CorrectIndex] != "3" {
		t.Errorf("CorrectIndex = %d does not point at the answer: %v", p.CorrectIndex, p.Choices)
	}
}

func TestBuildPrompt_LetterAnswerResolvesToChoiceText(t *testing.T) {
	row := Row{
		Text:   "Which is prime?",
		Answer: "B",
		Raw: map[string]string{
			"choice_a": "4",
			"choice_b": "7",
			"choice_c": "9",
			"choice_d": "15",
		},
	}
	p := BuildPrompt(row, testRNG())

	if p.CorrectText != "7" {
		t.Errorf("CorrectText = %q, want 7", p.CorrectText)
	}
	if p.CorrectIndex < 0 || p.Choices[p.CorrectIndex] != "7" {
		t.Errorf("CorrectIndex does not point at the resolved answer: %v", p.Choices)
	}
}

func TestBuildPrompt_PadsSparseChoices(t *testing.T) {
	row := Row{Text: "Solve", Answer: "12", Raw: map[string]string{}}
	p := BuildPrompt(row, testRNG())

	if len(p.Choices) != 4 {
		t.Fatalf("got %d choices, want 4 after padding", len(p.Choices))
	}
	padCount := 0
	for _, c := range p.Choices {
		if strings.HasPrefix(c, "(") {
			padCount++
		}
	}
	if padCount != 3 {
		t.Errorf("got %d pads, want 3: %v", padCount, p.Choices)
	}
}

func TestBuildPrompt_DedupesCaseInsensitively(t *testing.T) {
	row := Row{
		Text:        "Pick one",
		Answer:      "Slope",
		Distractors: []string{"slope", "SLOPE", "intercept"},
		Raw:         map[string]string{},
	}
	p := BuildPrompt(row, testRNG())

	seen := make(map[string]bool)
	for _, c := range p.Choices {
		k := strings.ToLower(c)
		if seen[k] {
			t.Fatalf("duplicate choice %q in %v", c, p.Choices)
		}
		seen[k] = true
	}
}

func TestSanitizeChoice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"3"`, "3"},
		{"[x = 2]", "x = 2"},
		{"`7`", "7"},
		{"  two   words ", "two words"},
		{"(none)", "none"},
	}
	for _, c := range cases {
		if got := SanitizeChoice(c.in); got != c.want {
			t.Errorf("SanitizeChoice(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInferCategory(t *testing.T) {
	cases := []struct {
		row  Row
		want Category
	}{
		{Row{Standard: "F-IF.4"}, CategoryGraphing},
		{Row{Standard: "A-REI.3"}, CategoryAlgebraic},
		{Row{Text: "Complete the table of values"}, CategoryTables},
		{Row{Text: "Find the slope of the line"}, CategoryGraphing},
		{Row{Text: "Simplify"}, CategoryAlgebraic},
	}
	for _, c := range cases {
		if got := InferCategory(c.row); got != c.want {
			t.Errorf("InferCategory(%+v) = %q, want %q", c.row, got, c.want)
		}
	}
}

func TestStarterCategory(t *testing.T) {
	if got := StarterCategory("Graphing"); got != CategoryGraphing {
		t.Errorf("StarterCategory(Graphing) = %q", got)
	}
	if got := StarterCategory("mystery"); got != "" {
		t.Errorf("StarterCategory(mystery) = %q, want empty", got)
	}
}
