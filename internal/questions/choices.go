package questions

import (
	"math/rand"
	"strings"
)

// Prompt is a displayable question: shuffled options plus the canonical
// answer text they are graded against.
type Prompt struct {
	Text         string
	Choices      []string
	CorrectText  string
	CorrectIndex int
	ImageURL     string
}

// pads fill out sparse choice lists so every prompt has 4 options.
var pads = []string{"(none of these)", "(all of these)", "(can't tell)"}

// letterIndex maps an A-D answer to a per-letter choice column.
var letterIndex = map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}

// BuildPrompt assembles the displayable prompt for a row: per-letter
// choice columns win over the distractor list, a letter answer (A-D) is
// resolved to its choice text, the answer is injected when absent, the
// list is de-duplicated, capped at 4, padded, and shuffled with rng.
func BuildPrompt(row Row, rng *rand.Rand) Prompt {
	perChoice := extractPerChoice(row.Raw)
	answerRaw := SanitizeChoice(row.Answer)
	_, isLetter := letterIndex[strings.ToLower(answerRaw)]
	letterAns := len(answerRaw) == 1 && isLetter

	var choices []string
	if len(perChoice) >= 2 {
		choices = append(choices, perChoice...)
	} else {
		for _, d := range row.Distractors {
			if c := SanitizeChoice(d); c != "" {
				choices = append(choices, c)
			}
		}
	}

	correct := answerRaw
	if letterAns && len(perChoice) >= 2 {
		if idx, ok := letterIndex[strings.ToLower(answerRaw)]; ok && idx < len(perChoice) {
			correct = perChoice[idx]
		}
	}

	// Inject a text answer that the choice list is missing.
	if !letterAns && correct != "" {
		present := false
		for _, c := range choices {
			if strings.EqualFold(c, correct) {
				present = true
				break
			}
		}
		if !present {
			choices = append([]string{correct}, choices...)
		}
	}

	seen := make(map[string]bool)
	var final []string
	for _, c := range choices {
		c = SanitizeChoice(c)
		if c == "" || seen[strings.ToLower(c)] {
			continue
		}
		seen[strings.ToLower(c)] = true
		final = append(final, c)
		if len(final) == 4 {
			break
		}
	}
	for _, p := range pads {
		if len(final) >= 4 {
			break
		}
		if !seen[strings.ToLower(p)] {
			final = append(final, p)
			seen[strings.ToLower(p)] = true
		}
	}

	rng.Shuffle(len(final), func(i, j int) {
		final[i], final[j] = final[j], final[i]
	})

	correctIdx := -1
	for i, c := range final {
		if strings.EqualFold(c, correct) {
			correctIdx = i
			break
		}
	}

	return Prompt{
		Text:         sanitizeQuestionText(row.Text),
		Choices:      final,
		CorrectText:  correct,
		CorrectIndex: correctIdx,
		ImageURL:     row.ImageURL,
	}
}

// extractPerChoice finds A/B/C/D-style columns in the raw row:
// bare letters, choice_a..d, choice1..4, or option1..4.
func extractPerChoice(raw map[string]string) []string {
	buckets := make(map[int]string)
	for k, v := range raw {
		v = SanitizeChoice(v)
		if v == "" {
			continue
		}
		lk := strings.ToLower(k)
		idx := -1
		switch {
		case len(lk) == 1 && lk >= "a" && lk <= "d":
			idx = letterIndex[lk]
		case strings.HasPrefix(lk, "choice_") && len(lk) == 8 && lk[7] >= 'a' && lk[7] <= 'd':
			idx = letterIndex[lk[7:]]
		case strings.HasPrefix(lk, "choice") && len(lk) == 7 && lk[6] >= '1' && lk[6] <= '4':
			idx = int(lk[6] - '1')
		case strings.HasPrefix(lk, "option") && len(lk) == 7 && lk[6] >= '1' && lk[6] <= '4':
			idx = int(lk[6] - '1')
		}
		if idx >= 0 {
			buckets[idx] = v
		}
	}
	var out []string
	for i := 0; i < 4; i++ {
		if buckets[i] != "" {
			out = append(out, buckets[i])
		}
	}
	return out
}

// SanitizeChoice cleans one option for display and matching: outer
// quotes and backticks go, one layer of bracket wrappers goes, runs of
// spaces collapse. Inner brackets stay (they can be part of math).
func SanitizeChoice(s string) string {
	t := cleanRaw(s)
	t = strings.TrimLeft(t, "[{(<«")
	t = strings.TrimRight(t, "]})>»")
	t = trimQuotes(t)
	t = strings.ReplaceAll(t, "`", "")
	return strings.Join(strings.Fields(t), " ")
}

// sanitizeQuestionText only trims wrapping quotes and collapses spaces;
// brackets and braces are left alone.
func sanitizeQuestionText(s string) string {
	return strings.Join(strings.Fields(cleanRaw(s)), " ")
}

func cleanRaw(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(trimQuotes(strings.TrimSpace(s)))
}

func trimQuotes(s string) string {
	return strings.Trim(s, "\"'“”‘’`")
}
