package questions

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// ParseTSV reads a tab-separated question sheet. The first line is the
// header; header names are slugged so "Question Text" and "question_text"
// land in the same column. Rows with no cells are skipped.
func ParseTSV(r io.Reader) ([]Row, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header []string
	var rows []Row
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if header == nil {
			for _, h := range strings.Split(line, "\t") {
				header = append(header, slug(h))
			}
			continue
		}
		cols := strings.Split(line, "\t")
		raw := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(cols) {
				raw[h] = strings.TrimSpace(cols[i])
			} else {
				raw[h] = ""
			}
		}
		rows = append(rows, canonicalize(raw))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// canonicalize maps heterogeneous sheet headers onto the Row fields.
func canonicalize(raw map[string]string) Row {
	row := Row{
		QID:         pick(raw, "qid", "id", "questionid"),
		UnitID:      pick(raw, "unit_id", "unit", "unitid"),
		Standard:    pick(raw, "standard", "std", "learningstandard"),
		Text:        pick(raw, "question_text", "question", "prompt", "stem", "text"),
		Answer:      pick(raw, "answer", "correct", "answer_key", "key", "solution"),
		Explanation: pick(raw, "explanation", "rationale", "why"),
		ImageURL:    pick(raw, "image_url", "image", "img"),
		Raw:         raw,
	}
	if row.Text == "" {
		row.Text = "(No question text found)"
	}
	row.Distractors = collectChoices(raw, row.Answer)
	return row
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "_")
	var b strings.Builder
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func pick(raw map[string]string, keys ...string) string {
	for _, k := range keys {
		if raw[k] != "" {
			return raw[k]
		}
	}
	return ""
}

// collectChoices gathers distractor options from the column styles seen
// in the wild: per-letter columns (choice_a..e, a..e), numbered columns
// (option1..5, wrong1..4), or a single combined cell.
func collectChoices(raw map[string]string, answer string) []string {
	var buckets []string

	prefixSets := [][]string{
		{"choice_a", "choice_b", "choice_c", "choice_d", "choice_e"},
		{"a", "b", "c", "d", "e"},
		{"option1", "option2", "option3", "option4", "option5"},
		{"wrong1", "wrong2", "wrong3", "wrong4"},
	}
	for _, set := range prefixSets {
		for _, k := range set {
			if raw[k] != "" {
				buckets = append(buckets, raw[k])
			}
		}
		if len(buckets) > 0 {
			break
		}
	}

	if len(buckets) == 0 {
		for _, k := range []string{"options", "choices", "distractors"} {
			if raw[k] != "" {
				buckets = splitMulti(raw[k])
				break
			}
		}
	}

	ans := strings.TrimSpace(answer)
	seen := make(map[string]bool)
	var out []string
	for _, b := range buckets {
		b = strings.TrimSpace(b)
		if b == "" || b == ans || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out
}

// splitMulti splits a combined choices cell. JSON arrays are parsed;
// anything else splits on the common delimiters.
func splitMulti(val string) []string {
	s := strings.TrimSpace(val)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &arr); err == nil {
			return arr
		}
	}
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
