package questions

import (
	"strings"
	"testing"
)

const sampleSheet = "qid\tUnit\tStandard\tQuestion Text\tAnswer\tchoice_a\tchoice_b\tchoice_c\tchoice_d\n" +
	"q1\tUnit 01\tA.REI.3\tSolve 2x = 6\t3\t3\t4\t5\t6\n" +
	"q2\t2\tF-IF.4\tWhat is the slope?\t2\t1\t2\t3\t4\n"

func TestParseTSV(t *testing.T) {
	rows, err := ParseTSV(strings.NewReader(sampleSheet))
	if err != nil {
		t.Fatalf("ParseTSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	r := rows[0]
	if r.QID != "q1" {
		t.Errorf("QID = %q, want q1", r.QID)
	}
	if r.UnitNorm() != "1" {
		t.Errorf("UnitNorm = %q, want 1", r.UnitNorm())
	}
	if r.Text != "Solve 2x = 6" {
		t.Errorf("Text = %q", r.Text)
	}
	if r.Answer != "3" {
		t.Errorf("Answer = %q, want 3", r.Answer)
	}
	if r.Raw["choice_b"] != "4" {
		t.Errorf("Raw choice_b = %q, want 4", r.Raw["choice_b"])
	}
}

func TestParseTSV_CRLFAndBlankLines(t *testing.T) {
	sheet := "question\tanswer\r\n\r\nSolve x\t5\r\n"
	rows, err := ParseTSV(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("ParseTSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Answer != "5" {
		t.Errorf("Answer = %q, want 5", rows[0].Answer)
	}
}

func TestParseTSV_MissingQuestionText(t *testing.T) {
	rows, err := ParseTSV(strings.NewReader("unit\tanswer\n1\t42\n"))
	if err != nil {
		t.Fatalf("ParseTSV: %v", err)
	}
	if rows[0].Text != "(No question text found)" {
		t.Errorf("Text = %q, want placeholder", rows[0].Text)
	}
}

func TestCollectChoices_ExcludesAnswerAndDupes(t *testing.T) {
	raw := map[string]string{
		"answer":   "3",
		"choice_a": "3",
		"choice_b": "4",
		"choice_c": "4",
		"choice_d": "5",
	}
	got := collectChoices(raw, "3")
	want := []string{"4", "5"}
	if len(got) != len(want) {
		t.Fatalf("collectChoices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collectChoices[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitMulti(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`["3","5","6"]`, 3},
		{"3; 5; 6", 3},
		{"a | b | c | d", 4},
		{"", 0},
		{"{3, 5}", 2},
	}
	for _, c := range cases {
		if got := splitMulti(c.in); len(got) != c.want {
			t.Errorf("splitMulti(%q) = %v, want %d items", c.in, got, c.want)
		}
	}
}
