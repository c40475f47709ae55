package questions

// Row is one practice item as fetched from the question sheet.
// Rows are immutable once parsed and are never persisted by the engine.
type Row struct {
	// QID is a stable identifier, empty when the sheet has none.
	QID string

	// UnitID is the raw unit field. Use UnitNorm for comparisons.
	UnitID string

	// Standard is the learning-standard code (e.g. "A.REI.3"), optional.
	Standard string

	// Text is the question prompt.
	Text string

	// Answer is the canonical answer text or a choice letter (A-D).
	Answer string

	// Distractors are incorrect options, already de-duplicated and
	// excluding the answer.
	Distractors []string

	// Explanation is optional rationale text.
	Explanation string

	// ImageURL is an optional reference to a question visual.
	ImageURL string

	// Raw keeps every original column keyed by its slugged header, so
	// choice extraction can look at per-letter columns the canonical
	// fields don't cover.
	Raw map[string]string
}

// UnitNorm returns the normalized unit for this row, checking the
// canonical unit field first and then the common raw variants.
func (r Row) UnitNorm() string {
	candidates := []string{r.UnitID, r.Raw["unit_id"], r.Raw["unit"], r.Raw["unitid"]}
	for _, c := range candidates {
		if n := NormalizeUnit(c); n != "" {
			return n
		}
	}
	return ""
}
