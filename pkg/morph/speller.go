package morph

// SpellingReport is one spell-checker finding: the misspelled span,
// its character offset in the checked text, and optionally a list of
// correction candidates fetched by a follow-up lookup.
type SpellingReport struct {
	Word        string
	Position    int
	Corrections []*WordAnalysis
}

// NewSpellingReport projects a raw candidate into a SpellingReport.
// A "correct" list attached by the server is carried over; null
// entries produce no record.
func NewSpellingReport(c Candidate) (*SpellingReport, error) {
	r := &SpellingReport{
		Word:     c.Str("word"),
		Position: c.Int("position"),
	}
	raw, ok := c["correct"].([]any)
	if !ok {
		return r, nil
	}
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok || obj == nil {
			continue
		}
		w, err := NewWordAnalysis(Candidate(obj))
		if err != nil {
			return nil, err
		}
		r.Corrections = append(r.Corrections, w)
	}
	return r, nil
}
