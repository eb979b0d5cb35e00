package morph

import (
	"testing"
)

func TestNewWordAnalysis(t *testing.T) {
	c := Candidate{
		"word":   "дому",
		"base":   "дом",
		"ending": "у",
		"lemma":  "дом",
		"part":   "noun",
		"case":   "dative",
		"gender": "masculine",
		"number": "singular",
		"type":   "dictionary",
	}
	w, err := NewWordAnalysis(c)
	if err != nil {
		t.Fatalf("NewWordAnalysis: %v", err)
	}
	if w.Word != "дому" || w.Root != "дом" || w.Ending != "у" || w.Lemma != "дом" {
		t.Errorf("text fields wrong: %+v", w)
	}
	if w.Part != PartNoun || w.Case != CaseDative || w.Gender != GenderMasculine {
		t.Errorf("enum fields wrong: %+v", w)
	}
	if w.Number != NumberSingular || w.Type != TypeDictionary {
		t.Errorf("enum fields wrong: %+v", w)
	}
	// Unreported attributes stay empty.
	if w.Tense != "" || w.Person != "" || w.Kind != "" {
		t.Errorf("absent fields should stay empty: %+v", w)
	}
}

func TestNewWordAnalysisIgnoresUnknownKeys(t *testing.T) {
	w, err := NewWordAnalysis(Candidate{"word": "дом", "shiny": "new"})
	if err != nil {
		t.Fatalf("NewWordAnalysis: %v", err)
	}
	if w.Word != "дом" {
		t.Errorf("expected дом, got %q", w.Word)
	}
}

func TestNewWordAnalysisRejectsUnknownEnumValue(t *testing.T) {
	testCases := []Candidate{
		{"word": "дом", "part": "gerund"},
		{"word": "дом", "case": "vocative"},
		{"word": "дом", "gender": "plural"},
		{"word": "дом", "type": "slang"},
	}
	for _, c := range testCases {
		if _, err := NewWordAnalysis(c); err == nil {
			t.Errorf("expected error for %v", c)
		}
	}
}

func TestMergeFillsOnlyEmptyFields(t *testing.T) {
	inflected, err := NewWordAnalysis(Candidate{"word": "дому", "case": "dative"})
	if err != nil {
		t.Fatal(err)
	}
	info, err := NewWordAnalysis(Candidate{
		"word": "дому", "lemma": "дом", "part": "noun", "case": "nominative",
	})
	if err != nil {
		t.Fatal(err)
	}

	inflected.Merge(info)
	if inflected.Case != CaseDative {
		t.Errorf("merge must not overwrite, got %q", inflected.Case)
	}
	if inflected.Lemma != "дом" || inflected.Part != PartNoun {
		t.Errorf("merge should fill empty fields: %+v", inflected)
	}

	inflected.Merge(nil)
}

func TestNumeralExpansionFullText(t *testing.T) {
	n := NewNumeralExpansion(Candidate{
		"number": "1234",
		"text":   "одна тысяча двести тридцать четыре",
	})
	want := "1234 одна тысяча двести тридцать четыре"
	if n.FullText() != want {
		t.Errorf("expected %q, got %q", want, n.FullText())
	}
}

func TestNewSpellingReport(t *testing.T) {
	r, err := NewSpellingReport(Candidate{
		"word":     "тектса",
		"position": float64(8),
		"correct":  []any{map[string]any{"word": "текста"}, nil},
	})
	if err != nil {
		t.Fatalf("NewSpellingReport: %v", err)
	}
	if r.Word != "тектса" || r.Position != 8 {
		t.Errorf("unexpected report: %+v", r)
	}
	if len(r.Corrections) != 1 || r.Corrections[0].Word != "текста" {
		t.Errorf("null correction entries should be skipped: %+v", r.Corrections)
	}
}

func TestCandidateProbability(t *testing.T) {
	testCases := []struct {
		name   string
		c      Candidate
		want   float64
		truthy bool
	}{
		{"number", Candidate{"probability": 0.4}, 0.4, true},
		{"string number", Candidate{"probability": "0.4"}, 0.4, true},
		{"zero is falsy", Candidate{"probability": 0.0}, 0, false},
		{"empty string is falsy", Candidate{"probability": ""}, 0, false},
		{"absent", Candidate{}, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.c.Probability()
			if ok != tc.truthy || got != tc.want {
				t.Errorf("expected (%v,%v), got (%v,%v)", tc.want, tc.truthy, got, ok)
			}
		})
	}
}
