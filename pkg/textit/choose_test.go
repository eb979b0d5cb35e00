package textit

import (
	"testing"

	"github.com/prostmich/textit-go/pkg/morph"
)

// The selector's contract is literal: all-probability lists sort
// ascending and the lowest wins, anything else returns the server's
// first candidate untouched.
func TestChooseCandidate(t *testing.T) {
	testCases := []struct {
		name     string
		cands    []morph.Candidate
		wantWord string
		wantNil  bool
	}{
		{
			name:    "empty list yields nil",
			cands:   nil,
			wantNil: true,
		},
		{
			name: "single candidate",
			cands: []morph.Candidate{
				{"word": "дом"},
			},
			wantWord: "дом",
		},
		{
			name: "lowest probability wins",
			cands: []morph.Candidate{
				{"word": "a", "probability": 0.9},
				{"word": "b", "probability": 0.1},
				{"word": "c", "probability": 0.5},
			},
			wantWord: "b",
		},
		{
			name: "ties keep original order",
			cands: []morph.Candidate{
				{"word": "first", "probability": 0.2},
				{"word": "second", "probability": 0.2},
			},
			wantWord: "first",
		},
		{
			name: "missing probability disables sorting",
			cands: []morph.Candidate{
				{"word": "served-first", "probability": 0.9},
				{"word": "no-prob"},
			},
			wantWord: "served-first",
		},
		{
			name: "zero probability counts as missing",
			cands: []morph.Candidate{
				{"word": "served-first", "probability": 0.9},
				{"word": "zeroed", "probability": 0.0},
			},
			wantWord: "served-first",
		},
		{
			name: "string probabilities are numeric",
			cands: []morph.Candidate{
				{"word": "a", "probability": "0.7"},
				{"word": "b", "probability": "0.3"},
			},
			wantWord: "b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := chooseCandidate(tc.cands)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected candidate %q, got nil", tc.wantWord)
			}
			if got.Str("word") != tc.wantWord {
				t.Errorf("expected %q, got %q", tc.wantWord, got.Str("word"))
			}
		})
	}
}

// The selector must not reorder the caller's slice.
func TestChooseCandidateKeepsInputOrder(t *testing.T) {
	cands := []morph.Candidate{
		{"word": "a", "probability": 0.9},
		{"word": "b", "probability": 0.1},
	}
	chooseCandidate(cands)
	if cands[0].Str("word") != "a" || cands[1].Str("word") != "b" {
		t.Errorf("input slice was reordered: %v", cands)
	}
}
