package textit

import (
	"sort"

	"github.com/prostmich/textit-go/pkg/morph"
)

// chooseCandidate picks the single answer among ambiguous candidates.
//
// When every candidate carries a truthy probability field the list is
// stable-sorted ascending and the lowest one wins; this mirrors the
// service's documented selection order and is kept literally even
// though it reads backwards. If any candidate lacks a probability, the
// server's own first candidate is used as-is. An empty list means
// nothing was found and yields nil.
func chooseCandidate(cands []morph.Candidate) morph.Candidate {
	if len(cands) == 0 {
		return nil
	}
	for _, c := range cands {
		if _, ok := c.Probability(); !ok {
			return cands[0]
		}
	}
	ordered := make([]morph.Candidate, len(cands))
	copy(ordered, cands)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, _ := ordered[i].Probability()
		pj, _ := ordered[j].Probability()
		return pi < pj
	})
	return ordered[0]
}
