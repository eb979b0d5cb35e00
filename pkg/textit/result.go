package textit

import (
	"encoding/json"
	"fmt"

	"github.com/prostmich/textit-go/pkg/api"
	"github.com/prostmich/textit-go/pkg/morph"
)

// Result is one reconciled batch entry, shaped according to the
// operation kind that produced it. Only the field matching Op is
// populated; the rest stay zero.
type Result struct {
	Op Op

	// Words holds every surviving candidate for correct, hint,
	// cognate and synonym.
	Words []*morph.WordAnalysis
	// Word is the chosen analysis for word info and set form.
	Word *morph.WordAnalysis
	// Numeral is the chosen expansion for numeral.
	Numeral *morph.NumeralExpansion
	// Spelling is the single finding for speller.
	Spelling *morph.SpellingReport
	// Text is the converted text for transliteration.
	Text string
}

// shapeFunc turns one raw per-command result slice into a Result.
type shapeFunc func(raw json.RawMessage) (Result, error)

var shapers = map[Op]shapeFunc{
	OpCorrect:       shapeWordList,
	OpHint:          shapeWordList,
	OpCognate:       shapeWordList,
	OpSynonym:       shapeWordList,
	OpWordInfo:      shapeWord,
	OpSetForm:       shapeWord,
	OpNumeral:       shapeNumeral,
	OpSpeller:       shapeSpelling,
	OpTransliterate: shapeText,
}

// reconcile zips submitted commands with the raw response array by
// index and shapes each slice per its command's operation kind. The
// server guarantees one element per command in submission order;
// anything else is a protocol violation.
func reconcile(cmds []Command, body json.RawMessage) ([]Result, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected per-command result array: %v", api.ErrNetwork, err)
	}
	if len(raw) != len(cmds) {
		return nil, fmt.Errorf("%w: %d commands but %d result slices", api.ErrNetwork, len(cmds), len(raw))
	}

	out := make([]Result, len(cmds))
	for i, cmd := range cmds {
		shape, ok := shapers[cmd.op]
		if !ok {
			return nil, fmt.Errorf("%w: no shape for operation %q", api.ErrNetwork, cmd.op)
		}
		res, err := shape(raw[i])
		if err != nil {
			return nil, err
		}
		res.Op = cmd.op
		out[i] = res
	}
	return out, nil
}

func decodeCandidates(raw json.RawMessage) ([]morph.Candidate, error) {
	var cands []morph.Candidate
	if err := json.Unmarshal(raw, &cands); err != nil {
		return nil, fmt.Errorf("%w: malformed result slice: %v", api.ErrNetwork, err)
	}
	return cands, nil
}

// shapeWordList keeps one analysis per candidate; null or empty
// candidates produce no record at all.
func shapeWordList(raw json.RawMessage) (Result, error) {
	cands, err := decodeCandidates(raw)
	if err != nil {
		return Result{}, err
	}
	var words []*morph.WordAnalysis
	for _, c := range cands {
		if len(c) == 0 {
			continue
		}
		w, err := morph.NewWordAnalysis(c)
		if err != nil {
			return Result{}, err
		}
		words = append(words, w)
	}
	return Result{Words: words}, nil
}

func shapeWord(raw json.RawMessage) (Result, error) {
	cands, err := decodeCandidates(raw)
	if err != nil {
		return Result{}, err
	}
	chosen := chooseCandidate(cands)
	if chosen == nil {
		return Result{}, nil
	}
	w, err := morph.NewWordAnalysis(chosen)
	if err != nil {
		return Result{}, err
	}
	return Result{Word: w}, nil
}

func shapeNumeral(raw json.RawMessage) (Result, error) {
	cands, err := decodeCandidates(raw)
	if err != nil {
		return Result{}, err
	}
	chosen := chooseCandidate(cands)
	if chosen == nil {
		return Result{}, nil
	}
	return Result{Numeral: morph.NewNumeralExpansion(chosen)}, nil
}

// shapeSpelling handles the one operation that answers with a single
// object instead of a candidate array.
func shapeSpelling(raw json.RawMessage) (Result, error) {
	var c morph.Candidate
	if err := json.Unmarshal(raw, &c); err != nil {
		return Result{}, fmt.Errorf("%w: malformed speller result: %v", api.ErrNetwork, err)
	}
	if len(c) == 0 {
		return Result{}, nil
	}
	report, err := morph.NewSpellingReport(c)
	if err != nil {
		return Result{}, err
	}
	return Result{Spelling: report}, nil
}

func shapeText(raw json.RawMessage) (Result, error) {
	cands, err := decodeCandidates(raw)
	if err != nil {
		return Result{}, err
	}
	if len(cands) == 0 {
		return Result{}, nil
	}
	return Result{Text: cands[0].Str("text")}, nil
}
