package morph

// WordAnalysis is one morphological reading of a single word: the word
// text, its decomposition into morphemes, the lemma and a sparse set of
// grammatical attributes. Empty fields mean the server did not report
// that attribute.
type WordAnalysis struct {
	Word string

	Prefix   string
	Root     string
	Interfix string
	Suffix   string
	Ending   string
	Postfix  string

	Initial string
	Lemma   string

	Part    Part
	Case    Case
	Form    Form
	Gender  Gender
	Kind    Kind
	Animate Animate
	Number  Number
	Person  Person
	Tense   Tense
	Type    WordType
}

// NewWordAnalysis projects a raw candidate into a WordAnalysis.
// Unknown keys are ignored; a recognized enum slot with an
// unrecognized wire value is an error.
func NewWordAnalysis(c Candidate) (*WordAnalysis, error) {
	w := &WordAnalysis{
		Word:     c.Str("word"),
		Prefix:   c.Str("prefix"),
		Root:     c.Str("base"),
		Interfix: c.Str("interfix"),
		Suffix:   c.Str("suffix"),
		Ending:   c.Str("ending"),
		Postfix:  c.Str("postfix"),
		Initial:  c.Str("initial"),
		Lemma:    c.Str("lemma"),
	}

	var err error
	if s := c.Str("part"); s != "" {
		if w.Part, err = ParsePart(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("case"); s != "" {
		if w.Case, err = ParseCase(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("form"); s != "" {
		if w.Form, err = ParseForm(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("gender"); s != "" {
		if w.Gender, err = ParseGender(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("kind"); s != "" {
		if w.Kind, err = ParseKind(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("animate"); s != "" {
		if w.Animate, err = ParseAnimate(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("number"); s != "" {
		if w.Number, err = ParseNumber(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("person"); s != "" {
		if w.Person, err = ParsePerson(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("tense"); s != "" {
		if w.Tense, err = ParseTense(s); err != nil {
			return nil, err
		}
	}
	if s := c.Str("type"); s != "" {
		if w.Type, err = ParseWordType(s); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Merge fills empty fields of w from info, keeping everything w
// already carries. Used when an inflected form is combined with a full
// word-info lookup.
func (w *WordAnalysis) Merge(info *WordAnalysis) {
	if info == nil {
		return
	}
	mergeStr(&w.Word, info.Word)
	mergeStr(&w.Prefix, info.Prefix)
	mergeStr(&w.Root, info.Root)
	mergeStr(&w.Interfix, info.Interfix)
	mergeStr(&w.Suffix, info.Suffix)
	mergeStr(&w.Ending, info.Ending)
	mergeStr(&w.Postfix, info.Postfix)
	mergeStr(&w.Initial, info.Initial)
	mergeStr(&w.Lemma, info.Lemma)
	mergeStr((*string)(&w.Part), string(info.Part))
	mergeStr((*string)(&w.Case), string(info.Case))
	mergeStr((*string)(&w.Form), string(info.Form))
	mergeStr((*string)(&w.Gender), string(info.Gender))
	mergeStr((*string)(&w.Kind), string(info.Kind))
	mergeStr((*string)(&w.Animate), string(info.Animate))
	mergeStr((*string)(&w.Number), string(info.Number))
	mergeStr((*string)(&w.Person), string(info.Person))
	mergeStr((*string)(&w.Tense), string(info.Tense))
	mergeStr((*string)(&w.Type), string(info.Type))
}

func mergeStr(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}
