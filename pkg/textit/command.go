package textit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prostmich/textit-go/pkg/morph"
)

// Op is one of the fixed operations the TextIT service exposes. The
// value is the wire name serialized into the "func" field.
type Op string

const (
	OpCorrect       Op = "correct"
	OpHint          Op = "hint"
	OpNumeral       Op = "numeral"
	OpSpeller       Op = "speller"
	OpWordInfo      Op = "word"
	OpSetForm       Op = "setform"
	OpCognate       Op = "cognate"
	OpSynonym       Op = "synonym"
	OpTransliterate Op = "lattocyr"
)

// Input limits enforced before any network interaction.
const (
	maxHintLen = 30
	maxTextLen = 10000
)

// Command is one logical operation ready for submission: an operation
// wire name plus stringified parameters. Immutable once built; unset
// optional parameters are simply absent from the map.
type Command struct {
	op     Op
	params map[string]string
}

// MarshalJSON emits the wire command object {"func": <op>, <params>...}.
func (c Command) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(c.params)+1)
	for k, v := range c.params {
		obj[k] = v
	}
	obj["func"] = string(c.op)
	return json.Marshal(obj)
}

// params collects command parameters with the serialization rules the
// service expects: enums emit their wire string, booleans lowercase
// true/false, integers their decimal form. Optional values that are
// unset never reach the map.
type params map[string]string

func (p params) str(key, value string) {
	p[key] = value
}

func (p params) opt(key, value string) {
	if value != "" {
		p[key] = value
	}
}

func (p params) boolean(key string, value bool) {
	p[key] = strconv.FormatBool(value)
}

func (p params) integer(key string, value int) {
	p[key] = strconv.Itoa(value)
}

// payload is the transport-level request envelope: a list holding one
// list of command objects, plus the endpoint-discovery reference. A
// single immediate call and an N-command batch share this shape.
type payload struct {
	Commands [][]Command `json:"commands"`
	Href     string      `json:"href"`
}

func newPayload(helpURL string, cmds []Command) payload {
	return payload{
		Commands: [][]Command{cmds},
		Href:     helpURL,
	}
}

func (p payload) encode() ([]byte, error) {
	return json.Marshal(p)
}

// singleWord rejects multi-token input for operations that accept
// exactly one word.
func singleWord(word string) error {
	if len(strings.Fields(word)) > 1 {
		return fmt.Errorf("%w: API doesn't support phrases of more than one word", ErrTooManyWords)
	}
	return nil
}

// maxLen rejects text above the operation's character limit.
func maxLen(text string, limit int) error {
	if utf8.RuneCountInString(text) > limit {
		return fmt.Errorf("%w: maximum length of text is %d characters", ErrTextTooLong, limit)
	}
	return nil
}

// NumeralOptions tunes how a number is spelled out. Zero values take
// the service defaults: nominative case, count type, string format,
// orders not reduced.
type NumeralOptions struct {
	Case   morph.Case
	Direct morph.NumeralType
	Reduce bool
	Format morph.NumeralFormat
}

// FormSpec names the grammatical features a word should be inflected
// into. Unset fields are not sent and stay unconstrained.
type FormSpec struct {
	Part   morph.Part
	Number morph.Number
	Gender morph.Gender
	Case   morph.Case
	Tense  morph.Tense
	Person morph.Person
	Form   morph.Form
	Kind   morph.Kind
}

func correctCommand(word string) (Command, error) {
	if err := singleWord(word); err != nil {
		return Command{}, err
	}
	p := params{}
	p.str("word", word)
	return Command{op: OpCorrect, params: p}, nil
}

func hintCommand(text string) (Command, error) {
	if err := maxLen(text, maxHintLen); err != nil {
		return Command{}, err
	}
	p := params{}
	p.str("text", text)
	return Command{op: OpHint, params: p}, nil
}

func numeralCommand(number int, word string, opts NumeralOptions) (Command, error) {
	if number < 0 {
		return Command{}, fmt.Errorf("%w: negative numbers aren't allowed", ErrNegativeNumber)
	}
	if err := singleWord(word); err != nil {
		return Command{}, err
	}
	if opts.Case == "" {
		opts.Case = morph.CaseNominative
	}
	if opts.Direct == "" {
		opts.Direct = morph.NumeralCount
	}
	if opts.Format == "" {
		opts.Format = morph.FormatString
	}
	p := params{}
	p.integer("number", number)
	p.str("word", word)
	p.str("case", string(opts.Case))
	p.str("direct", string(opts.Direct))
	p.boolean("reduce", opts.Reduce)
	p.str("format", string(opts.Format))
	return Command{op: OpNumeral, params: p}, nil
}

func spellerCommand(text string) (Command, error) {
	if err := maxLen(text, maxTextLen); err != nil {
		return Command{}, err
	}
	p := params{}
	p.str("text", text)
	return Command{op: OpSpeller, params: p}, nil
}

func wordInfoCommand(word string) (Command, error) {
	if err := singleWord(word); err != nil {
		return Command{}, err
	}
	p := params{}
	p.str("word", word)
	return Command{op: OpWordInfo, params: p}, nil
}

func setFormCommand(word string, form FormSpec) (Command, error) {
	if err := singleWord(word); err != nil {
		return Command{}, err
	}
	p := params{}
	p.str("word", word)
	p.opt("part", string(form.Part))
	p.opt("number", string(form.Number))
	p.opt("gender", string(form.Gender))
	p.opt("case", string(form.Case))
	p.opt("tense", string(form.Tense))
	p.opt("person", string(form.Person))
	p.opt("form", string(form.Form))
	p.opt("kind", string(form.Kind))
	return Command{op: OpSetForm, params: p}, nil
}

func cognateCommand(word string) (Command, error) {
	if err := singleWord(word); err != nil {
		return Command{}, err
	}
	p := params{}
	p.str("word", word)
	return Command{op: OpCognate, params: p}, nil
}

func synonymCommand(word string) (Command, error) {
	if err := singleWord(word); err != nil {
		return Command{}, err
	}
	p := params{}
	p.str("word", word)
	return Command{op: OpSynonym, params: p}, nil
}

func transliterateCommand(text string) (Command, error) {
	if err := maxLen(text, maxTextLen); err != nil {
		return Command{}, err
	}
	p := params{}
	p.str("text", text)
	return Command{op: OpTransliterate, params: p}, nil
}
