package morph

// NumeralType selects how a number is spelled out.
type NumeralType string

const (
	NumeralCount NumeralType = "count"
	NumeralOrder NumeralType = "order"
	NumeralUnion NumeralType = "union"
)

// NumeralFormat selects the output format. Wire names are the remote
// API's own casing, not lowercase labels.
type NumeralFormat string

const (
	FormatNumber       NumeralFormat = "Number"
	FormatNumberString NumeralFormat = "Number-string"
	FormatString       NumeralFormat = "string"
)

// NumeralExpansion is the textual form of a number.
type NumeralExpansion struct {
	Number string
	Text   string
}

// NewNumeralExpansion projects a raw candidate into a NumeralExpansion.
func NewNumeralExpansion(c Candidate) *NumeralExpansion {
	return &NumeralExpansion{
		Number: c.Str("number"),
		Text:   c.Str("text"),
	}
}

// FullText is the numeric literal and its expansion, space separated.
func (n *NumeralExpansion) FullText() string {
	return n.Number + " " + n.Text
}
