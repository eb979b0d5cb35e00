package morph

import "strconv"

// Candidate is one raw server-proposed answer for a single command, as
// decoded from the wire. Ambiguous queries return several of them.
type Candidate map[string]any

// Str returns the string field for key, "" if absent or not a string.
func (c Candidate) Str(key string) string {
	v, _ := c[key].(string)
	return v
}

// Int returns the numeric field for key. JSON numbers decode as
// float64; the server occasionally stringifies them too.
func (c Candidate) Int(key string) int {
	switch v := c[key].(type) {
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// Probability reports the candidate's probability field when present
// and truthy. A zero, empty or missing probability counts as absent.
func (c Candidate) Probability() (float64, bool) {
	switch v := c["probability"].(type) {
	case float64:
		if v != 0 {
			return v, true
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil && f != 0 {
			return f, true
		}
	}
	return 0, false
}
