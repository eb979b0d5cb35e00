package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(status int, body string) *Response {
	return &Response{ContentType: "text/html", StatusCode: status, Body: []byte(body)}
}

func TestClassifyRejectsWrongContentType(t *testing.T) {
	_, err := Classify(&Response{ContentType: "application/json", StatusCode: 200, Body: []byte(`[]`)})
	require.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrAPI, "a protocol violation is not a domain error")
}

// The error field wins even when the HTTP status says success.
func TestClassifyErrorFieldPrecedence(t *testing.T) {
	_, err := Classify(page(200, `{"error":{"message":"bad","status":"400"}}`))
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "bad")
}

// The server sometimes wraps a single error object in an array.
func TestClassifyArrayWrappedError(t *testing.T) {
	_, err := Classify(page(200, `[{"error":{"message":"wrapped","status":"500"}}]`))
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "wrapped")
}

func TestClassifySuccessPassesBodyThrough(t *testing.T) {
	body := `[[{"word":"дом"}],[{"number":"5"}]]`
	raw, err := Classify(page(200, body))
	require.NoError(t, err)
	assert.JSONEq(t, body, string(raw))
}

func TestClassifyStatusMapping(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", 400, ErrBadRequest},
		{"not found", 404, ErrNotFound},
		{"conflict", 409, ErrConflict},
		{"unauthorized", 401, ErrUnauthorized},
		{"forbidden", 403, ErrUnauthorized},
		{"server error", 500, ErrAPI},
		{"bad gateway", 502, ErrAPI},
		{"unmatched status", 302, ErrAPI},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(page(tc.status, `{}`))
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrAPI, "every status error chains to ErrAPI")
		})
	}
}

func TestClassifySuccessRange(t *testing.T) {
	for _, status := range []int{200, 201, 226} {
		raw, err := Classify(page(status, `[]`))
		require.NoError(t, err, "status %d", status)
		assert.Equal(t, `[]`, string(raw))
	}
}

// Broken bodies on error paths still map to a status-keyed error
// instead of a decode failure.
func TestClassifyToleratesMalformedBody(t *testing.T) {
	_, err := Classify(page(500, `<html>crash`))
	assert.ErrorIs(t, err, ErrAPI)

	_, err = Classify(page(400, ``))
	assert.ErrorIs(t, err, ErrBadRequest)
}

// A malformed body with a success status degrades to an empty object.
func TestClassifyMalformedSuccessBody(t *testing.T) {
	raw, err := Classify(page(200, `not json`))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}

func TestClassifyFalsyErrorFieldIgnored(t *testing.T) {
	raw, err := Classify(page(200, `{"error":{}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{}}`, string(raw))
}
