package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportSubmit(t *testing.T) {
	var gotBody []byte
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[[{"word":"дом"}]]`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport(HTTPOptions{URL: srv.URL})
	resp, err := transport.Submit(context.Background(), []byte(`{"commands":[[]]}`))
	require.NoError(t, err)

	assert.Equal(t, "text/html", resp.ContentType, "content type parameters are stripped")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `[[{"word":"дом"}]]`, string(resp.Body))
	assert.Equal(t, `{"commands":[[]]}`, string(gotBody))
	assert.NotEmpty(t, gotRequestID, "every submission carries a request id")
}

func TestHTTPTransportConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	transport := NewHTTPTransport(HTTPOptions{URL: url})
	_, err := transport.Submit(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestHTTPTransportRateLimiterHonorsContext(t *testing.T) {
	transport := NewHTTPTransport(HTTPOptions{
		URL:               "http://127.0.0.1:1",
		RequestsPerSecond: 0.001,
		Burst:             1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	// First call consumes the burst token.
	_, _ = transport.Submit(ctx, []byte(`{}`))

	cancel()
	_, err := transport.Submit(ctx, []byte(`{}`))
	assert.ErrorIs(t, err, ErrNetwork)
}
