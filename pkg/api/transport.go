/*
Package api is the transport seam between the client and the TextIT
endpoint. It owns the HTTP round-trip, a client-side rate limiter and
the classification of raw responses into either a JSON body or an
error from the taxonomy in errors.go.

The core protocol logic never touches net/http directly; it submits an
encoded payload through the Transport interface and receives back the
content type, status code and body. Everything connection-shaped
(pooling, TLS, timeouts) stays behind that seam.
*/
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/prostmich/textit-go/internal/logger"
)

const (
	// DefaultURL is the production data endpoint.
	DefaultURL = "https://textit.ego-ai.tech/api/1.0/data"
	// HelpURL is the endpoint-discovery reference carried in every
	// request envelope.
	HelpURL = "https://textit.ego-ai.tech/api/1.0/help"

	defaultTimeout = 30 * time.Second
)

// Response is the raw outcome of one wire call, before classification.
type Response struct {
	ContentType string
	StatusCode  int
	Body        []byte
}

// Transport performs one wire call. Implementations must wrap any
// connection-level failure in ErrNetwork and never interpret the
// response body themselves.
type Transport interface {
	Submit(ctx context.Context, payload []byte) (*Response, error)
}

// HTTPTransport is the stock Transport over net/http with an optional
// client-side rate limiter.
type HTTPTransport struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	log     *log.Logger
}

// HTTPOptions tunes the stock transport. Zero values fall back to
// production defaults.
type HTTPOptions struct {
	URL     string
	Timeout time.Duration
	// RequestsPerSecond enables rate limiting when positive.
	RequestsPerSecond float64
	Burst             int
}

// NewHTTPTransport builds the stock transport.
func NewHTTPTransport(opts HTTPOptions) *HTTPTransport {
	url := opts.URL
	if url == "" {
		url = DefaultURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return &HTTPTransport{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
		log:     logger.New("transport"),
	}
}

// Submit posts the payload and returns the raw response. Connection
// failures come back as ErrNetwork.
func (t *HTTPTransport) Submit(ctx context.Context, payload []byte) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, networkErrorf(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return nil, networkErrorf(err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	t.log.Debug("submit", "id", reqID, "bytes", len(payload))

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, networkErrorf(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkErrorf(err)
	}

	t.log.Debug("response", "id", reqID, "status", resp.StatusCode, "bytes", len(body))

	return &Response{
		ContentType: mediaType(resp.Header.Get("Content-Type")),
		StatusCode:  resp.StatusCode,
		Body:        body,
	}, nil
}

// mediaType strips parameters like "; charset=utf-8".
func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mt)
}
