package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// The endpoint serves JSON under the page content type. Anything else
// means we are not talking to the API at all.
const pageContentType = "text/html"

// Classify checks a raw response and either returns its decoded JSON
// body unchanged or one of the taxonomy errors.
//
// A server-signaled "error" field takes precedence over the HTTP
// status code; the server sometimes wraps a single error object in a
// one-element array, so classification peeks at the first element of
// array bodies. Malformed bodies decode to an empty object so that
// error paths with broken payloads still map to a status-keyed error.
func Classify(resp *Response) (json.RawMessage, error) {
	if resp.ContentType != pageContentType {
		return nil, fmt.Errorf("%w: unexpected content type %q: %q",
			ErrNetwork, resp.ContentType, resp.Body)
	}

	body := resp.Body
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		decoded = map[string]any{}
		body = []byte("{}")
	}

	head := decoded
	if list, ok := decoded.([]any); ok && len(list) > 0 {
		head = list[0]
	}
	if obj, ok := head.(map[string]any); ok {
		if e, ok := obj["error"].(map[string]any); ok && len(e) > 0 {
			return nil, fmt.Errorf("%w: %v [%v]", ErrAPI, e["message"], e["status"])
		}
	}

	switch code := resp.StatusCode; {
	case code >= http.StatusOK && code <= http.StatusIMUsed:
		return json.RawMessage(body), nil
	case code == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: bad response from API server: %s", ErrBadRequest, resp.Body)
	case code == http.StatusNotFound:
		return nil, fmt.Errorf("%w: target server not found: %s", ErrNotFound, resp.Body)
	case code == http.StatusConflict:
		return nil, fmt.Errorf("%w: conflict while getting response: %s", ErrConflict, resp.Body)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, fmt.Errorf("%w: the server did not accept the request: %s", ErrUnauthorized, resp.Body)
	case code >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: server error: %s", ErrAPI, resp.Body)
	}
	return nil, fmt.Errorf("%w: %s [%d]", ErrAPI, resp.Body, resp.StatusCode)
}
