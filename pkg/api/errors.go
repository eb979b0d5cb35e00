package api

import (
	"errors"
	"fmt"
)

// Error taxonomy for everything the remote side can do wrong.
// ErrNetwork covers transport and protocol violations, ErrAPI covers
// failures the server itself signals. The status-specific sentinels
// chain to ErrAPI, so errors.Is(err, ErrAPI) matches any of them.
var (
	ErrNetwork = errors.New("network error")
	ErrAPI     = errors.New("api error")

	ErrBadRequest   = fmt.Errorf("%w: bad request", ErrAPI)
	ErrNotFound     = fmt.Errorf("%w: not found", ErrAPI)
	ErrConflict     = fmt.Errorf("%w: conflict", ErrAPI)
	ErrUnauthorized = fmt.Errorf("%w: unauthorized", ErrAPI)
)

// networkErrorf wraps a transport-level failure, keeping the cause's
// type name so callers can log what actually broke.
func networkErrorf(cause error) error {
	return fmt.Errorf("%w: %T: %v", ErrNetwork, cause, cause)
}
