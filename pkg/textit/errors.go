package textit

import "errors"

// Local validation errors. All of them are raised synchronously,
// before any command reaches the transport.
var (
	ErrTextTooLong    = errors.New("text too long")
	ErrTooManyWords   = errors.New("too many words")
	ErrNegativeNumber = errors.New("negative number")
	ErrEmptyBatch     = errors.New("empty request list for batch processing")
)
