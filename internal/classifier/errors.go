package classifier

import "errors"

var (
	// ErrUnavailable indicates the inference server is unreachable.
	ErrUnavailable = errors.New("classifier server unavailable")

	// ErrTimeout indicates the classification request exceeded the
	// configured timeout.
	ErrTimeout = errors.New("classification request timed out")

	// ErrMalformedOutput indicates the server response could not be
	// parsed into a label/score prediction.
	ErrMalformedOutput = errors.New("malformed classifier output")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("classifier retry attempts exhausted")
)
