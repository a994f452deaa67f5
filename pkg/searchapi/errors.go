package searchapi

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrTransport marks failures to obtain a response: network errors,
	// non-2xx statuses, timeouts and cancellations.
	ErrTransport = errors.New("searchapi: transport error")

	// ErrDecode marks responses whose body is not the expected JSON.
	ErrDecode = errors.New("searchapi: malformed response")
)

// StatusError is returned (marked with ErrTransport) when the API answers
// with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
}

func transportError(err error, endpoint string) error {
	return errors.Mark(errors.Wrapf(err, "requesting %s", endpoint), ErrTransport)
}

func decodeError(err error, endpoint string) error {
	return errors.Mark(errors.Wrapf(err, "decoding %s response", endpoint), ErrDecode)
}

// IsTransport reports whether err is a transport-class failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsDecode reports whether err is a malformed-response failure.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsCanceled reports whether err was caused by the request context being
// cancelled, which happens when a newer request supersedes this one.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
