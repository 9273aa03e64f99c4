package gateway

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNoResponseBody   = errors.New("no response body")
	ErrTransport        = errors.New("transport failure")
	ErrDecode           = errors.New("decode failure")
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrUnauthenticated is an ErrInvalidRequest: no request is sent without a token.
	ErrUnauthenticated = fmt.Errorf("%w: not authenticated", ErrInvalidRequest)
)

const maxErrorBody = 2048

// Error is returned by every Client operation.
type Error struct {
	Op         string // operation name, e.g. "ListPosts"
	Kind       error  // one of the Err* kinds above
	StatusCode int    // HTTP status when a response was received
	Body       string // truncated response body or backend error message
	Err        error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("gateway %s: %v", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Body != "" {
		msg += " body=" + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(op string, kind, cause error) *Error {
	return &Error{Op: op, Kind: kind, Err: cause}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.StatusCode
	}
	return 0
}

// truncate caps b at maxErrorBody bytes without splitting a UTF-8 sequence.
func truncate(b []byte) string {
	if len(b) <= maxErrorBody {
		return string(b)
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(b[cut]) {
		cut--
	}
	return string(b[:cut])
}
