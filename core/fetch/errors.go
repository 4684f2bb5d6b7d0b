package fetch

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// Error is a classified fetch failure. It carries enough context to
// build a failure record: the kind, the final status code, and how many
// attempts were spent.
type Error struct {
	Kind       core.ErrKind
	URL        string
	StatusCode int
	Attempts   int
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("fetch %s: %s (status %d after %d attempts)",
			e.URL, e.Kind, e.StatusCode, e.Attempts)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrKind implements core.Kinder.
func (e *Error) ErrKind() core.ErrKind {
	return e.Kind
}

// Retryable reports whether another attempt could plausibly succeed.
// Server errors and transient network failures qualify; client errors do
// not, with 429 as the one exception.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case core.KindTimeout, core.KindHTTPServer:
		return true
	case core.KindHTTPClient:
		return e.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}

// classify turns a failed attempt into a typed Error. Status codes take
// precedence; DNS resolution failures count as unresolvable input rather
// than a transient network problem.
func classify(urlStr string, status, attempts int, err error) *Error {
	e := &Error{URL: urlStr, StatusCode: status, Attempts: attempts, Err: err}
	switch {
	case status >= 500:
		e.Kind = core.KindHTTPServer
	case status >= 300:
		e.Kind = core.KindHTTPClient
	case isDNSFailure(err):
		e.Kind = core.KindInvalidURL
	default:
		e.Kind = core.KindTimeout
	}
	return e
}

func isDNSFailure(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
