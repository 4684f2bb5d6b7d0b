package core

import "errors"

// ErrKind classifies a failure for reporting on a CompanyRecord.
// The values are stable strings so they stay grep-able in JSON and
// CSV exports.
type ErrKind string

// Failure kinds recorded on CompanyRecord.ErrorKind.
const (
	KindInvalidURL ErrKind = "invalid_url"
	KindTimeout    ErrKind = "network_timeout"
	KindHTTPClient ErrKind = "http_client_error"
	KindHTTPServer ErrKind = "http_server_error"
	KindParse      ErrKind = "parse_error"
)

// Kinder is implemented by errors that carry an ErrKind.
type Kinder interface {
	ErrKind() ErrKind
}

// KindOf extracts the ErrKind from err, unwrapping as needed.
// Returns the empty kind for nil or unclassified errors.
func KindOf(err error) ErrKind {
	if err == nil {
		return ""
	}
	var k Kinder
	if errors.As(err, &k) {
		return k.ErrKind()
	}
	return ""
}
