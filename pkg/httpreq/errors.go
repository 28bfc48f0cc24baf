package httpreq

import (
	"errors"
	"fmt"
)

// Sentinel errors for request parsing failure modes.
// Callers should use errors.Is() to check for these and errors.As() with
// *ParseError to recover the offending literal.
var (
	// ErrMalformedRequestLine indicates the request line is missing or has
	// fewer than three space-separated tokens.
	ErrMalformedRequestLine = errors.New("httpreq: malformed request line")

	// ErrInvalidVersion indicates the version token is not HTTP/<supported>.
	ErrInvalidVersion = errors.New("httpreq: invalid HTTP version")

	// ErrInvalidVersionToken indicates the version token is not of the form A/B.
	ErrInvalidVersionToken = fmt.Errorf("%w: invalid version token", ErrInvalidVersion)

	// ErrInvalidHTTPToken indicates the protocol part of the version is not HTTP.
	ErrInvalidHTTPToken = fmt.Errorf("%w: invalid HTTP token in the version specification", ErrInvalidVersion)

	// ErrUnsupportedVersion indicates a well-formed but unsupported version number.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported version", ErrInvalidVersion)

	// ErrInvalidURI indicates the resolved URI lacks a supported scheme or an authority.
	ErrInvalidURI = errors.New("httpreq: invalid URI")

	// ErrInvalidHeaderLine indicates a header line without a ':' separator.
	ErrInvalidHeaderLine = errors.New("httpreq: invalid header line")
)

// ParseError carries the offending literal alongside the failure kind.
type ParseError struct {
	Err   error  // one of the sentinels above
	Value string // offending literal (request line, version, URI or header line)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(err error, value string) error {
	return &ParseError{Err: err, Value: value}
}
