// Package httpreq models a validated HTTP request: method, absolute target
// URI, version, ordered header multimap, body and optional cookie.
//
// Requests are built by Parse from raw header text, or by New for a known
// target. Every Request satisfies two invariants: the target URI is absolute
// with a supported scheme, and the version is one of SupportedVersions.
package httpreq

import (
	"net/url"
	"strings"
)

// Kind classifies a request by where its fuzzable parameters live.
type Kind int

const (
	// KindQueryString is a request without a body; parameters live in the URI.
	KindQueryString Kind = iota
	// KindPostData is a request that carries a body container.
	KindPostData
)

func (k Kind) String() string {
	switch k {
	case KindQueryString:
		return "query-string"
	case KindPostData:
		return "post-data"
	default:
		return "unknown"
	}
}

// Capabilities is the view of a request that mutant factories depend on.
type Capabilities interface {
	HasCookie() bool
	HasQueryString() bool
	HasBodyContainer() bool
	Method() string
	TargetURI() string
	Copy() *Request
}

var _ Capabilities = (*Request)(nil)

// Request is a structured HTTP request.
type Request struct {
	method  string
	uri     *url.URL
	version string
	header  *Header
	body    string
	cookie  *Cookie
}

// DefaultVersion is used by New.
const DefaultVersion = "HTTP/1.1"

// New builds a GET-style request for an absolute target URI.
func New(method, target string) (*Request, error) {
	u, err := CheckURISyntax(target, "")
	if err != nil {
		return nil, err
	}
	return &Request{
		method:  method,
		uri:     u,
		version: DefaultVersion,
		header:  NewHeader(),
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixtures.
func MustNew(method, target string) *Request {
	r, err := New(method, target)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Request) Method() string  { return r.method }
func (r *Request) Version() string { return r.version }
func (r *Request) Body() string    { return r.body }

// URI returns a copy of the target URI.
func (r *Request) URI() *url.URL {
	u := *r.uri
	if r.uri.User != nil {
		ui := *r.uri.User
		u.User = &ui
	}
	return &u
}

// TargetURI returns the canonical absolute target URI.
func (r *Request) TargetURI() string { return r.uri.String() }

// Header returns the request's header multimap. Mutating it mutates the
// request; use Copy first to keep the original intact.
func (r *Request) Header() *Header { return r.header }

// Cookie returns the request cookie, nil when none was sent.
func (r *Request) Cookie() *Cookie { return r.cookie }

// SetCookie replaces the cookie.
func (r *Request) SetCookie(c *Cookie) { r.cookie = c }

// SetBody replaces the body.
func (r *Request) SetBody(body string) { r.body = body }

// SetURI replaces the target URI. The URI must be absolute with a
// supported scheme.
func (r *Request) SetURI(u *url.URL) error {
	if u == nil || u.Host == "" || !contains(SupportedSchemes, strings.ToLower(u.Scheme)) {
		s := ""
		if u != nil {
			s = u.String()
		}
		return newParseError(ErrInvalidURI, s)
	}
	c := *u
	r.uri = &c
	return nil
}

// HasCookie reports whether the request carries at least one cookie pair.
func (r *Request) HasCookie() bool { return r.cookie.Len() > 0 }

// Kind classifies the request.
func (r *Request) Kind() Kind {
	if r.body != "" {
		return KindPostData
	}
	return KindQueryString
}

// HasQueryString reports whether the request is a query-string request.
func (r *Request) HasQueryString() bool { return r.Kind() == KindQueryString }

// HasBodyContainer reports whether the request carries a body container.
func (r *Request) HasBodyContainer() bool { return r.Kind() == KindPostData }

// FileName returns the escaped last path segment of the target URI.
func (r *Request) FileName() string {
	p := r.uri.EscapedPath()
	return p[strings.LastIndex(p, "/")+1:]
}

// WithFileName returns a copy of the target URI whose last path segment is
// replaced by the already-escaped name. Every other component is kept.
func (r *Request) WithFileName(escaped string) *url.URL {
	u := r.URI()
	p := u.EscapedPath()
	raw := p[:strings.LastIndex(p, "/")+1] + escaped
	if path, err := url.PathUnescape(raw); err == nil {
		u.Path = path
		u.RawPath = raw
	} else {
		u.Path = raw
		u.RawPath = ""
	}
	return u
}

// Copy returns a deep copy of the request.
func (r *Request) Copy() *Request {
	return &Request{
		method:  r.method,
		uri:     r.URI(),
		version: r.version,
		header:  r.header.Clone(),
		body:    r.body,
		cookie:  r.cookie.Clone(),
	}
}

// Dump renders the request as raw HTTP/1.x text with CRLF line endings.
func (r *Request) Dump() string {
	var b strings.Builder
	b.WriteString(r.method)
	b.WriteByte(' ')
	b.WriteString(r.uri.RequestURI())
	b.WriteByte(' ')
	b.WriteString(r.version)
	b.WriteString("\r\n")
	if !r.header.Has("Host") {
		b.WriteString("Host: ")
		b.WriteString(r.uri.Host)
		b.WriteString("\r\n")
	}
	b.WriteString(r.header.String())
	if r.HasCookie() {
		b.WriteString("Cookie: ")
		b.WriteString(r.cookie.String())
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(r.body)
	return b.String()
}
