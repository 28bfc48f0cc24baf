// Package mutant derives controlled variants of a structured request. Each
// Mutant differs from its base request at exactly one injection point
// (a URL filename chunk, a cookie pair, a query parameter or a header),
// substituted with one payload.
//
// Factories enumerate the points of their Kind and emit one Mutant per
// (point × payload), in point-major, payload-minor order. Mutants own a
// private deep copy of the base request, so rendering or changing one never
// affects the base or its siblings.
package mutant

import (
	"fmt"
	"strconv"

	"github.com/reqforge/reqforge/pkg/encoding"
	"github.com/reqforge/reqforge/pkg/httpreq"
	"github.com/spaolacci/murmur3"
)

// Mutant binds a base request, one injection point and one substituted value.
type Mutant struct {
	base         *httpreq.Request
	point        Point
	value        string
	doubleEncode bool
	safe         string
	appendMode   bool
}

// New creates a mutant over a private copy of base.
func New(base *httpreq.Request, point Point, value string) *Mutant {
	return &Mutant{
		base:  base.Copy(),
		point: point,
		value: value,
	}
}

func (m *Mutant) Kind() Kind   { return m.point.Kind }
func (m *Mutant) Point() Point { return m.point }

// Value returns the substituted value before encoding.
func (m *Mutant) Value() string { return m.value }

// SetValue replaces the substituted value.
func (m *Mutant) SetValue(v string) { m.value = v }

// Append reports whether the value was built by appending the payload to
// the original value.
func (m *Mutant) Append() bool { return m.appendMode }

// DoubleEncode reports whether the value is percent-encoded twice.
func (m *Mutant) DoubleEncode() bool { return m.doubleEncode }

func (m *Mutant) SetDoubleEncode(v bool) { m.doubleEncode = v }

// SafeChars returns the characters left literal by percent-encoding.
func (m *Mutant) SafeChars() string { return m.safe }

func (m *Mutant) SetSafeChars(safe string) { m.safe = safe }

// Method returns the HTTP method of the base request.
func (m *Mutant) Method() string { return m.base.Method() }

// Base returns a copy of the unmodified request.
func (m *Mutant) Base() *httpreq.Request { return m.base.Copy() }

// SetTargetURI replaces the base request's target URI. Kinds whose point
// lives in the URI reject this with ErrImmutableTarget so every rendered
// variant traces back to its point.
func (m *Mutant) SetTargetURI(target string) error {
	if m.point.Kind.targetBound() {
		return fmt.Errorf("%w: %s mutant", ErrImmutableTarget, m.point.Kind)
	}
	u, err := httpreq.CheckURISyntax(target, "")
	if err != nil {
		return err
	}
	return m.base.SetURI(u)
}

// EncodedValue returns the value as it appears in the rendered request.
// Cookie and header values are sent verbatim.
func (m *Mutant) EncodedValue() string {
	switch m.point.Kind {
	case KindCookie, KindHeader:
		return m.value
	}
	preset := encoding.URL
	if m.doubleEncode {
		preset = encoding.DoubleURL
	}
	return encoding.MustResolve(preset, m.safe).Encode(m.value)
}

// Render returns a new request with the point substituted. Every other
// component is identical to the base request.
func (m *Mutant) Render() *httpreq.Request {
	req := m.base.Copy()
	switch m.point.Kind {
	case KindFileName:
		name := m.point.Prefix + m.EncodedValue() + m.point.Suffix
		// The base URI is valid, so replacing one segment keeps it valid.
		_ = req.SetURI(req.WithFileName(name))
	case KindCookie:
		req.Cookie().SetValue(m.point.Index, m.value)
	case KindQueryString:
		u := req.URI()
		params := parseQuery(u.RawQuery)
		if m.point.Index < len(params) {
			params[m.point.Index].value = m.EncodedValue()
			params[m.point.Index].hasValue = true
		}
		u.RawQuery = encodeQuery(params)
		_ = req.SetURI(u)
	case KindHeader:
		req.Header().SetAt(m.point.Name, m.point.Occurrence, m.value)
	}
	return req
}

// TargetURI returns the rendered target URI.
func (m *Mutant) TargetURI() string { return m.Render().TargetURI() }

// PrintValue describes the sent token.
func (m *Mutant) PrintValue() string {
	switch m.point.Kind {
	case KindFileName:
		return fmt.Sprintf("The sent %s is: \"%s\".", m.point.Kind, m.point.Prefix+m.value+m.point.Suffix)
	case KindCookie:
		return fmt.Sprintf("The cookie data that was sent is: \"%s\".", m.Render().Cookie().String())
	case KindQueryString:
		return fmt.Sprintf("The sent %s is: \"%s\".", m.point.Kind, m.Render().URI().RawQuery)
	case KindHeader:
		return fmt.Sprintf("The sent %s is: \"%s\".", m.point.Kind, m.point.Name+": "+m.value)
	default:
		return ""
	}
}

// Describe returns a fixed-format summary of what was modified, on which
// request and with which HTTP method.
func (m *Mutant) Describe() string {
	rendered := m.Render()
	head := fmt.Sprintf("\"%s\", using HTTP method %s.", rendered.TargetURI(), m.Method())
	switch m.point.Kind {
	case KindFileName:
		return fmt.Sprintf("%s The modified parameter was the URL filename, with value: \"%s\".", head, m.value)
	case KindCookie:
		return fmt.Sprintf("%s The modified parameter was the session cookie with value: \"%s\".", head, rendered.Cookie().String())
	case KindQueryString:
		return fmt.Sprintf("%s The modified parameter was \"%s\" in the query string, with value: \"%s\".", head, m.point.Name, m.value)
	case KindHeader:
		return fmt.Sprintf("%s The modified parameter was the \"%s\" header, with value: \"%s\".", head, m.point.Name, m.value)
	default:
		return head
	}
}

// Copy returns an independent mutant with the same point, value and flags.
func (m *Mutant) Copy() *Mutant {
	c := *m
	c.base = m.base.Copy()
	return &c
}

// Fingerprint hashes the fully rendered request. Mutants rendering to the
// same bytes share a fingerprint regardless of kind.
func (m *Mutant) Fingerprint() uint64 {
	return murmur3.Sum64([]byte(m.Render().Dump()))
}

func (m *Mutant) String() string {
	return m.point.Kind.Slug() + "[" + strconv.Itoa(m.point.Index) + "]=" + m.value
}
