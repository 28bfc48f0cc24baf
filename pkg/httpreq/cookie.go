package httpreq

import "strings"

// CookiePair is one name/value entry of a Cookie.
type CookiePair struct {
	Name  string
	Value string
}

// Cookie is an ordered list of cookie pairs. Duplicate names are allowed
// and addressed by position.
type Cookie struct {
	pairs []CookiePair
}

// ParseCookie parses a Cookie header value such as "foo=bar; spam=eggs".
// Empty segments are skipped; a segment without '=' yields an empty value.
func ParseCookie(raw string) *Cookie {
	c := &Cookie{}
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		c.pairs = append(c.pairs, CookiePair{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return c
}

// NewCookie builds a cookie from pairs, copying the slice.
func NewCookie(pairs ...CookiePair) *Cookie {
	return &Cookie{pairs: append([]CookiePair(nil), pairs...)}
}

// Len returns the number of pairs.
func (c *Cookie) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pairs)
}

// Pairs returns a copy of the pairs in order.
func (c *Cookie) Pairs() []CookiePair {
	if c == nil {
		return nil
	}
	return append([]CookiePair(nil), c.pairs...)
}

// Pair returns the pair at position i.
func (c *Cookie) Pair(i int) (CookiePair, bool) {
	if c == nil || i < 0 || i >= len(c.pairs) {
		return CookiePair{}, false
	}
	return c.pairs[i], true
}

// SetValue overwrites the value at position i, leaving the name and every
// other pair untouched.
func (c *Cookie) SetValue(i int, value string) bool {
	if c == nil || i < 0 || i >= len(c.pairs) {
		return false
	}
	c.pairs[i].Value = value
	return true
}

// Get returns the first value stored under name.
func (c *Cookie) Get(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, p := range c.pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Clone returns a deep copy; a nil cookie clones to nil.
func (c *Cookie) Clone() *Cookie {
	if c == nil {
		return nil
	}
	return NewCookie(c.pairs...)
}

// String serializes as "k1=v1; k2=v2;" in pair order.
func (c *Cookie) String() string {
	if c.Len() == 0 {
		return ""
	}
	parts := make([]string, len(c.pairs))
	for i, p := range c.pairs {
		parts[i] = p.Name + "=" + p.Value + ";"
	}
	return strings.Join(parts, " ")
}
