package httpreq

import (
	"strings"
)

// HeaderField is a single name/value entry of a Header.
type HeaderField struct {
	Name  string
	Value string
}

// Header is an ordered multimap of HTTP header fields.
//
// Entries live in an append-only arena; index maps the case-folded name to
// the arena positions holding that name. Name lookup is case-insensitive,
// repeated names are kept, and Names() reports first-appearance order.
type Header struct {
	fields []HeaderField
	index  map[string][]int
	order  []string // folded names in first-appearance order
}

// NewHeader returns an empty header multimap.
func NewHeader() *Header {
	return &Header{index: make(map[string][]int)}
}

// foldName lower-cases the ASCII letters of a field name. Other bytes are
// kept, so a non-ASCII name never aliases an ASCII one.
func foldName(name string) string {
	for i := 0; i < len(name); i++ {
		if c := name[i]; 'A' <= c && c <= 'Z' {
			b := []byte(name)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return name
}

// EqualFoldName reports whether two field names are equal under ASCII case
// folding.
func EqualFoldName(a, b string) bool {
	return len(a) == len(b) && foldName(a) == foldName(b)
}

// Add appends a value for name, keeping any existing values.
func (h *Header) Add(name, value string) {
	if h.index == nil {
		h.index = make(map[string][]int)
	}
	key := foldName(name)
	if _, ok := h.index[key]; !ok {
		h.order = append(h.order, key)
	}
	h.index[key] = append(h.index[key], len(h.fields))
	h.fields = append(h.fields, HeaderField{Name: name, Value: value})
}

// Set replaces every value of name with value.
func (h *Header) Set(name, value string) {
	h.Del(name)
	h.Add(name, value)
}

// Get returns the first value for name, or "" when absent.
func (h *Header) Get(name string) string {
	if h == nil {
		return ""
	}
	idx := h.index[foldName(name)]
	if len(idx) == 0 {
		return ""
	}
	return h.fields[idx[0]].Value
}

// Values returns all values for name in insertion order.
func (h *Header) Values(name string) []string {
	if h == nil {
		return nil
	}
	idx := h.index[foldName(name)]
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, h.fields[i].Value)
	}
	return out
}

// Has reports whether at least one value exists for name.
func (h *Header) Has(name string) bool {
	if h == nil {
		return false
	}
	return len(h.index[foldName(name)]) > 0
}

// SetAt overwrites the value of the n-th field carrying name.
// It reports false when no such field exists.
func (h *Header) SetAt(name string, n int, value string) bool {
	idx := h.index[foldName(name)]
	if n < 0 || n >= len(idx) {
		return false
	}
	h.fields[idx[n]].Value = value
	return true
}

// Del removes all values for name and rebuilds the index.
func (h *Header) Del(name string) {
	key := foldName(name)
	if _, ok := h.index[key]; !ok {
		return
	}
	old := h.fields
	h.fields = nil
	h.index = make(map[string][]int)
	h.order = nil
	for _, f := range old {
		if foldName(f.Name) != key {
			h.Add(f.Name, f.Value)
		}
	}
}

// Len returns the number of fields, counting repeated names.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.fields)
}

// Names returns the distinct names in first-appearance order, spelled as
// they were first added.
func (h *Header) Names() []string {
	if h == nil {
		return nil
	}
	names := make([]string, 0, len(h.order))
	for _, key := range h.order {
		names = append(names, h.fields[h.index[key][0]].Name)
	}
	return names
}

// Fields returns a copy of every field in insertion order.
func (h *Header) Fields() []HeaderField {
	if h == nil {
		return nil
	}
	out := make([]HeaderField, len(h.fields))
	copy(out, h.fields)
	return out
}

// Clone returns a deep copy.
func (h *Header) Clone() *Header {
	c := NewHeader()
	if h == nil {
		return c
	}
	c.fields = make([]HeaderField, len(h.fields))
	copy(c.fields, h.fields)
	c.order = make([]string, len(h.order))
	copy(c.order, h.order)
	for k, idx := range h.index {
		c.index[k] = append([]int(nil), idx...)
	}
	return c
}

// String serializes the header grouped by name in first-appearance order,
// one "Name: value" line per value, each terminated by CRLF.
func (h *Header) String() string {
	if h == nil {
		return ""
	}
	var b strings.Builder
	for _, key := range h.order {
		for _, i := range h.index[key] {
			b.WriteString(h.fields[i].Name)
			b.WriteString(": ")
			b.WriteString(h.fields[i].Value)
			b.WriteString("\r\n")
		}
	}
	return b.String()
}
