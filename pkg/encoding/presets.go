package encoding

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Preset names.
const (
	Plain     = "plain"
	URL       = "url"
	URLPath   = "url-path"
	DoubleURL = "double-url"
)

// ErrUnknownEncoder is returned for a preset name that does not exist.
var ErrUnknownEncoder = errors.New("encoding: unknown encoder")

type identity struct{}

func (identity) Encode(s string) string          { return s }
func (identity) Decode(s string) (string, error) { return s, nil }

var presets = map[string]Transform{
	Plain:     identity{},
	URL:       Percent{},
	URLPath:   Percent{Safe: "/"},
	DoubleURL: Percent{Passes: 2},
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the named preset. Percent presets additionally keep the
// bytes in safe literal. Names are matched case-insensitively.
func Resolve(name, safe string) (Transform, error) {
	t, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoder, name)
	}
	if p, ok := t.(Percent); ok && safe != "" {
		p.Safe += safe
		return p, nil
	}
	return t, nil
}

// MustResolve is Resolve for names known at compile time.
func MustResolve(name, safe string) Transform {
	t, err := Resolve(name, safe)
	if err != nil {
		panic(err)
	}
	return t
}

// Sequence encodes with each transform in order and decodes in reverse.
type Sequence []Transform

func (s Sequence) Encode(v string) string {
	for _, t := range s {
		v = t.Encode(v)
	}
	return v
}

func (s Sequence) Decode(v string) (string, error) {
	for i := len(s) - 1; i >= 0; i-- {
		var err error
		if v, err = s[i].Decode(v); err != nil {
			return "", fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return v, nil
}

// Compose resolves each name and chains the presets in order.
func Compose(names ...string) (Sequence, error) {
	seq := make(Sequence, 0, len(names))
	for _, name := range names {
		t, err := Resolve(name, "")
		if err != nil {
			return nil, err
		}
		seq = append(seq, t)
	}
	return seq, nil
}
