// Package encoding holds the percent-encoding applied to substituted URL
// values and the named presets the CLI offers for pre-encoding payloads.
package encoding

import (
	"fmt"
	"net/url"
	"strings"
)

// Transform is a reversible string encoding.
type Transform interface {
	Encode(s string) string
	Decode(s string) (string, error)
}

// Percent applies QuotePlus Passes times, keeping the bytes in Safe literal.
// A zero Passes means one pass.
type Percent struct {
	Safe   string
	Passes int
}

func (p Percent) rounds() int {
	if p.Passes < 1 {
		return 1
	}
	return p.Passes
}

func (p Percent) Encode(s string) string {
	for i := 0; i < p.rounds(); i++ {
		s = QuotePlus(s, p.Safe)
	}
	return s
}

func (p Percent) Decode(s string) (string, error) {
	for i := 0; i < p.rounds(); i++ {
		var err error
		if s, err = url.QueryUnescape(s); err != nil {
			return "", fmt.Errorf("pass %d: %w", i+1, err)
		}
	}
	return s, nil
}

// QuotePlus percent-encodes s for use in a URL component.
//
// Letters, digits and "-_." are never encoded, space becomes '+', and every
// other byte, '~' included, becomes an upper-case %XX escape unless it
// appears in safe. Space and '%' are always encoded.
func QuotePlus(s, safe string) string {
	encoded := url.QueryEscape(s)
	if !strings.Contains(safe, "~") {
		encoded = strings.ReplaceAll(encoded, "~", "%7E")
	}
	// Every '%' in the output starts an escape triple, so replacing whole
	// triples cannot split an unrelated escape.
	for i := 0; i < len(safe); i++ {
		c := safe[i]
		if c == ' ' || c == '%' || c == '~' {
			continue
		}
		encoded = strings.ReplaceAll(encoded, fmt.Sprintf("%%%02X", c), string(c))
	}
	return encoded
}
