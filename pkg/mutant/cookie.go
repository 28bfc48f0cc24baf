package mutant

import (
	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/httpreq"
)

// CookieFactory mutates one cookie pair value at a time. Pairs are addressed
// by position so duplicate names are fuzzed independently; the remaining
// pairs and their order are untouched. Cookie values are not encoded.
type CookieFactory struct{}

func (CookieFactory) Kind() Kind { return KindCookie }

func (CookieFactory) Create(req httpreq.Capabilities, payloads []string, indexes []int, appendMode bool, cfg *config.FuzzerConfig) []*Mutant {
	if cfg == nil || !cfg.FuzzCookies || !req.HasCookie() {
		return nil
	}

	base := req.Copy()
	var out []*Mutant
	for idx, pair := range base.Cookie().Pairs() {
		if !selected(indexes, idx) {
			continue
		}
		point := Point{Kind: KindCookie, Index: idx, Name: pair.Name, Original: pair.Value}
		for _, payload := range payloads {
			out = append(out, newMutant(base, point, payload, appendMode))
		}
	}
	return out
}
