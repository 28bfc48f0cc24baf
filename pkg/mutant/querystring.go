package mutant

import (
	"net/url"

	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/httpreq"
)

// QueryStringFactory mutates one query parameter value at a time. Values are
// percent-encoded once with the configured safe characters; every other
// parameter is re-emitted exactly as received.
type QueryStringFactory struct{}

func (QueryStringFactory) Kind() Kind { return KindQueryString }

func (QueryStringFactory) Create(req httpreq.Capabilities, payloads []string, indexes []int, appendMode bool, cfg *config.FuzzerConfig) []*Mutant {
	if cfg == nil || !cfg.FuzzQueryString || !req.HasQueryString() {
		return nil
	}

	base := req.Copy()
	var out []*Mutant
	for idx, p := range parseQuery(base.URI().RawQuery) {
		if !selected(indexes, idx) {
			continue
		}
		original, err := url.QueryUnescape(p.value)
		if err != nil {
			original = p.value
		}
		point := Point{Kind: KindQueryString, Index: idx, Name: p.name, Original: original}
		for _, payload := range payloads {
			m := newMutant(base, point, payload, appendMode)
			m.SetSafeChars(cfg.SafeEncodeChars)
			out = append(out, m)
		}
	}
	return out
}
