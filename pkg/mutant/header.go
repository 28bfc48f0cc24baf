package mutant

import (
	"strings"

	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/httpreq"
)

// HeaderFactory mutates one header field value at a time. Point.Index is
// the field's position in the header; Occurrence tells repeated names
// apart. Header values are not encoded.
type HeaderFactory struct{}

func (HeaderFactory) Kind() Kind { return KindHeader }

func (HeaderFactory) Create(req httpreq.Capabilities, payloads []string, indexes []int, appendMode bool, cfg *config.FuzzerConfig) []*Mutant {
	if cfg == nil || !cfg.FuzzHeaders {
		return nil
	}

	base := req.Copy()
	seen := make(map[string]int)
	var out []*Mutant
	for idx, f := range base.Header().Fields() {
		key := strings.ToLower(f.Name)
		occurrence := seen[key]
		seen[key]++
		if !selected(indexes, idx) || !cfg.HeaderFuzzable(f.Name) {
			continue
		}
		point := Point{Kind: KindHeader, Index: idx, Name: f.Name, Original: f.Value, Occurrence: occurrence}
		for _, payload := range payloads {
			out = append(out, newMutant(base, point, payload, appendMode))
		}
	}
	return out
}
