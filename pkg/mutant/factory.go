package mutant

import (
	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/httpreq"
)

// Factory enumerates the injection points of one Kind and builds mutants.
//
// Create never fails: a disabled kind, a nil config or a request lacking
// the capability the kind needs all yield an empty result. indexes selects
// points by Point.Index; an empty filter selects every point. With
// appendMode set, each payload is appended to the original value instead of
// replacing it.
type Factory interface {
	Kind() Kind
	Create(req httpreq.Capabilities, payloads []string, indexes []int, appendMode bool, cfg *config.FuzzerConfig) []*Mutant
}

// selected reports whether idx passes the index filter.
func selected(indexes []int, idx int) bool {
	if len(indexes) == 0 {
		return true
	}
	for _, i := range indexes {
		if i == idx {
			return true
		}
	}
	return false
}

func substitute(original, payload string, appendMode bool) string {
	if appendMode {
		return original + payload
	}
	return payload
}

// newMutant builds the mutant for one (point, payload) pair.
func newMutant(base *httpreq.Request, point Point, payload string, appendMode bool) *Mutant {
	m := New(base, point, substitute(point.Original, payload, appendMode))
	m.appendMode = appendMode
	return m
}

// mergeSafe returns base plus every character of extra not already in it.
func mergeSafe(base, extra string) string {
	out := base
	for i := 0; i < len(extra); i++ {
		found := false
		for j := 0; j < len(out); j++ {
			if out[j] == extra[i] {
				found = true
				break
			}
		}
		if !found {
			out += string(extra[i])
		}
	}
	return out
}
