package mutant

import "strings"

type queryParam struct {
	name     string
	value    string
	hasValue bool
}

// parseQuery splits a raw query into ordered parameters without decoding,
// so re-encoding untouched parameters reproduces them byte for byte.
func parseQuery(raw string) []queryParam {
	var params []queryParam
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		params = append(params, queryParam{name: name, value: value, hasValue: ok})
	}
	return params
}

func encodeQuery(params []queryParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.hasValue {
			parts[i] = p.name + "=" + p.value
		} else {
			parts[i] = p.name
		}
	}
	return strings.Join(parts, "&")
}
