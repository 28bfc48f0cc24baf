package mutant

import (
	"regexp"
	"strings"
)

var (
	chunkRE    = regexp.MustCompile(`[A-Za-z0-9]+`)
	fuzzableRE = regexp.MustCompile(`^[A-Za-z0-9]`)
)

// Tokenize splits s into maximal alphanumeric runs and the runs of other
// characters between them. Joining the chunks reproduces s exactly.
//
//	Tokenize("foo.bar.html") == []string{"foo", ".", "bar", ".", "html"}
func Tokenize(s string) []string {
	var chunks []string
	last := 0
	for _, loc := range chunkRE.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			chunks = append(chunks, s[last:loc[0]])
		}
		chunks = append(chunks, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		chunks = append(chunks, s[last:])
	}
	return chunks
}

// Fuzzable reports whether chunk may be used as an injection point.
// Separator chunks such as "." or "-" are never fuzzed.
func Fuzzable(chunk string) bool {
	return fuzzableRE.MatchString(chunk)
}

func join(chunks []string) string { return strings.Join(chunks, "") }
