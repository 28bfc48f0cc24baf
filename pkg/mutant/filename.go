package mutant

import (
	"encoding/hex"
	"strings"

	"github.com/reqforge/reqforge/pkg/config"
	"github.com/reqforge/reqforge/pkg/httpreq"
)

// FileNameFactory mutates chunks of the last URL path segment.
//
// The filename is tokenized into alphanumeric and separator chunks:
//
//	foo.bar.html
//	0  12  34
//
// Only alphanumeric chunks are injection points; separators stay in the
// prefix and suffix. Chunks are found on the decoded name, so an escape such
// as %20 is a single separator, while the prefix and suffix keep the exact
// escaped bytes of the base URI. For every (chunk, payload) a plainly encoded mutant is
// emitted, followed by a double-encoded one that keeps the configured
// double-encode safe characters literal. The second is dropped when both
// render to the same target.
type FileNameFactory struct{}

func (FileNameFactory) Kind() Kind { return KindFileName }

func (FileNameFactory) Create(req httpreq.Capabilities, payloads []string, indexes []int, appendMode bool, cfg *config.FuzzerConfig) []*Mutant {
	if cfg == nil || !cfg.FuzzURLFilenames || !req.HasQueryString() {
		return nil
	}

	base := req.Copy()
	chunks, raw := segmentChunks(base.FileName())
	doubleSafe := mergeSafe(cfg.SafeEncodeChars, cfg.DoubleEncodeSafeChars)

	var out []*Mutant
	for idx, chunk := range chunks {
		if !selected(indexes, idx) || !Fuzzable(chunk) {
			continue
		}
		point := Point{
			Kind:     KindFileName,
			Index:    idx,
			Original: chunk,
			Prefix:   join(raw[:idx]),
			Suffix:   join(raw[idx+1:]),
		}
		for _, payload := range payloads {
			m := newMutant(base, point, payload, appendMode)
			m.SetSafeChars(cfg.SafeEncodeChars)
			m.SetDoubleEncode(false)
			out = append(out, m)

			m2 := m.Copy()
			m2.SetSafeChars(doubleSafe)
			m2.SetDoubleEncode(true)
			if m2.TargetURI() != m.TargetURI() {
				out = append(out, m2)
			}
		}
	}
	return out
}

// segmentChunks tokenizes the decoded form of an escaped path segment. It
// returns the decoded chunks and, index for index, the escaped bytes each
// chunk spans in the segment. An escape triple is never split.
func segmentChunks(escaped string) (chunks, raw []string) {
	var text strings.Builder
	// offsets[i] is where decoded byte i starts in escaped.
	offsets := make([]int, 0, len(escaped)+1)
	for i := 0; i < len(escaped); {
		offsets = append(offsets, i)
		if escaped[i] == '%' && i+2 < len(escaped) {
			if b, err := hex.DecodeString(escaped[i+1 : i+3]); err == nil {
				text.WriteByte(b[0])
				i += 3
				continue
			}
		}
		text.WriteByte(escaped[i])
		i++
	}
	offsets = append(offsets, len(escaped))

	pos := 0
	for _, c := range Tokenize(text.String()) {
		chunks = append(chunks, c)
		raw = append(raw, escaped[offsets[pos]:offsets[pos+len(c)]])
		pos += len(c)
	}
	return chunks, raw
}
