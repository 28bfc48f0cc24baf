package mutant

import "strconv"

// Record is the serializable view of a rendered mutant.
type Record struct {
	Kind         string `json:"kind"`
	Index        int    `json:"index"`
	Name         string `json:"name,omitempty"`
	Original     string `json:"original,omitempty"`
	Value        string `json:"value"`
	Encoded      string `json:"encoded"`
	DoubleEncode bool   `json:"double_encode,omitempty"`
	Append       bool   `json:"append,omitempty"`
	Method       string `json:"method"`
	Target       string `json:"target"`
	Cookie       string `json:"cookie,omitempty"`
	Description  string `json:"description"`
	Fingerprint  string `json:"fingerprint"`
	Raw          string `json:"raw,omitempty"`
}

// Record renders m into a Record. withRaw includes the full request dump.
func (m *Mutant) Record(withRaw bool) Record {
	rendered := m.Render()
	rec := Record{
		Kind:         m.point.Kind.Slug(),
		Index:        m.point.Index,
		Name:         m.point.Name,
		Original:     m.point.Original,
		Value:        m.value,
		Encoded:      m.EncodedValue(),
		DoubleEncode: m.doubleEncode,
		Append:       m.appendMode,
		Method:       rendered.Method(),
		Target:       rendered.TargetURI(),
		Cookie:       rendered.Cookie().String(),
		Description:  m.Describe(),
		Fingerprint:  strconv.FormatUint(m.Fingerprint(), 16),
	}
	if withRaw {
		rec.Raw = rendered.Dump()
	}
	return rec
}
