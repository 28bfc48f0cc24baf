package mutant

// Kind identifies the kind of injection point a mutant substitutes.
type Kind int

const (
	KindFileName Kind = iota
	KindCookie
	KindQueryString
	KindHeader
)

// String returns the human-readable kind name used in messages.
func (k Kind) String() string {
	switch k {
	case KindFileName:
		return "url filename"
	case KindCookie:
		return "cookie"
	case KindQueryString:
		return "query string"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Slug returns a compact identifier for machine-readable output.
func (k Kind) Slug() string {
	switch k {
	case KindFileName:
		return "filename"
	case KindCookie:
		return "cookie"
	case KindQueryString:
		return "query"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// targetBound reports whether the injection point lives inside the target
// URI, in which case the URI may only change through the point.
func (k Kind) targetBound() bool {
	return k == KindFileName || k == KindQueryString
}
