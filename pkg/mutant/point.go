package mutant

// Point describes one substitutable location inside a request.
//
// Index is the position of the point among the candidates of its kind:
// the chunk index for filenames, the pair index for cookies and query
// strings, and the field index for headers. Index filters passed to
// factories select on this value.
type Point struct {
	Kind  Kind
	Index int

	// Name is the cookie, parameter or header name. Empty for filenames.
	Name string

	// Original is the value found at the point before substitution.
	Original string

	// Prefix and Suffix hold the immutable filename chunks surrounding
	// the substituted chunk, escaped exactly as in the base URI.
	Prefix string
	Suffix string

	// Occurrence disambiguates repeated header names: the n-th field
	// carrying Name.
	Occurrence int
}
