package ports

// Canonicalizer defines the interface for turning loosely-typed dimension
// values into comparable text and comparison tokens.
type Canonicalizer interface {
	// Canonicalize serializes an arbitrary JSON-shaped value (string,
	// sequence, nested mapping) into a canonical lowercase text form.
	// The same logical value always serializes identically; absent or
	// empty values serialize to the empty string.
	Canonicalize(v any) string

	// Tokenize extracts the comparison tokens from canonical text.
	Tokenize(text string) []string
}
