package canonical

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/acoyfellow/doclint/internal/ports"
)

// DefaultMinTokenLength drops short tokens from comparison. Tokens under
// four characters are treated as noise, which ignores stopwords without
// needing a stopword list.
const DefaultMinTokenLength = 4

var wordRunPattern = regexp.MustCompile(`\w+`)

// Canonicalizer implements ports.Canonicalizer with an explicit recursive
// serializer over JSON-shaped values and a word-run tokenizer.
type Canonicalizer struct {
	minTokenLength int
}

// New creates a canonicalizer that keeps tokens of at least minTokenLength
// characters. Values below one fall back to DefaultMinTokenLength.
func New(minTokenLength int) ports.Canonicalizer {
	if minTokenLength < 1 {
		minTokenLength = DefaultMinTokenLength
	}
	return &Canonicalizer{minTokenLength: minTokenLength}
}

// Canonicalize serializes v into a canonical lowercase text form. Strings
// serialize as themselves, sequences in order, mappings by sorted key.
// nil, empty strings, empty sequences and empty mappings all serialize to
// the empty string, so absence and emptiness are indistinguishable
// downstream.
func (c *Canonicalizer) Canonicalize(v any) string {
	parts := appendParts(nil, v)
	return strings.ToLower(strings.Join(parts, " "))
}

// Tokenize extracts maximal runs of word characters from text, dropping
// runs shorter than the configured minimum. Duplicates are kept; callers
// collapse them into sets as needed.
func (c *Canonicalizer) Tokenize(text string) []string {
	runs := wordRunPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(runs))
	for _, run := range runs {
		if len(run) >= c.minTokenLength {
			tokens = append(tokens, run)
		}
	}
	return tokens
}

func appendParts(parts []string, v any) []string {
	switch t := v.(type) {
	case nil:
	case string:
		if t != "" {
			parts = append(parts, t)
		}
	case []any:
		for _, elem := range t {
			parts = appendParts(parts, elem)
		}
	case []string:
		for _, elem := range t {
			if elem != "" {
				parts = append(parts, elem)
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, k+":")
			parts = appendParts(parts, t[k])
		}
	case bool:
		parts = append(parts, strconv.FormatBool(t))
	case float64:
		parts = append(parts, strconv.FormatFloat(t, 'f', -1, 64))
	case int:
		parts = append(parts, strconv.Itoa(t))
	default:
		parts = append(parts, fmt.Sprintf("%v", t))
	}
	return parts
}
