package alignment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/acoyfellow/doclint/internal/core/domain"
	"github.com/acoyfellow/doclint/internal/ports"
)

// Recommendation text returned with the result. The review variant is
// followed by the mismatched dimension names in fixed order.
const (
	AlignedRecommendation      = "Documentation is aligned with the intended behavior."
	ReviewRecommendationPrefix = "Review mismatched dimensions: "

	extractionKey = "extraction"
)

// Config holds configuration for the alignment engine.
type Config struct {
	// Threshold is the similarity bar a dimension must strictly exceed
	// to count as aligned. A similarity of exactly Threshold is a mismatch.
	Threshold float64
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Threshold: 0.5,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	return nil
}

// Engine implements the per-dimension alignment comparison. It holds no
// state across calls and is safe for concurrent use.
type Engine struct {
	config Config
	logger ports.Logger
	canon  ports.Canonicalizer
}

// NewEngine creates a new alignment engine.
func NewEngine(config Config, logger ports.Logger, canon ports.Canonicalizer) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		config: config,
		logger: logger,
		canon:  canon,
	}, nil
}

// Compare classifies each of the six fixed dimensions and aggregates the
// outcome. Extraction values come from the record's "extraction"
// sub-object; intended values come from the record directly. Missing keys,
// nulls and values that canonicalize to the empty string all count as
// absent. Both sides absent is vacuous agreement; one side absent is a
// one-sided mismatch; both present compare by lexical Jaccard similarity.
// Compare never fails: malformed shapes degrade to absence.
func (e *Engine) Compare(ctx context.Context, extracted, intended domain.Record) domain.AlignmentResult {
	extraction := extractionSection(extracted)

	aligned := 0
	mismatches := make([]domain.Mismatch, 0, len(domain.Dimensions))

	for _, dim := range domain.Dimensions {
		extVal := extraction[string(dim)]
		intVal := intended[string(dim)]

		extText := e.canon.Canonicalize(extVal)
		intText := e.canon.Canonicalize(intVal)

		switch {
		case extText == "" && intText == "":
			// Both sides silent on this dimension is consistency, not a gap.
			aligned++

		case extText == "":
			mismatches = append(mismatches, domain.Mismatch{
				Dimension: dim,
				Issue:     domain.IssueMissingInExtraction,
				Extracted: nil,
				Intended:  intVal,
			})

		case intText == "":
			mismatches = append(mismatches, domain.Mismatch{
				Dimension: dim,
				Issue:     domain.IssueMissingInIntended,
				Extracted: extVal,
				Intended:  nil,
			})

		default:
			similarity := e.jaccard(extText, intText)
			e.logger.Debug("Computed dimension similarity",
				"dimension", dim,
				"similarity", similarity,
			)
			if similarity > e.config.Threshold {
				aligned++
				continue
			}
			rounded := math.Round(similarity*100) / 100
			mismatches = append(mismatches, domain.Mismatch{
				Dimension:  dim,
				Issue:      domain.IssueMismatch,
				Similarity: &rounded,
				Extracted:  extVal,
				Intended:   intVal,
			})
		}
	}

	total := len(domain.Dimensions)
	result := domain.AlignmentResult{
		AlignmentScore:    fmt.Sprintf("%.2f", float64(aligned)/float64(total)),
		AlignedDimensions: aligned,
		TotalDimensions:   total,
		Mismatches:        mismatches,
		Recommendation:    recommendation(mismatches),
	}

	e.logger.Debug("Computed alignment",
		"alignment_score", result.AlignmentScore,
		"aligned_dimensions", result.AlignedDimensions,
		"mismatches", len(result.Mismatches),
	)

	return result
}

// jaccard computes |intersection| / |union| over the token sets of the two
// canonical texts. An empty union yields 0. Symmetric in its arguments.
func (e *Engine) jaccard(a, b string) float64 {
	setA := tokenSet(e.canon.Tokenize(a))
	setB := tokenSet(e.canon.Tokenize(b))

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// extractionSection pulls the nested extraction sub-object out of an
// extraction record. A record without one contributes no values, so every
// dimension reads as absent.
func extractionSection(rec domain.Record) map[string]any {
	if rec == nil {
		return nil
	}
	if sub, ok := rec[extractionKey].(map[string]any); ok {
		return sub
	}
	return nil
}

func recommendation(mismatches []domain.Mismatch) string {
	if len(mismatches) == 0 {
		return AlignedRecommendation
	}
	names := make([]string, 0, len(mismatches))
	for _, m := range mismatches {
		names = append(names, string(m.Dimension))
	}
	return ReviewRecommendationPrefix + strings.Join(names, ", ")
}
