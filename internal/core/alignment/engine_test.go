package alignment

import (
	"context"
	"fmt"
	"testing"

	"github.com/acoyfellow/doclint/internal/adapters/canonical"
	"github.com/acoyfellow/doclint/internal/adapters/logger"
	"github.com/acoyfellow/doclint/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), logger.NewNoopLogger(), canonical.New(canonical.DefaultMinTokenLength))
	require.NoError(t, err)
	return engine
}

func extractedWith(extraction map[string]any) domain.Record {
	return domain.Record{
		"tool_name":    "example_tool",
		"evaluated_at": "2026-01-01T00:00:00Z",
		"extraction":   extraction,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{name: "Default", config: DefaultConfig(), expectError: false},
		{name: "Zero threshold", config: Config{Threshold: 0}, expectError: false},
		{name: "Threshold of one", config: Config{Threshold: 1}, expectError: false},
		{name: "Negative threshold", config: Config{Threshold: -0.1}, expectError: true},
		{name: "Threshold above one", config: Config{Threshold: 1.1}, expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEngine(tc.config, logger.NewNoopLogger(), canonical.New(0))
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompareBothEmpty(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Compare(context.Background(), domain.Record{}, domain.Record{})

	assert.Equal(t, 6, result.AlignedDimensions)
	assert.Equal(t, 6, result.TotalDimensions)
	assert.Empty(t, result.Mismatches)
	assert.Equal(t, "1.00", result.AlignmentScore)
	assert.Equal(t, AlignedRecommendation, result.Recommendation)
}

func TestCompareNilRecords(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Compare(context.Background(), nil, nil)

	assert.Equal(t, 6, result.AlignedDimensions)
	assert.Empty(t, result.Mismatches)
	assert.Equal(t, "1.00", result.AlignmentScore)
}

func TestCompareOneSidedAbsence(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("Missing in intended", func(t *testing.T) {
		extracted := extractedWith(map[string]any{
			"capability": "resizes uploaded images",
		})
		result := engine.Compare(context.Background(), extracted, domain.Record{})

		assert.Equal(t, 5, result.AlignedDimensions)
		require.Len(t, result.Mismatches, 1)
		m := result.Mismatches[0]
		assert.Equal(t, domain.DimCapability, m.Dimension)
		assert.Equal(t, domain.IssueMissingInIntended, m.Issue)
		assert.Nil(t, m.Similarity)
		assert.Equal(t, "resizes uploaded images", m.Extracted)
		assert.Nil(t, m.Intended)
		assert.Equal(t, "0.83", result.AlignmentScore)
	})

	t.Run("Missing in extraction", func(t *testing.T) {
		intended := domain.Record{
			"outputs": []any{"a resized image"},
		}
		result := engine.Compare(context.Background(), extractedWith(nil), intended)

		assert.Equal(t, 5, result.AlignedDimensions)
		require.Len(t, result.Mismatches, 1)
		m := result.Mismatches[0]
		assert.Equal(t, domain.DimOutputs, m.Dimension)
		assert.Equal(t, domain.IssueMissingInExtraction, m.Issue)
		assert.Nil(t, m.Extracted)
		assert.Equal(t, []any{"a resized image"}, m.Intended)
	})

	t.Run("Empty sequence reads as absent", func(t *testing.T) {
		extracted := extractedWith(map[string]any{
			"constraints": []any{},
		})
		intended := domain.Record{"constraints": nil}
		result := engine.Compare(context.Background(), extracted, intended)

		assert.Equal(t, 6, result.AlignedDimensions)
		assert.Empty(t, result.Mismatches)
	})
}

func TestCompareIdenticalValuesAlign(t *testing.T) {
	engine := newTestEngine(t)

	extracted := extractedWith(map[string]any{
		"capability": "Converts markdown documents into styled HTML pages",
	})
	intended := domain.Record{
		"capability": "converts markdown documents into styled html pages",
	}

	result := engine.Compare(context.Background(), extracted, intended)

	assert.Equal(t, 6, result.AlignedDimensions)
	assert.Empty(t, result.Mismatches)
}

func TestCompareThresholdBoundaryIsMismatch(t *testing.T) {
	engine := newTestEngine(t)

	// Token sets {alpha bravo charlie} and {alpha bravo delta}:
	// intersection 2, union 4, similarity exactly 0.5.
	extracted := extractedWith(map[string]any{
		"capability": "alpha bravo charlie",
	})
	intended := domain.Record{
		"capability": "alpha bravo delta",
	}

	result := engine.Compare(context.Background(), extracted, intended)

	assert.Equal(t, 5, result.AlignedDimensions)
	require.Len(t, result.Mismatches, 1)
	m := result.Mismatches[0]
	assert.Equal(t, domain.IssueMismatch, m.Issue)
	require.NotNil(t, m.Similarity)
	assert.InDelta(t, 0.5, *m.Similarity, 0.0001)
}

func TestCompareConstraintsExample(t *testing.T) {
	engine := newTestEngine(t)

	extracted := extractedWith(map[string]any{
		"constraints": []any{"10MB max"},
	})
	intended := domain.Record{
		"constraints": []any{"10MB max", "no streaming support"},
	}

	result := engine.Compare(context.Background(), extracted, intended)

	// Short tokens ("max", "no") drop out; {10mb} vs {10mb streaming support}
	// gives 1/3, below the threshold.
	assert.Equal(t, 5, result.AlignedDimensions)
	assert.Equal(t, 6, result.TotalDimensions)
	assert.Equal(t, "0.83", result.AlignmentScore)
	require.Len(t, result.Mismatches, 1)
	m := result.Mismatches[0]
	assert.Equal(t, domain.DimConstraints, m.Dimension)
	assert.Equal(t, domain.IssueMismatch, m.Issue)
	require.NotNil(t, m.Similarity)
	assert.InDelta(t, 0.33, *m.Similarity, 0.0001)
	assert.Equal(t, "Review mismatched dimensions: constraints", result.Recommendation)
}

func TestCompareInvocationNeverCompared(t *testing.T) {
	engine := newTestEngine(t)

	extracted := extractedWith(map[string]any{
		"invocation": "call with POST /resize",
	})
	intended := domain.Record{
		"invocation": "totally different invocation text",
	}

	result := engine.Compare(context.Background(), extracted, intended)

	assert.Equal(t, 6, result.AlignedDimensions)
	assert.Empty(t, result.Mismatches)
}

func TestCompareMalformedShapesDegrade(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name      string
		extracted domain.Record
		intended  domain.Record
	}{
		{
			name:      "Extraction is not an object",
			extracted: domain.Record{"extraction": "not an object"},
			intended:  domain.Record{},
		},
		{
			name:      "Wrapper missing entirely",
			extracted: domain.Record{"something_else": true},
			intended:  domain.Record{},
		},
		{
			name:      "Unknown keys ignored",
			extracted: extractedWith(map[string]any{"confidence": 0.9}),
			intended:  domain.Record{"unrelated": "value"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.Compare(context.Background(), tc.extracted, tc.intended)
			assert.Equal(t, 6, result.AlignedDimensions+len(result.Mismatches))
		})
	}
}

func TestCompareCountInvariantAndScoreFormat(t *testing.T) {
	engine := newTestEngine(t)

	// Drive every aligned count from 0 to 6 by making n dimensions agree
	// exactly and the rest disagree one-sidedly.
	wantScores := []string{"0.00", "0.17", "0.33", "0.50", "0.67", "0.83", "1.00"}

	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("Aligned %d", n), func(t *testing.T) {
			extraction := map[string]any{}
			intended := domain.Record{}
			for i, dim := range domain.Dimensions {
				if i < n {
					continue // absent on both sides counts as aligned
				}
				extraction[string(dim)] = "only the extraction mentions this dimension"
			}
			result := engine.Compare(context.Background(), extractedWith(extraction), intended)

			assert.Equal(t, n, result.AlignedDimensions)
			assert.Len(t, result.Mismatches, 6-n)
			assert.Equal(t, 6, result.AlignedDimensions+len(result.Mismatches))
			assert.Equal(t, wantScores[n], result.AlignmentScore)
		})
	}
}

func TestCompareRecommendationOrder(t *testing.T) {
	engine := newTestEngine(t)

	extracted := extractedWith(map[string]any{
		"inputs":      "a markdown file",
		"constraints": "files under five megabytes only",
	})
	intended := domain.Record{
		"inputs":      "completely unrelated wording here",
		"constraints": "different restriction text entirely",
		"outputs":     "a rendered page",
	}

	result := engine.Compare(context.Background(), extracted, intended)

	require.Len(t, result.Mismatches, 3)
	assert.Equal(t, domain.DimInputs, result.Mismatches[0].Dimension)
	assert.Equal(t, domain.DimOutputs, result.Mismatches[1].Dimension)
	assert.Equal(t, domain.DimConstraints, result.Mismatches[2].Dimension)
	assert.Equal(t, "Review mismatched dimensions: inputs, outputs, constraints", result.Recommendation)
}

func TestJaccard(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "Identical", a: "parse json payloads quickly", b: "parse json payloads quickly", want: 1.0},
		{name: "Disjoint", a: "alpha bravo", b: "delta echo1", want: 0.0},
		{name: "Partial overlap", a: "alpha bravo charlie", b: "alpha bravo delta", want: 0.5},
		{name: "Only short tokens", a: "a an the of", b: "is at on to", want: 0.0},
		{name: "Duplicates collapse", a: "alpha alpha alpha", b: "alpha", want: 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, engine.jaccard(tc.a, tc.b), 0.0001)
			// Similarity is symmetric.
			assert.Equal(t, engine.jaccard(tc.a, tc.b), engine.jaccard(tc.b, tc.a))
		})
	}
}
