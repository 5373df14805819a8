package domain

// Dimension names one of the fixed aspects of documented tool behavior
// that the alignment engine compares.
type Dimension string

const (
	DimCapability   Dimension = "capability"
	DimInputs       Dimension = "inputs"
	DimOutputs      Dimension = "outputs"
	DimWhenToUse    Dimension = "when_to_use"
	DimWhenNotToUse Dimension = "when_not_to_use"
	DimConstraints  Dimension = "constraints"
)

// Dimensions is the closed, ordered set of compared dimensions. The
// "invocation" field and provenance fields ("tool_name", "evaluated_at")
// exist on extraction records but are never compared.
var Dimensions = []Dimension{
	DimCapability,
	DimInputs,
	DimOutputs,
	DimWhenToUse,
	DimWhenNotToUse,
	DimConstraints,
}

// Issue classifies the outcome of a single dimension comparison.
type Issue string

const (
	IssueMissingInExtraction Issue = "missing_in_extraction"
	IssueMissingInIntended   Issue = "missing_in_intended"
	IssueMismatch            Issue = "mismatch"
)

// Record is a loosely-typed JSON-shaped mapping. An extraction record
// wraps its dimension values in an "extraction" sub-object and carries
// provenance fields at the top level; an intended record holds dimension
// values directly.
type Record map[string]any

// Mismatch describes one dimension whose sides did not align.
// Similarity is only set when Issue is IssueMismatch.
type Mismatch struct {
	Dimension  Dimension `json:"dimension"`
	Issue      Issue     `json:"issue"`
	Similarity *float64  `json:"similarity,omitempty"`
	Extracted  any       `json:"extracted"`
	Intended   any       `json:"intended"`
}

// AlignmentResult is the outcome of one comparison. AlignedDimensions
// plus len(Mismatches) always equals TotalDimensions.
type AlignmentResult struct {
	AlignmentScore    string     `json:"alignment_score"`
	AlignedDimensions int        `json:"aligned_dimensions"`
	TotalDimensions   int        `json:"total_dimensions"`
	Mismatches        []Mismatch `json:"mismatches"`
	Recommendation    string     `json:"recommendation"`
}
