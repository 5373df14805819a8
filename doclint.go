// Package doclint compares structured documentation extractions against
// intended behavior records.
//
// The comparator scores six fixed dimensions of documented tool behavior
// (capability, inputs, outputs, when_to_use, when_not_to_use, constraints).
// Each dimension where both sides are present is scored by lexical Jaccard
// similarity over lowercase word tokens of at least four characters and
// counts as aligned when the similarity strictly exceeds the threshold.
// Dimensions absent on both sides count as aligned; dimensions absent on
// one side are reported as one-sided mismatches.
//
// This package uses the functional options pattern to allow configuration
// of the threshold, token length and logging.
package doclint

import (
	"context"

	"github.com/acoyfellow/doclint/internal/adapters/canonical"
	"github.com/acoyfellow/doclint/internal/adapters/logger"
	"github.com/acoyfellow/doclint/internal/core/alignment"
	"github.com/acoyfellow/doclint/internal/core/domain"
	"github.com/acoyfellow/doclint/internal/ports"
	"github.com/baditaflorin/l"
)

// Comparator provides methods to compare extraction records against
// intended records. It holds no state across calls and is safe for
// concurrent use.
type Comparator struct {
	engine ports.AlignmentComparator
	logger ports.Logger
}

// Option defines a functional option for configuring the comparator.
type Option func(*comparatorConfig)

type comparatorConfig struct {
	Threshold      float64
	MinTokenLength int
	Logger         ports.Logger
	Canonicalizer  ports.Canonicalizer
}

// WithThreshold sets a custom similarity threshold. A dimension counts as
// aligned only when its similarity strictly exceeds the threshold.
func WithThreshold(th float64) Option {
	return func(cfg *comparatorConfig) {
		cfg.Threshold = th
	}
}

// WithMinTokenLength sets the minimum token length kept during
// tokenization.
func WithMinTokenLength(n int) Option {
	return func(cfg *comparatorConfig) {
		cfg.MinTokenLength = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *comparatorConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithCanonicalizer sets a custom canonicalizer.
func WithCanonicalizer(c ports.Canonicalizer) Option {
	return func(cfg *comparatorConfig) {
		cfg.Canonicalizer = c
	}
}

// New creates a new Comparator with the provided functional options.
// If no logger is provided, a default stderr logger is created.
func New(opts ...Option) (*Comparator, error) {
	defaultConfig := alignment.DefaultConfig()

	cfg := &comparatorConfig{
		Threshold:      defaultConfig.Threshold,
		MinTokenLength: canonical.DefaultMinTokenLength,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		lg, err := logger.NewStdLogger(false)
		if err != nil {
			return nil, err
		}
		cfg.Logger = lg
	}
	if cfg.Canonicalizer == nil {
		cfg.Canonicalizer = canonical.New(cfg.MinTokenLength)
	}

	engine, err := alignment.NewEngine(
		alignment.Config{Threshold: cfg.Threshold},
		cfg.Logger,
		cfg.Canonicalizer,
	)
	if err != nil {
		return nil, err
	}

	return &Comparator{
		engine: engine,
		logger: cfg.Logger,
	}, nil
}

// Compare computes the alignment between an extracted record and an
// intended record. It never fails: malformed or missing structure reads as
// absence and the result invariants still hold.
func (c *Comparator) Compare(ctx context.Context, extracted, intended map[string]any) domain.AlignmentResult {
	return c.engine.Compare(ctx, domain.Record(extracted), domain.Record(intended))
}
