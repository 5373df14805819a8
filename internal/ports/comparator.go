package ports

import (
	"context"

	"github.com/acoyfellow/doclint/internal/core/domain"
)

// AlignmentComparator defines the interface for comparing an extracted
// documentation record against an intended behavior record.
type AlignmentComparator interface {
	Compare(ctx context.Context, extracted, intended domain.Record) domain.AlignmentResult
}
