package domain

import (
	"context"

	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

// TaxonomyRepository reads the immutable US-GAAP taxonomy files. Every call
// re-reads the backing file; read or parse failures degrade to empty results
// and are logged by the implementation, never surfaced as errors.
type TaxonomyRepository interface {
	// ElementNames returns every element name declared in the schema,
	// deduplicated and sorted lexicographically.
	ElementNames(ctx context.Context) []string

	// Label resolves the human-readable label of an element. The second
	// return value is false when no label is bound.
	Label(ctx context.Context, elementName string) (string, bool)

	// References resolves the accounting-standard citations of an element,
	// in linkbase document order. Possibly empty, never nil on success.
	References(ctx context.Context, elementName string) []entity.Reference

	// PresentationMetrics returns the element names referenced by the
	// presentation linkbase of a role code, deduplicated and sorted.
	// A missing presentation file yields an empty slice.
	PresentationMetrics(ctx context.Context, roleCode string) []string

	// HealthCheck verifies the schema document is readable.
	HealthCheck(ctx context.Context) error

	// Version reports the taxonomy release year, e.g. "2025".
	Version() string
}
