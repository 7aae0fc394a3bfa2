package lifecycle

import (
	"context"

	"github.com/morphdb/morphdb/pkg/schema"
)

// Searcher produces a filtered, deterministically ordered subset of
// records. Results are always ordered by natural key ascending; all
// provided constraints are combined with AND. With no query and no
// filters the result equals a full scan up to limit.
type Searcher interface {
	// Search matches query as free text against the indexed text
	// columns and applies per-field constraints from filters: numeric
	// and integer fields as lower bounds (field >= value), text fields
	// as substring containment. Unknown filter fields are rejected.
	Search(
		ctx context.Context,
		query string,
		filters map[string]string,
		limit int,
	) ([]schema.Species, error)
}
