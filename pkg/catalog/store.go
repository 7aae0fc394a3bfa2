package catalog

import (
	"context"

	"github.com/morphdb/morphdb/pkg/schema"
)

// Store defines durable keyed storage of species records with one
// secondary lookup by natural key. The store exclusively owns all
// rows; the derived search index is updated inside the same
// transaction as every primary-row mutation and never diverges from
// primary data.
type Store interface {
	// Insert assigns a new id to the record. Fails when the natural
	// key is empty or already exists.
	Insert(ctx context.Context, sp *schema.Species) (int64, error)

	// InsertOrReplace inserts the record, or updates the existing row
	// sharing its natural key. The existing row keeps its id.
	InsertOrReplace(ctx context.Context, sp *schema.Species) (int64, error)

	// GetByID returns the record with the given id, or nil when absent.
	GetByID(ctx context.Context, id int64) (*schema.Species, error)

	// GetByName returns the record with the given natural key, or nil
	// when absent.
	GetByName(ctx context.Context, name string) (*schema.Species, error)

	// ScanAll returns records ordered by natural key ascending. A
	// non-positive limit returns all records.
	ScanAll(ctx context.Context, limit int) ([]schema.Species, error)

	// Names returns the set of existing natural keys.
	Names(ctx context.Context) (map[string]struct{}, error)

	// AddVariety attaches a variety to its parent record.
	AddVariety(ctx context.Context, v *schema.Variety) (int64, error)

	// VarietiesOf returns the varieties of one record, ordered by name.
	VarietiesOf(ctx context.Context, speciesID int64) ([]schema.Variety, error)

	// ClearAll deletes every species and variety row and empties the
	// derived search index. Irreversible.
	ClearAll(ctx context.Context) error

	// Statistics returns aggregate counts over the catalog.
	Statistics(ctx context.Context) (Statistics, error)

	// GrowthForms returns the distinct non-empty growth forms, sorted.
	GrowthForms(ctx context.Context) ([]string, error)
}

// Statistics holds aggregate counts over the catalog.
type Statistics struct {
	TotalSpecies int
	GrowthForms  int
	LeafShapes   int
	FruitShapes  int
}
