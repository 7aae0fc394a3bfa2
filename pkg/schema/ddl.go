package schema

// FTSTable is the name of the derived search index. It is an
// external-content FTS5 table mirroring the text columns of species
// that free-text search runs against. It has no independent identity
// and is fully rebuildable from the species table.
const FTSTable = "species_fts"

// FTSColumns lists the species columns mirrored into the search
// index, in index column order.
var FTSColumns = []string{
	"species_name",
	"growth_form",
	"leaf_shape",
	"fruit_shape",
}

// SearchIndexDDL returns statements that create the derived search
// index and secondary lookup indexes. GORM AutoMigrate cannot express
// virtual tables, so these run as a raw-SQL step after migration.
func SearchIndexDDL() []string {
	return []string{
		`CREATE VIRTUAL TABLE IF NOT EXISTS species_fts USING fts5(
	species_name,
	growth_form,
	leaf_shape,
	fruit_shape,
	content='species',
	content_rowid='id'
)`,
		`CREATE INDEX IF NOT EXISTS idx_species_growth_form
	ON species (growth_form)`,
	}
}
