// Package iostore implements the catalog.Store interface over the
// local SQLite database. Every mutating operation is one transaction
// covering the primary rows and the derived search index, so the
// index never diverges from primary data.
package iostore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/morphdb/morphdb/pkg/catalog"
	"github.com/morphdb/morphdb/pkg/db"
	"github.com/morphdb/morphdb/pkg/schema"
)

// store implements catalog.Store.
type store struct {
	operator db.Operator
}

// New creates a new Store on top of a connected operator.
func New(op db.Operator) catalog.Store {
	return &store{operator: op}
}

// insertCols lists species columns in insert order, id excluded.
const insertCols = `serial_number, species_name, growth_form,
	min_height_cm, max_height_cm, root_color,
	leaf_max_length_cm, leaf_min_length_cm,
	leaf_min_width_mm, leaf_max_width_mm,
	leaf_shape, leaf_color,
	min_vein_number, max_vein_number,
	min_inflorescence_diameter_cm, max_inflorescence_diameter_cm,
	bract_number, bract_shape,
	min_bract_length_mm, max_bract_length_mm,
	ray_number, min_ray_length_cm, max_ray_length_cm,
	umbellet_diameter_mm, bracteole_number, bracteole_shape,
	umbellet_number, petal_color, fruit_shape, fruit_color,
	created_at, updated_at`

// SelectCols lists all species columns in scan order. Shared with the
// query layer so every reader scans rows the same way.
const SelectCols = `id, ` + insertCols

const insertPlaceholders = `?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?`

// updateAssignments is insertCols rendered as "col = ?" pairs, built
// once at init.
var updateAssignments = func() string {
	cols := strings.Split(insertCols, ",")
	for i, c := range cols {
		cols[i] = strings.TrimSpace(c) + " = ?"
	}
	return strings.Join(cols, ", ")
}()

func insertArgs(sp *schema.Species) []any {
	return []any{
		sp.SerialNumber, sp.SpeciesName, sp.GrowthForm,
		sp.MinHeightCm, sp.MaxHeightCm, sp.RootColor,
		sp.LeafMaxLengthCm, sp.LeafMinLengthCm,
		sp.LeafMinWidthMm, sp.LeafMaxWidthMm,
		sp.LeafShape, sp.LeafColor,
		sp.MinVeinNumber, sp.MaxVeinNumber,
		sp.MinInflorescenceDiameterCm, sp.MaxInflorescenceDiameterCm,
		sp.BractNumber, sp.BractShape,
		sp.MinBractLengthMm, sp.MaxBractLengthMm,
		sp.RayNumber, sp.MinRayLengthCm, sp.MaxRayLengthCm,
		sp.UmbelletDiameterMm, sp.BracteoleNumber, sp.BracteoleShape,
		sp.UmbelletNumber, sp.PetalColor, sp.FruitShape, sp.FruitColor,
		sp.CreatedAt, sp.UpdatedAt,
	}
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ScanSpecies reads one species row in SelectCols order.
func ScanSpecies(row rowScanner) (*schema.Species, error) {
	var sp schema.Species
	err := row.Scan(
		&sp.ID,
		&sp.SerialNumber, &sp.SpeciesName, &sp.GrowthForm,
		&sp.MinHeightCm, &sp.MaxHeightCm, &sp.RootColor,
		&sp.LeafMaxLengthCm, &sp.LeafMinLengthCm,
		&sp.LeafMinWidthMm, &sp.LeafMaxWidthMm,
		&sp.LeafShape, &sp.LeafColor,
		&sp.MinVeinNumber, &sp.MaxVeinNumber,
		&sp.MinInflorescenceDiameterCm, &sp.MaxInflorescenceDiameterCm,
		&sp.BractNumber, &sp.BractShape,
		&sp.MinBractLengthMm, &sp.MaxBractLengthMm,
		&sp.RayNumber, &sp.MinRayLengthCm, &sp.MaxRayLengthCm,
		&sp.UmbelletDiameterMm, &sp.BracteoleNumber, &sp.BracteoleShape,
		&sp.UmbelletNumber, &sp.PetalColor, &sp.FruitShape, &sp.FruitColor,
		&sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// Insert assigns a new id to the record. The derived search index is
// updated in the same transaction.
func (s *store) Insert(
	ctx context.Context,
	sp *schema.Species,
) (int64, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return 0, NotConnectedError()
	}
	if strings.TrimSpace(sp.SpeciesName) == "" {
		return 0, EmptyNameError()
	}

	now := time.Now().UTC()
	sp.CreatedAt = now
	sp.UpdatedAt = now

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO species (`+insertCols+`)
			VALUES (`+insertPlaceholders+`)`,
		insertArgs(sp)...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, DuplicateNameError(sp.SpeciesName)
		}
		return 0, InsertError(sp.SpeciesName, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}
	sp.ID = id

	if err := ftsInsert(ctx, tx, sp); err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}
	return id, nil
}

// InsertOrReplace inserts the record, or updates the existing row
// sharing its natural key. An explicit find-then-update keeps the
// existing id instead of letting REPLACE re-assign it.
func (s *store) InsertOrReplace(
	ctx context.Context,
	sp *schema.Species,
) (int64, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return 0, NotConnectedError()
	}
	if strings.TrimSpace(sp.SpeciesName) == "" {
		return 0, EmptyNameError()
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+SelectCols+` FROM species WHERE species_name = ?`,
		sp.SpeciesName,
	)
	old, err := ScanSpecies(row)
	if err == sql.ErrNoRows {
		// No existing row: plain insert inside this transaction.
		now := time.Now().UTC()
		sp.CreatedAt = now
		sp.UpdatedAt = now

		res, err := tx.ExecContext(ctx,
			`INSERT INTO species (`+insertCols+`)
				VALUES (`+insertPlaceholders+`)`,
			insertArgs(sp)...,
		)
		if err != nil {
			return 0, InsertError(sp.SpeciesName, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, InsertError(sp.SpeciesName, err)
		}
		sp.ID = id
		if err := ftsInsert(ctx, tx, sp); err != nil {
			return 0, InsertError(sp.SpeciesName, err)
		}
		if err := tx.Commit(); err != nil {
			return 0, InsertError(sp.SpeciesName, err)
		}
		return id, nil
	}
	if err != nil {
		return 0, LookupError(sp.SpeciesName, err)
	}

	sp.ID = old.ID
	sp.CreatedAt = old.CreatedAt
	sp.UpdatedAt = time.Now().UTC()

	args := insertArgs(sp)
	args = append(args, old.ID)
	_, err = tx.ExecContext(ctx,
		`UPDATE species SET `+updateAssignments+` WHERE id = ?`,
		args...,
	)
	if err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}

	// External-content FTS needs an explicit delete of the old row
	// values before the new ones are indexed.
	if err := ftsDelete(ctx, tx, old); err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}
	if err := ftsInsert(ctx, tx, sp); err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, InsertError(sp.SpeciesName, err)
	}
	return old.ID, nil
}

// GetByID returns the record with the given id, or nil when absent.
func (s *store) GetByID(
	ctx context.Context,
	id int64,
) (*schema.Species, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	row := sqlDB.QueryRowContext(ctx,
		`SELECT `+SelectCols+` FROM species WHERE id = ?`, id)
	sp, err := ScanSpecies(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, LookupError("", err)
	}
	return sp, nil
}

// GetByName returns the record with the given natural key, or nil
// when absent.
func (s *store) GetByName(
	ctx context.Context,
	name string,
) (*schema.Species, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	row := sqlDB.QueryRowContext(ctx,
		`SELECT `+SelectCols+` FROM species WHERE species_name = ?`, name)
	sp, err := ScanSpecies(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, LookupError(name, err)
	}
	return sp, nil
}

// ScanAll returns records ordered by natural key ascending. A
// non-positive limit returns all records.
func (s *store) ScanAll(
	ctx context.Context,
	limit int,
) ([]schema.Species, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	query := `SELECT ` + SelectCols + ` FROM species
		ORDER BY species_name`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ScanError(err)
	}
	defer rows.Close()

	var res []schema.Species
	for rows.Next() {
		sp, err := ScanSpecies(rows)
		if err != nil {
			return nil, ScanError(err)
		}
		res = append(res, *sp)
	}
	if err := rows.Err(); err != nil {
		return nil, ScanError(err)
	}
	return res, nil
}

// Names returns the set of existing natural keys. The importer uses
// it for duplicate detection before inserting.
func (s *store) Names(ctx context.Context) (map[string]struct{}, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	rows, err := sqlDB.QueryContext(ctx,
		`SELECT species_name FROM species`)
	if err != nil {
		return nil, ScanError(err)
	}
	defer rows.Close()

	res := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, ScanError(err)
		}
		res[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, ScanError(err)
	}
	return res, nil
}

// ClearAll deletes every species and variety row and empties the
// derived search index, all in one transaction.
func (s *store) ClearAll(ctx context.Context) error {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return ClearError(err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM varieties`,
		`DELETE FROM species`,
		`INSERT INTO species_fts(species_fts) VALUES('delete-all')`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return ClearError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ClearError(err)
	}
	return nil
}

// Statistics returns aggregate counts over the catalog.
func (s *store) Statistics(ctx context.Context) (catalog.Statistics, error) {
	var res catalog.Statistics
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return res, NotConnectedError()
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM species`, &res.TotalSpecies},
		{`SELECT COUNT(DISTINCT growth_form) FROM species
			WHERE growth_form != ''`, &res.GrowthForms},
		{`SELECT COUNT(DISTINCT leaf_shape) FROM species
			WHERE leaf_shape != ''`, &res.LeafShapes},
		{`SELECT COUNT(DISTINCT fruit_shape) FROM species
			WHERE fruit_shape != ''`, &res.FruitShapes},
	}

	for _, c := range counts {
		if err := sqlDB.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return res, StatsError(err)
		}
	}
	return res, nil
}

// GrowthForms returns the distinct non-empty growth forms, sorted.
func (s *store) GrowthForms(ctx context.Context) ([]string, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	rows, err := sqlDB.QueryContext(ctx,
		`SELECT DISTINCT growth_form FROM species
			WHERE growth_form IS NOT NULL AND growth_form != ''
			ORDER BY growth_form`)
	if err != nil {
		return nil, StatsError(err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var gf string
		if err := rows.Scan(&gf); err != nil {
			return nil, StatsError(err)
		}
		res = append(res, gf)
	}
	if err := rows.Err(); err != nil {
		return nil, StatsError(err)
	}
	return res, nil
}

// ftsInsert mirrors the record's text columns into the search index.
func ftsInsert(ctx context.Context, tx *sql.Tx, sp *schema.Species) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO species_fts
			(rowid, species_name, growth_form, leaf_shape, fruit_shape)
			VALUES (?, ?, ?, ?, ?)`,
		sp.ID, sp.SpeciesName, sp.GrowthForm, sp.LeafShape, sp.FruitShape,
	)
	return err
}

// ftsDelete removes a record's old values from the search index.
// External-content FTS5 requires the old column values to unindex.
func ftsDelete(ctx context.Context, tx *sql.Tx, sp *schema.Species) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO species_fts
			(species_fts, rowid, species_name, growth_form, leaf_shape, fruit_shape)
			VALUES ('delete', ?, ?, ?, ?, ?)`,
		sp.ID, sp.SpeciesName, sp.GrowthForm, sp.LeafShape, sp.FruitShape,
	)
	return err
}

// isUniqueViolation checks if an error is a SQLite UNIQUE constraint
// violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
