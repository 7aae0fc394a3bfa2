package iostore

import (
	"context"
	"strings"
	"time"

	"github.com/morphdb/morphdb/pkg/schema"
)

// AddVariety attaches a variety to its parent record. Variety names
// carry no uniqueness constraint; the foreign key rejects orphans.
func (s *store) AddVariety(
	ctx context.Context,
	v *schema.Variety,
) (int64, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return 0, NotConnectedError()
	}
	if strings.TrimSpace(v.Name) == "" {
		return 0, VarietyError(v.Name, nil)
	}

	v.CreatedAt = time.Now().UTC()

	res, err := sqlDB.ExecContext(ctx,
		`INSERT INTO varieties (species_id, name, description, created_at)
			VALUES (?, ?, ?, ?)`,
		v.SpeciesID, v.Name, v.Description, v.CreatedAt,
	)
	if err != nil {
		return 0, VarietyError(v.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, VarietyError(v.Name, err)
	}
	v.ID = id
	return id, nil
}

// VarietiesOf returns the varieties of one record, ordered by name.
func (s *store) VarietiesOf(
	ctx context.Context,
	speciesID int64,
) ([]schema.Variety, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	rows, err := sqlDB.QueryContext(ctx,
		`SELECT id, species_id, name, description, created_at
			FROM varieties WHERE species_id = ? ORDER BY name`,
		speciesID,
	)
	if err != nil {
		return nil, VarietyError("", err)
	}
	defer rows.Close()

	var res []schema.Variety
	for rows.Next() {
		var v schema.Variety
		err := rows.Scan(&v.ID, &v.SpeciesID, &v.Name,
			&v.Description, &v.CreatedAt)
		if err != nil {
			return nil, VarietyError("", err)
		}
		res = append(res, v)
	}
	if err := rows.Err(); err != nil {
		return nil, VarietyError("", err)
	}
	return res, nil
}
