// Package schema provides database schema models for MorphDB.
// The column set is the canonical superset of the morphology
// spreadsheet ("柴胡词典") the catalog was built around.
package schema

import (
	"database/sql"
	"time"
)

// Species is one species-level record with its full morphological
// attribute set. Measurement columns are nullable: an absent value
// means "not specified" and is never stored as zero.
type Species struct {
	// ID is the surrogate key, assigned on insert and immutable.
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	// SerialNumber is the ordinal from the source spreadsheet.
	SerialNumber sql.NullInt64 `gorm:"column:serial_number"`

	// SpeciesName is the natural key: the species name in Chinese or
	// Latin. Unique and never empty.
	SpeciesName string `gorm:"column:species_name;type:text;not null;uniqueIndex:idx_species_name"`

	// GrowthForm describes the overall habit of the plant.
	GrowthForm string `gorm:"column:growth_form;type:text"`

	MinHeightCm sql.NullFloat64 `gorm:"column:min_height_cm"`
	MaxHeightCm sql.NullFloat64 `gorm:"column:max_height_cm"`

	RootColor string `gorm:"column:root_color;type:text"`

	LeafMinLengthCm sql.NullFloat64 `gorm:"column:leaf_min_length_cm"`
	LeafMaxLengthCm sql.NullFloat64 `gorm:"column:leaf_max_length_cm"`
	LeafMinWidthMm  sql.NullFloat64 `gorm:"column:leaf_min_width_mm"`
	LeafMaxWidthMm  sql.NullFloat64 `gorm:"column:leaf_max_width_mm"`

	LeafShape string `gorm:"column:leaf_shape;type:text"`
	LeafColor string `gorm:"column:leaf_color;type:text"`

	MinVeinNumber sql.NullInt64 `gorm:"column:min_vein_number"`
	MaxVeinNumber sql.NullInt64 `gorm:"column:max_vein_number"`

	MinInflorescenceDiameterCm sql.NullFloat64 `gorm:"column:min_inflorescence_diameter_cm"`
	MaxInflorescenceDiameterCm sql.NullFloat64 `gorm:"column:max_inflorescence_diameter_cm"`

	// BractNumber is free text in the source data ("5-7", "多数").
	BractNumber string `gorm:"column:bract_number;type:text"`
	BractShape  string `gorm:"column:bract_shape;type:text"`

	MinBractLengthMm sql.NullFloat64 `gorm:"column:min_bract_length_mm"`
	MaxBractLengthMm sql.NullFloat64 `gorm:"column:max_bract_length_mm"`

	// RayNumber is free text in the source data.
	RayNumber      string          `gorm:"column:ray_number;type:text"`
	MinRayLengthCm sql.NullFloat64 `gorm:"column:min_ray_length_cm"`
	MaxRayLengthCm sql.NullFloat64 `gorm:"column:max_ray_length_cm"`

	// UmbelletDiameterMm stays textual: the source mixes numbers and
	// ranges in this column.
	UmbelletDiameterMm string `gorm:"column:umbellet_diameter_mm;type:text"`

	BracteoleNumber string `gorm:"column:bracteole_number;type:text"`
	BracteoleShape  string `gorm:"column:bracteole_shape;type:text"`
	UmbelletNumber  string `gorm:"column:umbellet_number;type:text"`

	PetalColor string `gorm:"column:petal_color;type:text"`
	FruitShape string `gorm:"column:fruit_shape;type:text"`
	FruitColor string `gorm:"column:fruit_color;type:text"`

	// CreatedAt and UpdatedAt are server-assigned.
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the SQLite table name for Species.
func (Species) TableName() string {
	return "species"
}

// Variety is a named sub-entity belonging to exactly one Species.
// Variety names carry no uniqueness constraint.
type Variety struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	// SpeciesID links the variety to its parent record. Deleting the
	// parent removes its varieties.
	SpeciesID int64 `gorm:"column:species_id;not null;index"`

	Name        string `gorm:"column:name;type:text;not null"`
	Description string `gorm:"column:description;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	Species *Species `gorm:"foreignKey:SpeciesID;constraint:OnDelete:CASCADE"`
}

// TableName returns the SQLite table name for Variety.
func (Variety) TableName() string {
	return "varieties"
}
