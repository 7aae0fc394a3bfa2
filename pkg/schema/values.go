package schema

import (
	"database/sql"
	"strconv"
)

func formatFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

func formatInt(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

// ColumnValue returns the display form of one catalog column. NULL
// measurements and unknown columns come back as the empty string.
func (sp *Species) ColumnValue(column string) string {
	switch column {
	case "serial_number":
		return formatInt(sp.SerialNumber)
	case "species_name":
		return sp.SpeciesName
	case "growth_form":
		return sp.GrowthForm
	case "min_height_cm":
		return formatFloat(sp.MinHeightCm)
	case "max_height_cm":
		return formatFloat(sp.MaxHeightCm)
	case "root_color":
		return sp.RootColor
	case "leaf_max_length_cm":
		return formatFloat(sp.LeafMaxLengthCm)
	case "leaf_min_length_cm":
		return formatFloat(sp.LeafMinLengthCm)
	case "leaf_min_width_mm":
		return formatFloat(sp.LeafMinWidthMm)
	case "leaf_max_width_mm":
		return formatFloat(sp.LeafMaxWidthMm)
	case "leaf_shape":
		return sp.LeafShape
	case "leaf_color":
		return sp.LeafColor
	case "min_vein_number":
		return formatInt(sp.MinVeinNumber)
	case "max_vein_number":
		return formatInt(sp.MaxVeinNumber)
	case "min_inflorescence_diameter_cm":
		return formatFloat(sp.MinInflorescenceDiameterCm)
	case "max_inflorescence_diameter_cm":
		return formatFloat(sp.MaxInflorescenceDiameterCm)
	case "bract_number":
		return sp.BractNumber
	case "bract_shape":
		return sp.BractShape
	case "min_bract_length_mm":
		return formatFloat(sp.MinBractLengthMm)
	case "max_bract_length_mm":
		return formatFloat(sp.MaxBractLengthMm)
	case "ray_number":
		return sp.RayNumber
	case "min_ray_length_cm":
		return formatFloat(sp.MinRayLengthCm)
	case "max_ray_length_cm":
		return formatFloat(sp.MaxRayLengthCm)
	case "umbellet_diameter_mm":
		return sp.UmbelletDiameterMm
	case "bracteole_number":
		return sp.BracteoleNumber
	case "bracteole_shape":
		return sp.BracteoleShape
	case "umbellet_number":
		return sp.UmbelletNumber
	case "petal_color":
		return sp.PetalColor
	case "fruit_shape":
		return sp.FruitShape
	case "fruit_color":
		return sp.FruitColor
	}
	return ""
}
