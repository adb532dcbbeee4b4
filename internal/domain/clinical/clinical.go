package clinical

import "github.com/BruksfildServices01/estetica-admin/internal/models"

// Zone is one selectable region of the face map.
type Zone struct {
	ID   string
	Name string
}

// Zones é o vocabulário fixo do mapa facial.
var Zones = []Zone{
	{ID: "forehead", Name: "Frente"},
	{ID: "eyes", Name: "Contorno Ojos"},
	{ID: "nose", Name: "Nariz / Zona T"},
	{ID: "cheeks", Name: "Mejillas"},
	{ID: "chin", Name: "Mentón"},
	{ID: "neck", Name: "Cuello"},
}

func IsZone(id string) bool {
	for _, z := range Zones {
		if z.ID == id {
			return true
		}
	}
	return false
}

// ClampLevel limita um nível clínico a [0,100]. Entradas fora da faixa são
// ajustadas, nunca rejeitadas.
func ClampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Defaults is the well-formed record synthesized for clients created without
// clinical data (and for legacy records missing the whole structure).
func Defaults() models.ClinicalData {
	return models.ClinicalData{
		SkinType:         models.SkinNormal,
		HydrationLevel:   50,
		OilLevel:         50,
		SensitivityLevel: 20,
		TreatedAreas:     []string{},
		Allergies:        "",
	}
}

// Normalize makes any incoming record well formed: an empty legacy record is
// replaced by Defaults, levels are clamped, the skin type falls back to
// Normal and treated areas are deduplicated and restricted to known zones.
func Normalize(cd models.ClinicalData) models.ClinicalData {
	if isEmpty(cd) {
		return Defaults()
	}

	out := cd
	out.HydrationLevel = ClampLevel(cd.HydrationLevel)
	out.OilLevel = ClampLevel(cd.OilLevel)
	out.SensitivityLevel = ClampLevel(cd.SensitivityLevel)

	switch cd.SkinType {
	case models.SkinDry, models.SkinCombination, models.SkinOily,
		models.SkinNormal, models.SkinSensitive:
	default:
		out.SkinType = models.SkinNormal
	}

	areas := make([]string, 0, len(cd.TreatedAreas))
	seen := map[string]bool{}
	for _, id := range cd.TreatedAreas {
		if !IsZone(id) || seen[id] {
			continue
		}
		seen[id] = true
		areas = append(areas, id)
	}
	out.TreatedAreas = areas

	return out
}

func isEmpty(cd models.ClinicalData) bool {
	return cd.SkinType == "" &&
		cd.HydrationLevel == 0 &&
		cd.OilLevel == 0 &&
		cd.SensitivityLevel == 0 &&
		len(cd.TreatedAreas) == 0 &&
		cd.Allergies == ""
}

// ToggleArea returns a new slice with the zone added when absent and removed
// when present. Unknown zones leave the input untouched. The input slice is
// never modified.
func ToggleArea(areas []string, zoneID string) []string {
	if !IsZone(zoneID) {
		out := make([]string, len(areas))
		copy(out, areas)
		return out
	}

	out := make([]string, 0, len(areas)+1)
	removed := false
	for _, id := range areas {
		if id == zoneID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		out = append(out, zoneID)
	}
	return out
}
