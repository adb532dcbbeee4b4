package models

// Tipo de pele registrado na ficha clínica.
type SkinType string

const (
	SkinDry         SkinType = "Dry"
	SkinCombination SkinType = "Combination"
	SkinOily        SkinType = "Oily"
	SkinNormal      SkinType = "Normal"
	SkinSensitive   SkinType = "Sensitive"
)

// ClinicalData é a ficha estruturada que acompanha cada cliente.
// Levels ficam sempre em [0,100]; TreatedAreas usa os ids do mapa facial.
type ClinicalData struct {
	SkinType         SkinType `json:"skinType" yaml:"skinType"`
	HydrationLevel   int      `json:"hydrationLevel" yaml:"hydrationLevel"`
	OilLevel         int      `json:"oilLevel" yaml:"oilLevel"`
	SensitivityLevel int      `json:"sensitivityLevel" yaml:"sensitivityLevel"`
	TreatedAreas     []string `json:"treatedAreas" yaml:"treatedAreas"`
	Allergies        string   `json:"allergies" yaml:"allergies"`
}

// Cliente do spa, sem login. Notas de evolução em texto livre + ficha
// estruturada embutida (sempre bem formada, ver domain/clinical).
type Client struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Phone     string `json:"phone" yaml:"phone"`
	Email     string `json:"email" yaml:"email"`
	BirthDate string `json:"birthDate" yaml:"birthDate"` // YYYY-MM-DD, pode ser vazio
	IsVip     bool   `json:"isVip" yaml:"isVip"`
	History   string `json:"history" yaml:"history"`

	ClinicalData ClinicalData `json:"clinicalData" yaml:"clinicalData"`

	LastVisit string `json:"lastVisit" yaml:"lastVisit"` // YYYY-MM-DD
}

// Clone returns a copy that shares no mutable state with the receiver.
func (c Client) Clone() Client {
	out := c
	if c.ClinicalData.TreatedAreas != nil {
		out.ClinicalData.TreatedAreas = make([]string, len(c.ClinicalData.TreatedAreas))
		copy(out.ClinicalData.TreatedAreas, c.ClinicalData.TreatedAreas)
	}
	return out
}
