package models

type Product struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Quantity int     `json:"quantity" yaml:"quantity"` // nunca negativo
	MinStock int     `json:"minStock" yaml:"minStock"` // limite de reposição
	Price    float64 `json:"price" yaml:"price"`
	Unit     string  `json:"unit" yaml:"unit"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}
