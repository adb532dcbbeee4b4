package inventory

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

const (
	defaultMinStock = 5
	defaultUnit     = "unidad"
)

// ======================================================
// INPUT
// ======================================================

type AddProductInput struct {
	Name     string
	Quantity int
	Price    float64

	// MinStock nil = omitido pelo chamador → default 5 (zero é valor legal).
	MinStock *int
	Unit     string
}

// ======================================================
// USE CASE
// ======================================================

type AddProduct struct {
	store *store.Store
	audit *audit.Recorder
}

func NewAddProduct(st *store.Store, rec *audit.Recorder) *AddProduct {
	return &AddProduct{store: st, audit: rec}
}

func (uc *AddProduct) Execute(in AddProductInput) models.Product {

	minStock := defaultMinStock
	if in.MinStock != nil {
		minStock = *in.MinStock
	}

	unit := in.Unit
	if unit == "" {
		unit = defaultUnit
	}

	p := models.Product{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Quantity: in.Quantity,
		MinStock: minStock,
		Price:    in.Price,
		Unit:     unit,
	}

	snap := uc.store.Snapshot()
	uc.store.ReplaceProducts(append(snap.Products, p))

	uc.audit.Record(audit.Event{
		Action:   "product_added",
		Entity:   "product",
		EntityID: p.ID,
		Detail:   p.Name,
	})

	return p
}
