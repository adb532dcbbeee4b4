package client

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	"github.com/BruksfildServices01/estetica-admin/internal/domain/clinical"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type AddClientInput struct {
	Name      string
	Phone     string
	Email     string
	BirthDate string
	IsVip     bool
	History   string

	// ClinicalData vazio recebe os defaults da ficha (Normal, 50/50/20).
	ClinicalData models.ClinicalData
}

// ======================================================
// USE CASE
// ======================================================

type AddClient struct {
	store *store.Store
	audit *audit.Recorder
	today func() string
}

func NewAddClient(
	st *store.Store,
	rec *audit.Recorder,
	today func() string,
) *AddClient {
	return &AddClient{
		store: st,
		audit: rec,
		today: today,
	}
}

func (uc *AddClient) Execute(in AddClientInput) models.Client {

	c := models.Client{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		BirthDate:    in.BirthDate,
		IsVip:        in.IsVip,
		History:      in.History,
		ClinicalData: clinical.Normalize(in.ClinicalData),
		LastVisit:    uc.today(),
	}

	snap := uc.store.Snapshot()
	uc.store.ReplaceClients(append(snap.Clients, c))

	uc.audit.Record(audit.Event{
		Action:   "client_added",
		Entity:   "client",
		EntityID: c.ID,
		Detail:   c.Name,
	})

	return c
}
