package client

import (
	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	"github.com/BruksfildServices01/estetica-admin/internal/domain/clinical"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type UpdateClient struct {
	store *store.Store
	audit *audit.Recorder
}

func NewUpdateClient(st *store.Store, rec *audit.Recorder) *UpdateClient {
	return &UpdateClient{store: st, audit: rec}
}

// Execute substitui o cliente de mesmo id. Id ausente é no-op silencioso por
// política; o resultado torna o caminho explícito para quem quiser saber.
// A ficha clínica passa pela normalização (clamp de níveis etc.) no caminho.
func (uc *UpdateClient) Execute(c models.Client) store.UpdateResult {

	c.ClinicalData = clinical.Normalize(c.ClinicalData)

	snap := uc.store.Snapshot()
	result := store.NotFoundNoop

	for i := range snap.Clients {
		if snap.Clients[i].ID == c.ID {
			snap.Clients[i] = c
			result = store.Applied
			break
		}
	}

	if result == store.Applied {
		uc.store.ReplaceClients(snap.Clients)
		uc.audit.Record(audit.Event{
			Action:   "client_updated",
			Entity:   "client",
			EntityID: c.ID,
		})
	}

	return result
}
