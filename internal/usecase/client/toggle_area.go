package client

import (
	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	"github.com/BruksfildServices01/estetica-admin/internal/domain/clinical"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type ToggleTreatedArea struct {
	store *store.Store
	audit *audit.Recorder
}

func NewToggleTreatedArea(st *store.Store, rec *audit.Recorder) *ToggleTreatedArea {
	return &ToggleTreatedArea{store: st, audit: rec}
}

// Execute liga/desliga uma zona do mapa facial na ficha do cliente. Dois
// toggles seguidos devolvem a ficha ao estado original; nunca entra zona
// duplicada. Zona desconhecida deixa a ficha como está.
func (uc *ToggleTreatedArea) Execute(clientID, zoneID string) store.UpdateResult {

	snap := uc.store.Snapshot()
	result := store.NotFoundNoop

	for i := range snap.Clients {
		if snap.Clients[i].ID != clientID {
			continue
		}

		c := snap.Clients[i]
		c.ClinicalData.TreatedAreas = clinical.ToggleArea(c.ClinicalData.TreatedAreas, zoneID)
		snap.Clients[i] = c
		result = store.Applied
		break
	}

	if result == store.Applied {
		uc.store.ReplaceClients(snap.Clients)
		uc.audit.Record(audit.Event{
			Action:   "client_area_toggled",
			Entity:   "client",
			EntityID: clientID,
			Detail:   zoneID,
		})
	}

	return result
}
