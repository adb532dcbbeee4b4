package appointment

import (
	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	domain "github.com/BruksfildServices01/estetica-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type UpdateStatus struct {
	store *store.Store
	audit *audit.Recorder
}

func NewUpdateStatus(st *store.Store, rec *audit.Recorder) *UpdateStatus {
	return &UpdateStatus{store: st, audit: rec}
}

// Execute troca o status da cita. Qualquer transição é aceita — inclusive
// voltar de completed para pending; quem limita as ofertas é a agenda.
// Id ausente é no-op.
func (uc *UpdateStatus) Execute(id string, status domain.Status) store.UpdateResult {

	snap := uc.store.Snapshot()
	result := store.NotFoundNoop

	for i := range snap.Appointments {
		if snap.Appointments[i].ID == id {
			snap.Appointments[i].Status = string(status)
			result = store.Applied
			break
		}
	}

	if result == store.Applied {
		uc.store.ReplaceAppointments(snap.Appointments)
		uc.audit.Record(audit.Event{
			Action:   "appointment_status_changed",
			Entity:   "appointment",
			EntityID: id,
			Detail:   string(status),
		})
	}

	return result
}
