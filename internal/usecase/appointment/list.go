package appointment

import (
	"github.com/BruksfildServices01/estetica-admin/internal/dto"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type List struct {
	store *store.Store
}

func NewList(st *store.Store) *List {
	return &List{store: st}
}

// Execute devolve a agenda na ordem de criação, como a lista sempre mostrou.
func (uc *List) Execute() []dto.AppointmentListDTO {

	snap := uc.store.Snapshot()

	out := make([]dto.AppointmentListDTO, 0, len(snap.Appointments))
	for _, ap := range snap.Appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date,
			Time:       ap.Time,
			Service:    ap.Service,
			Status:     ap.Status,
			ClientName: ap.ClientName,
		})
	}

	return out
}
