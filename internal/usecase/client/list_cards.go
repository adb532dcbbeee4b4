package client

import (
	"strings"

	"github.com/BruksfildServices01/estetica-admin/internal/clock"
	"github.com/BruksfildServices01/estetica-admin/internal/dto"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type ListCards struct {
	store *store.Store
}

func NewListCards(st *store.Store) *ListCards {
	return &ListCards{store: st}
}

// Execute filtra por nome/email (substring, sem caixa) e marca os badges de
// VIP e aniversário de cada cartão.
func (uc *ListCards) Execute(query, today string) []dto.ClientCardDTO {

	q := strings.ToLower(strings.TrimSpace(query))

	snap := uc.store.Snapshot()
	out := make([]dto.ClientCardDTO, 0, len(snap.Clients))

	for _, c := range snap.Clients {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}

		out = append(out, dto.ClientCardDTO{
			ID:         c.ID,
			Name:       c.Name,
			Phone:      c.Phone,
			Email:      c.Email,
			IsVip:      c.IsVip,
			IsBirthday: HasBirthday(c.BirthDate, today),
			SkinType:   string(c.ClinicalData.SkinType),
			LastVisit:  c.LastVisit,
		})
	}

	return out
}

// HasBirthday compara mês e dia exatos, ignorando o ano. Data vazia ou
// inválida nunca é aniversário.
func HasBirthday(birthDate, today string) bool {
	bm, bd, ok := clock.MonthDay(birthDate)
	if !ok {
		return false
	}
	tm, td, ok := clock.MonthDay(today)
	if !ok {
		return false
	}
	return bm == tm && bd == td
}
