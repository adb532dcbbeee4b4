package appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	domain "github.com/BruksfildServices01/estetica-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

// ServiceIncomeAmount é o valor fixo lançado por serviço agendado.
// Regra de negócio simplificada de propósito, não é tabela de preços.
const ServiceIncomeAmount = 100.0

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID string
	Date     string
	Time     string
	Service  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store *store.Store
	audit *audit.Recorder
}

func NewCreateAppointment(st *store.Store, rec *audit.Recorder) *CreateAppointment {
	return &CreateAppointment{store: st, audit: rec}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(in CreateAppointmentInput) models.Appointment {

	snap := uc.store.Snapshot()

	// --------------------------------------------------
	// 1. Nome do cliente vira snapshot na cita
	// --------------------------------------------------
	clientName := "Unknown"
	for _, c := range snap.Clients {
		if c.ID == in.ClientID {
			clientName = c.Name
			break
		}
	}

	// --------------------------------------------------
	// 2. Cita sempre nasce pending
	// --------------------------------------------------
	ap := models.Appointment{
		ID:         uuid.NewString(),
		ClientID:   in.ClientID,
		ClientName: clientName,
		Date:       in.Date,
		Time:       in.Time,
		Service:    in.Service,
		Status:     string(domain.InitialStatus()),
	}

	// --------------------------------------------------
	// 3. Lançamento de ingreso induzido, mesma data
	// --------------------------------------------------
	tx := models.Transaction{
		ID:          uuid.NewString(),
		Date:        in.Date,
		Description: fmt.Sprintf("Service: %s - %s", in.Service, clientName),
		Amount:      ServiceIncomeAmount,
		Type:        models.TransactionIncome,
	}

	// Os dois appends entram antes de qualquer leitura seguinte: nenhum
	// snapshot vê a cita sem o lançamento.
	uc.store.ReplaceAppointments(append(snap.Appointments, ap))
	uc.store.ReplaceTransactions(append(snap.Transactions, tx))

	uc.audit.Record(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Detail:   ap.Service,
	})

	return ap
}
