package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus é o status de toda cita recém-criada, independente do que o
// chamador informou.
func InitialStatus() Status {
	return StatusPending
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Agenda offerings
// ===============================
//
// Nenhuma transição é bloqueada no core; a agenda apenas esconde a ação que
// coincide com o status atual. Assim completed→cancelled e
// cancelled→completed continuam alcançáveis.

func CanOfferComplete(current Status) bool {
	return current != StatusCompleted
}

func CanOfferCancel(current Status) bool {
	return current != StatusCancelled
}
