package store

import "github.com/BruksfildServices01/estetica-admin/internal/models"

// Store holds the four entity collections for the lifetime of the process.
// It is owned by a single goroutine: every command runs to completion before
// the next read, so no locking is involved. Collections are swapped whole and
// entity values are never edited in place, which keeps snapshots taken before
// a command consistent afterwards.
type Store struct {
	clients      []models.Client
	appointments []models.Appointment
	products     []models.Product
	transactions []models.Transaction
}

func New() *Store {
	return &Store{}
}

// Snapshot is a consistent view of all four collections at one instant.
type Snapshot struct {
	Clients      []models.Client
	Appointments []models.Appointment
	Products     []models.Product
	Transactions []models.Transaction
}

// Snapshot copies every collection so callers can hold on to the result
// across later commands.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Clients:      cloneClients(s.clients),
		Appointments: append([]models.Appointment(nil), s.appointments...),
		Products:     append([]models.Product(nil), s.products...),
		Transactions: append([]models.Transaction(nil), s.transactions...),
	}
}

// ===============================
// Replace (whole collection)
// ===============================
//
// Commands build a fresh slice and hand it over; the store takes ownership.

func (s *Store) ReplaceClients(clients []models.Client) {
	s.clients = clients
}

func (s *Store) ReplaceAppointments(appointments []models.Appointment) {
	s.appointments = appointments
}

func (s *Store) ReplaceProducts(products []models.Product) {
	s.products = products
}

func (s *Store) ReplaceTransactions(transactions []models.Transaction) {
	s.transactions = transactions
}

func cloneClients(in []models.Client) []models.Client {
	out := make([]models.Client, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
