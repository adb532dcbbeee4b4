package models

type Appointment struct {
	ID       string `json:"id" yaml:"id"`
	ClientID string `json:"clientId" yaml:"clientId"`

	// ClientName é um snapshot do nome no momento da criação; não é
	// re-sincronizado quando o cliente é renomeado depois.
	ClientName string `json:"clientName" yaml:"clientName"`

	Date    string `json:"date" yaml:"date"` // YYYY-MM-DD
	Time    string `json:"time" yaml:"time"` // HH:MM, 24h
	Service string `json:"service" yaml:"service"`

	Status string `json:"status" yaml:"status"` // ver domain/appointment
}
