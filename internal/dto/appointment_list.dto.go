package dto

type AppointmentListDTO struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Service    string `json:"service"`
	Status     string `json:"status"`
	ClientName string `json:"client_name"`
}
