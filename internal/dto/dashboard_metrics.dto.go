package dto

type DashboardMetricsDTO struct {
	MonthlyIncome     float64 `json:"monthly_income"`
	TodayAppointments int     `json:"today_appointments"`
	VipClients        int     `json:"vip_clients"`
	LowStock          int     `json:"low_stock"`
}
