package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/estetica-admin/internal/domain/clinical"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

// Dataset é a carga inicial das quatro coleções. O processo nunca persiste
// nada de volta; o arquivo só existe para abrir a app com dados de trabalho.
type Dataset struct {
	Clients      []models.Client      `yaml:"clients"`
	Appointments []models.Appointment `yaml:"appointments"`
	Products     []models.Product     `yaml:"products"`
	Transactions []models.Transaction `yaml:"transactions"`
}

// Load lê um dataset YAML do caminho dado.
func Load(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse seed file: %w", err)
	}
	return ds, nil
}

// Apply normaliza as fichas clínicas (dados legados podem vir parciais) e
// troca as quatro coleções do store.
func Apply(st *store.Store, ds Dataset) {
	clients := make([]models.Client, len(ds.Clients))
	for i, c := range ds.Clients {
		c.ClinicalData = clinical.Normalize(c.ClinicalData)
		clients[i] = c
	}

	st.ReplaceClients(clients)
	st.ReplaceAppointments(append([]models.Appointment(nil), ds.Appointments...))
	st.ReplaceProducts(append([]models.Product(nil), ds.Products...))
	st.ReplaceTransactions(append([]models.Transaction(nil), ds.Transactions...))
}

// Default é a carga de demonstração do consultório; "today" entra na data das
// citas e no aniversário da María para o painel abrir com movimento.
func Default(today string) Dataset {
	return Dataset{
		Clients: []models.Client{
			{
				ID:        "1",
				Name:      "Ana Sofía Lopez",
				Phone:     "555-0101",
				Email:     "ana@example.com",
				BirthDate: "1990-05-15",
				IsVip:     true,
				History:   "Paciente presenta mejora en la zona T. Se recomienda continuar con hidratación profunda.",
				ClinicalData: models.ClinicalData{
					SkinType:         models.SkinCombination,
					HydrationLevel:   60,
					OilLevel:         40,
					SensitivityLevel: 80,
					TreatedAreas:     []string{"forehead", "nose"},
					Allergies:        "Nueces, Látex",
				},
				LastVisit: "2023-10-15",
			},
			{
				ID:        "2",
				Name:      "María Gonzalez",
				Phone:     "555-0102",
				Email:     "maria@example.com",
				BirthDate: today,
				IsVip:     false,
				History:   "Primera visita. Piel joven con leve tendencia acnéica.",
				ClinicalData: models.ClinicalData{
					SkinType:         models.SkinOily,
					HydrationLevel:   75,
					OilLevel:         90,
					SensitivityLevel: 20,
					TreatedAreas:     []string{"cheeks", "chin"},
					Allergies:        "Ninguna conocida",
				},
				LastVisit: "2023-10-20",
			},
			{
				ID:        "3",
				Name:      "Carla Ruiz",
				Phone:     "555-0103",
				Email:     "carla@example.com",
				BirthDate: "1985-11-30",
				IsVip:     true,
				History:   "Tratamiento anti-edad fase 2 completado. Reacción favorable al retinol.",
				ClinicalData: models.ClinicalData{
					SkinType:         models.SkinDry,
					HydrationLevel:   30,
					OilLevel:         10,
					SensitivityLevel: 50,
					TreatedAreas:     []string{"eyes", "forehead", "neck"},
					Allergies:        "Sulfatos",
				},
				LastVisit: "2023-10-18",
			},
		},
		Appointments: []models.Appointment{
			{ID: "1", ClientID: "1", ClientName: "Ana Sofía Lopez", Date: today, Time: "10:00", Service: "Hidratación Profunda", Status: "confirmed"},
			{ID: "2", ClientID: "2", ClientName: "María Gonzalez", Date: today, Time: "14:30", Service: "Limpieza Facial", Status: "pending"},
		},
		Products: []models.Product{
			{ID: "1", Name: "Aceite de Argán Puro", Quantity: 12, MinStock: 5, Price: 45.00, Unit: "Botella 50ml"},
			{ID: "2", Name: "Mascarilla de Arcilla", Quantity: 3, MinStock: 10, Price: 25.00, Unit: "Tarro 200g"},
			{ID: "3", Name: "Suero Vitamina C", Quantity: 8, MinStock: 5, Price: 60.00, Unit: "Gotero 30ml"},
			{ID: "4", Name: "Toallas Faciales", Quantity: 50, MinStock: 20, Price: 5.00, Unit: "Unidad"},
		},
		Transactions: []models.Transaction{
			{ID: "1", Date: "2023-10-01", Description: "Venta de productos", Amount: 350, Type: models.TransactionIncome},
			{ID: "2", Date: "2023-10-02", Description: "Reposición de stock", Amount: 120, Type: models.TransactionExpense},
			{ID: "3", Date: "2023-10-05", Description: "Servicios de Spa", Amount: 800, Type: models.TransactionIncome},
			{ID: "4", Date: "2023-10-10", Description: "Pago de servicios públicos", Amount: 200, Type: models.TransactionExpense},
		},
	}
}
