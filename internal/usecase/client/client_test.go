package client

import (
	"reflect"
	"testing"

	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

func fixedToday() string { return "2023-10-20" }

func newStore(clients ...models.Client) *store.Store {
	st := store.New()
	st.ReplaceClients(clients)
	return st
}

func TestAddClient_DefaultsClinicalData(t *testing.T) {
	st := newStore()
	uc := NewAddClient(st, audit.NewRecorder(), fixedToday)

	c := uc.Execute(AddClientInput{Name: "Lucía", Phone: "555-0104"})

	if c.ID == "" {
		t.Fatal("no id assigned")
	}
	if c.LastVisit != "2023-10-20" {
		t.Errorf("LastVisit = %q, want today", c.LastVisit)
	}

	cd := c.ClinicalData
	if cd.SkinType != models.SkinNormal || cd.HydrationLevel != 50 ||
		cd.OilLevel != 50 || cd.SensitivityLevel != 20 {
		t.Errorf("clinical defaults not applied: %+v", cd)
	}

	snap := st.Snapshot()
	if len(snap.Clients) != 1 || snap.Clients[0].ID != c.ID {
		t.Errorf("client not appended: %+v", snap.Clients)
	}
}

func TestUpdateClient_NotFoundIsNoop(t *testing.T) {
	existing := models.Client{ID: "1", Name: "Ana"}
	st := newStore(existing)
	uc := NewUpdateClient(st, audit.NewRecorder())

	got := uc.Execute(models.Client{ID: "missing", Name: "Fantasma"})

	if got != store.NotFoundNoop {
		t.Errorf("result = %v, want NotFoundNoop", got)
	}

	snap := st.Snapshot()
	if len(snap.Clients) != 1 || snap.Clients[0].Name != "Ana" {
		t.Errorf("collection changed on noop: %+v", snap.Clients)
	}
}

func TestUpdateClient_ClampsLevels(t *testing.T) {
	st := newStore(models.Client{ID: "1", Name: "Ana"})
	uc := NewUpdateClient(st, audit.NewRecorder())

	c := models.Client{ID: "1", Name: "Ana"}
	c.ClinicalData = models.ClinicalData{
		SkinType:         models.SkinDry,
		HydrationLevel:   150,
		OilLevel:         -5,
		SensitivityLevel: 30,
	}

	if got := uc.Execute(c); got != store.Applied {
		t.Fatalf("result = %v, want Applied", got)
	}

	cd := st.Snapshot().Clients[0].ClinicalData
	if cd.HydrationLevel != 100 {
		t.Errorf("HydrationLevel = %d, want 100", cd.HydrationLevel)
	}
	if cd.OilLevel != 0 {
		t.Errorf("OilLevel = %d, want 0", cd.OilLevel)
	}
}

func TestToggleTreatedArea_PairRestoresState(t *testing.T) {
	c := models.Client{ID: "1", Name: "Ana"}
	c.ClinicalData = models.ClinicalData{
		SkinType:     models.SkinNormal,
		TreatedAreas: []string{"nose"},
	}
	st := newStore(c)
	uc := NewToggleTreatedArea(st, audit.NewRecorder())

	if got := uc.Execute("1", "forehead"); got != store.Applied {
		t.Fatalf("first toggle = %v", got)
	}
	after := st.Snapshot().Clients[0].ClinicalData.TreatedAreas
	if want := []string{"nose", "forehead"}; !reflect.DeepEqual(after, want) {
		t.Fatalf("after first toggle = %v, want %v", after, want)
	}

	if got := uc.Execute("1", "forehead"); got != store.Applied {
		t.Fatalf("second toggle = %v", got)
	}
	restored := st.Snapshot().Clients[0].ClinicalData.TreatedAreas
	if want := []string{"nose"}; !reflect.DeepEqual(restored, want) {
		t.Errorf("toggle pair did not restore state: %v", restored)
	}

	if got := uc.Execute("missing", "forehead"); got != store.NotFoundNoop {
		t.Errorf("missing client = %v, want NotFoundNoop", got)
	}
}

func TestHasBirthday(t *testing.T) {
	tests := []struct {
		name      string
		birthDate string
		today     string
		want      bool
	}{
		{"same month and day", "1990-05-15", "2023-05-15", true},
		{"same day other month", "1990-05-15", "2023-06-15", false},
		{"same month other day", "1990-05-15", "2023-05-14", false},
		{"year ignored", "2001-12-31", "2023-12-31", true},
		{"empty birth date", "", "2023-05-15", false},
		{"malformed birth date", "15/05/1990", "2023-05-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasBirthday(tt.birthDate, tt.today); got != tt.want {
				t.Errorf("HasBirthday(%q, %q) = %v, want %v", tt.birthDate, tt.today, got, tt.want)
			}
		})
	}
}

func TestListCards_FilterAndBadges(t *testing.T) {
	st := newStore(
		models.Client{ID: "1", Name: "Ana Sofía Lopez", Email: "ana@example.com", IsVip: true, BirthDate: "1990-05-15"},
		models.Client{ID: "2", Name: "María Gonzalez", Email: "maria@example.com", BirthDate: "1991-10-20"},
	)
	uc := NewListCards(st)

	all := uc.Execute("", "2023-10-20")
	if len(all) != 2 {
		t.Fatalf("no filter: %d cards", len(all))
	}
	if !all[0].IsVip || all[0].IsBirthday {
		t.Errorf("Ana badges wrong: %+v", all[0])
	}
	if all[1].IsVip || !all[1].IsBirthday {
		t.Errorf("María badges wrong: %+v", all[1])
	}

	byName := uc.Execute("maría", "2023-10-20")
	if len(byName) != 1 || byName[0].ID != "2" {
		t.Errorf("name filter: %+v", byName)
	}

	byEmail := uc.Execute("ANA@", "2023-10-20")
	if len(byEmail) != 1 || byEmail[0].ID != "1" {
		t.Errorf("email filter: %+v", byEmail)
	}
}
