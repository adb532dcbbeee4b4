package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/BruksfildServices01/estetica-admin/internal/clock"
	"github.com/BruksfildServices01/estetica-admin/internal/domain/clinical"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	ucClient "github.com/BruksfildServices01/estetica-admin/internal/usecase/client"
	"github.com/BruksfildServices01/estetica-admin/internal/validators"
)

func (r *Router) showClients() {
	query := ""
	for {
		cards := r.listCards.Execute(query, clock.Today())

		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, color.New(color.Bold).Sprint("── Base de Pacientes ──"))

		table := tablewriter.NewWriter(r.out)
		table.SetHeader([]string{"#", "Nombre", "Teléfono", "Email", "Piel", "Última visita", ""})
		for i, c := range cards {
			badges := ""
			if c.IsVip {
				badges += color.YellowString("♛ VIP ")
			}
			if c.IsBirthday {
				badges += color.HiMagentaString("🎁 Cumple")
			}
			table.Append([]string{
				fmt.Sprintf("%d", i+1),
				c.Name, c.Phone, c.Email, c.SkinType, c.LastVisit, badges,
			})
		}
		table.Render()

		choice, ok := r.readLine("[a]gregar  [f]icha  [b]uscar  [enter]volver > ")
		if !ok || choice == "" {
			return
		}

		switch choice {
		case "a":
			r.newClient()
		case "f":
			if c, ok := r.selectClient(); ok {
				r.editClinicalRecord(c.ID)
			}
		case "b":
			query = r.promptOptional("Buscar paciente", "")
		}
	}
}

func (r *Router) newClient() {
	name, err := r.promptRequired("Nombre")
	if err != nil {
		r.fail(err)
		return
	}
	phone, err := r.promptRequired("Teléfono")
	if err != nil {
		r.fail(err)
		return
	}

	email := r.promptOptional("Email", "")
	if email != "" && !validators.IsEmailValid(email) {
		fmt.Fprintln(r.out, "✗ email inválido")
		return
	}

	birth := r.promptOptional("Nacimiento (YYYY-MM-DD)", "")
	if birth != "" && !validators.IsDateValid(birth) {
		fmt.Fprintln(r.out, "✗ fecha inválida")
		return
	}

	vip := r.promptOptional("VIP (s/n)", "n") == "s"

	c := r.addClient.Execute(ucClient.AddClientInput{
		Name:      name,
		Phone:     phone,
		Email:     email,
		BirthDate: birth,
		IsVip:     vip,
	})
	fmt.Fprintf(r.out, "✓ paciente %s registrado\n", c.Name)
}

func (r *Router) selectClient() (models.Client, bool) {
	snap := r.store.Snapshot()
	if len(snap.Clients) == 0 {
		fmt.Fprintln(r.out, "sin pacientes")
		return models.Client{}, false
	}
	for i, c := range snap.Clients {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, c.Name)
	}
	idx, err := r.promptIndex("Paciente #", len(snap.Clients))
	if err != nil {
		r.fail(err)
		return models.Client{}, false
	}
	return snap.Clients[idx], true
}

// editClinicalRecord é o editor da ficha: tipo de piel, gauges (clamp fica no
// core), mapa facial, alergias e notas de evolución. Cada ação relê o cliente
// do snapshot para nunca editar em cima de estado velho.
func (r *Router) editClinicalRecord(clientID string) {
	for {
		c, ok := r.findClient(clientID)
		if !ok {
			return
		}
		cd := c.ClinicalData

		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "%s — %s\n", color.New(color.Bold).Sprint(c.Name), cd.SkinType)
		fmt.Fprintf(r.out, "  Hidratación %3d%%  Grasa %3d%%  Sensibilidad %3d%%\n",
			cd.HydrationLevel, cd.OilLevel, cd.SensitivityLevel)
		fmt.Fprintf(r.out, "  Zonas tratadas: %v\n", cd.TreatedAreas)
		fmt.Fprintf(r.out, "  Alergias: %s\n", cd.Allergies)
		fmt.Fprintf(r.out, "  Notas: %s\n", c.History)

		choice, ok := r.readLine("[p]iel  [g]auges  [z]ona  [l]ergias  [n]otas  [enter]volver > ")
		if !ok || choice == "" {
			return
		}

		switch choice {
		case "p":
			r.setSkinType(c)
		case "g":
			r.setLevels(c)
		case "z":
			r.toggleZone(c)
		case "l":
			c.ClinicalData.Allergies = r.promptOptional("Alergias", cd.Allergies)
			r.updateClient.Execute(c)
		case "n":
			c.History = r.promptOptional("Notas de evolución", c.History)
			r.updateClient.Execute(c)
		}
	}
}

func (r *Router) findClient(id string) (models.Client, bool) {
	snap := r.store.Snapshot()
	for _, c := range snap.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

func (r *Router) setSkinType(c models.Client) {
	types := []models.SkinType{
		models.SkinDry, models.SkinCombination, models.SkinOily,
		models.SkinNormal, models.SkinSensitive,
	}
	for i, t := range types {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, t)
	}
	idx, err := r.promptIndex("Tipo #", len(types))
	if err != nil {
		r.fail(err)
		return
	}
	c.ClinicalData.SkinType = types[idx]
	r.updateClient.Execute(c)
}

// setLevels aceita qualquer número; valores fora de [0,100] são ajustados
// pelo core, não rejeitados aqui.
func (r *Router) setLevels(c models.Client) {
	h, err := r.promptInt("Hidratación (0-100)")
	if err != nil {
		r.fail(err)
		return
	}
	o, err := r.promptInt("Grasa (0-100)")
	if err != nil {
		r.fail(err)
		return
	}
	s, err := r.promptInt("Sensibilidad (0-100)")
	if err != nil {
		r.fail(err)
		return
	}

	c.ClinicalData.HydrationLevel = h
	c.ClinicalData.OilLevel = o
	c.ClinicalData.SensitivityLevel = s
	r.updateClient.Execute(c)
}

func (r *Router) toggleZone(c models.Client) {
	for i, z := range clinical.Zones {
		fmt.Fprintf(r.out, "  %d) %s (%s)\n", i+1, z.Name, z.ID)
	}
	idx, err := r.promptIndex("Zona #", len(clinical.Zones))
	if err != nil {
		r.fail(err)
		return
	}
	r.toggleArea.Execute(c.ID, clinical.Zones[idx].ID)
}
