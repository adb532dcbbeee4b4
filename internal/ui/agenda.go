package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/BruksfildServices01/estetica-admin/internal/clock"
	domain "github.com/BruksfildServices01/estetica-admin/internal/domain/appointment"
	ucAppointment "github.com/BruksfildServices01/estetica-admin/internal/usecase/appointment"
	"github.com/BruksfildServices01/estetica-admin/internal/validators"
)

func statusLabel(s string) string {
	switch domain.Status(s) {
	case domain.StatusPending:
		return color.YellowString("Pendiente")
	case domain.StatusConfirmed:
		return color.BlueString("Confirmada")
	case domain.StatusCompleted:
		return color.GreenString("Completada")
	case domain.StatusCancelled:
		return color.RedString("Cancelada")
	}
	return s
}

func (r *Router) showAgenda() {
	for {
		list := r.listAppointments.Execute()

		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, color.New(color.Bold).Sprint("── Agenda de Citas ──"))

		table := tablewriter.NewWriter(r.out)
		table.SetHeader([]string{"#", "Fecha", "Hora", "Servicio", "Cliente", "Estado"})
		for i, ap := range list {
			table.Append([]string{
				fmt.Sprintf("%d", i+1),
				ap.Date, ap.Time, ap.Service, ap.ClientName,
				statusLabel(ap.Status),
			})
		}
		table.Render()

		choice, ok := r.readLine("[n]ueva  [c]ompletar  [x]cancelar  [enter]volver > ")
		if !ok || choice == "" {
			return
		}

		switch choice {
		case "n":
			r.newAppointment()
		case "c":
			r.changeStatus(domain.StatusCompleted)
		case "x":
			r.changeStatus(domain.StatusCancelled)
		}
	}
}

func (r *Router) newAppointment() {
	snap := r.store.Snapshot()
	if len(snap.Clients) == 0 {
		fmt.Fprintln(r.out, "sin clientes registrados")
		return
	}

	for i, c := range snap.Clients {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, c.Name)
	}
	idx, err := r.promptIndex("Cliente #", len(snap.Clients))
	if err != nil {
		r.fail(err)
		return
	}

	date := r.promptOptional("Fecha (YYYY-MM-DD)", clock.Today())
	if !validators.IsDateValid(date) {
		fmt.Fprintln(r.out, "✗ fecha inválida")
		return
	}

	timeStr, err := r.promptRequired("Hora (HH:MM)")
	if err != nil {
		r.fail(err)
		return
	}
	if !validators.IsTimeValid(timeStr) {
		fmt.Fprintln(r.out, "✗ hora inválida")
		return
	}

	service, err := r.promptRequired("Servicio")
	if err != nil {
		r.fail(err)
		return
	}

	ap := r.createAppointment.Execute(ucAppointment.CreateAppointmentInput{
		ClientID: snap.Clients[idx].ID,
		Date:     date,
		Time:     timeStr,
		Service:  service,
	})
	fmt.Fprintf(r.out, "✓ cita creada para %s (%s %s)\n", ap.ClientName, ap.Date, ap.Time)
}

// changeStatus oferece só as citas elegíveis: "completar" some quando já está
// completada, "cancelar" quando já está cancelada — o resto fica alcançável.
func (r *Router) changeStatus(target domain.Status) {
	snap := r.store.Snapshot()

	eligible := make([]int, 0, len(snap.Appointments))
	for i, ap := range snap.Appointments {
		current := domain.Status(ap.Status)
		if target == domain.StatusCompleted && !domain.CanOfferComplete(current) {
			continue
		}
		if target == domain.StatusCancelled && !domain.CanOfferCancel(current) {
			continue
		}
		eligible = append(eligible, i)
	}

	if len(eligible) == 0 {
		fmt.Fprintln(r.out, "ninguna cita elegible")
		return
	}

	for n, i := range eligible {
		ap := snap.Appointments[i]
		fmt.Fprintf(r.out, "  %d) %s %s — %s (%s)\n", n+1, ap.Date, ap.Time, ap.ClientName, statusLabel(ap.Status))
	}

	n, err := r.promptIndex("Cita #", len(eligible))
	if err != nil {
		r.fail(err)
		return
	}

	r.updateStatus.Execute(snap.Appointments[eligible[n]].ID, target)
}
