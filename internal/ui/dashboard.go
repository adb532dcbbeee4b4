package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"

	"github.com/BruksfildServices01/estetica-admin/internal/clock"
)

func (r *Router) showDashboard() {
	m := r.metrics.Execute(clock.Today())

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, color.New(color.Bold).Sprint("── Dashboard ──"))
	fmt.Fprintf(r.out, "  Ingresos Mensuales : %s\n", color.HiYellowString("$%.2f", m.MonthlyIncome))
	fmt.Fprintf(r.out, "  Citas Hoy          : %s\n", color.MagentaString("%d", m.TodayAppointments))
	fmt.Fprintf(r.out, "  Clientes VIP       : %s\n", color.CyanString("%d", m.VipClients))

	stock := color.GreenString("%d", m.LowStock)
	if m.LowStock > 0 {
		stock = color.RedString("%d  ⚠ Atención", m.LowStock)
	}
	fmt.Fprintf(r.out, "  Stock Alerta       : %s\n", stock)

	// série ilustrativa fixa, igual o painel sempre mostrou
	perf := []float64{400, 300, 550, 900}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, asciigraph.Plot(perf,
		asciigraph.Height(8),
		asciigraph.Caption("Rendimiento — flujo de clientes este mes"),
	))
}
