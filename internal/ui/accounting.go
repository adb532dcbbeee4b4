package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"github.com/BruksfildServices01/estetica-admin/internal/models"
)

func (r *Router) showAccounting() {
	sum := r.summary.Execute()
	series := r.cashFlow.Execute()

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, color.New(color.Bold).Sprint("── Módulo Contable ──"))
	fmt.Fprintf(r.out, "  Ingresos Totales : %s\n", color.GreenString("$%.2f", sum.TotalIncome))
	fmt.Fprintf(r.out, "  Gastos Totales   : %s\n", color.RedString("$%.2f", sum.TotalExpense))

	balance := color.GreenString("$%.2f", sum.Balance)
	if sum.Balance < 0 {
		balance = color.RedString("$%.2f", sum.Balance)
	}
	fmt.Fprintf(r.out, "  Balance Neto     : %s\n", balance)

	if len(series) > 1 {
		income := make([]float64, len(series))
		expense := make([]float64, len(series))
		for i, p := range series {
			income[i] = p.Income
			expense[i] = p.Expense
		}

		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, asciigraph.PlotMany([][]float64{income, expense},
			asciigraph.Height(8),
			asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
			asciigraph.Caption(fmt.Sprintf("Flujo de Caja (%s → %s)", series[0].Date, series[len(series)-1].Date)),
		))
	}

	// movimentos recentes: último lançamento primeiro
	snap := r.store.Snapshot()

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Movimientos Recientes")
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Fecha", "Descripción", "Monto"})
	for i := len(snap.Transactions) - 1; i >= 0; i-- {
		t := snap.Transactions[i]
		amount := color.GreenString("+$%.2f", t.Amount)
		if t.Type == models.TransactionExpense {
			amount = color.RedString("-$%.2f", t.Amount)
		}
		table.Append([]string{t.Date, t.Description, amount})
	}
	table.Render()
}
