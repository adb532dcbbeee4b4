package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	"github.com/BruksfildServices01/estetica-admin/internal/clock"
	"github.com/BruksfildServices01/estetica-admin/internal/config"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
	ucAccounting "github.com/BruksfildServices01/estetica-admin/internal/usecase/accounting"
	ucAppointment "github.com/BruksfildServices01/estetica-admin/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/estetica-admin/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/estetica-admin/internal/usecase/dashboard"
	ucInventory "github.com/BruksfildServices01/estetica-admin/internal/usecase/inventory"
)

// Router liga o console às views, como routes.RegisterRoutes ligava o gin aos
// handlers. Cada view lê um snapshot fresco, renderiza e dispara comandos.
type Router struct {
	in  *bufio.Scanner
	out io.Writer
	cfg *config.Config

	store *store.Store

	// ======================================================
	// USE CASES
	// ======================================================

	addClient    *ucClient.AddClient
	updateClient *ucClient.UpdateClient
	toggleArea   *ucClient.ToggleTreatedArea
	listCards    *ucClient.ListCards

	createAppointment *ucAppointment.CreateAppointment
	updateStatus      *ucAppointment.UpdateStatus
	listAppointments  *ucAppointment.List

	adjustStock *ucInventory.AdjustStock
	addProduct  *ucInventory.AddProduct

	metrics *ucDashboard.Metrics

	summary  *ucAccounting.Summary
	cashFlow *ucAccounting.CashFlow
}

func NewRouter(
	in io.Reader,
	out io.Writer,
	st *store.Store,
	rec *audit.Recorder,
	cfg *config.Config,
) *Router {
	return &Router{
		in:    bufio.NewScanner(in),
		out:   out,
		cfg:   cfg,
		store: st,

		addClient:    ucClient.NewAddClient(st, rec, clock.Today),
		updateClient: ucClient.NewUpdateClient(st, rec),
		toggleArea:   ucClient.NewToggleTreatedArea(st, rec),
		listCards:    ucClient.NewListCards(st),

		createAppointment: ucAppointment.NewCreateAppointment(st, rec),
		updateStatus:      ucAppointment.NewUpdateStatus(st, rec),
		listAppointments:  ucAppointment.NewList(st),

		adjustStock: ucInventory.NewAdjustStock(st, rec),
		addProduct:  ucInventory.NewAddProduct(st, rec),

		metrics: ucDashboard.NewMetrics(st),

		summary:  ucAccounting.NewSummary(st),
		cashFlow: ucAccounting.NewCashFlow(st),
	}
}

// Run é o loop principal: menu → view → de volta ao menu. "0" encerra.
func (r *Router) Run() error {
	for {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, color.New(color.Bold).Sprint(r.cfg.AppName))
		fmt.Fprintln(r.out, "  1) Dashboard")
		fmt.Fprintln(r.out, "  2) Agenda")
		fmt.Fprintln(r.out, "  3) Pacientes")
		fmt.Fprintln(r.out, "  4) Inventario")
		fmt.Fprintln(r.out, "  5) Contable")
		fmt.Fprintln(r.out, "  0) Salir")

		choice, ok := r.readLine("> ")
		if !ok {
			return nil // EOF encerra como "salir"
		}

		switch choice {
		case "1":
			r.showDashboard()
		case "2":
			r.showAgenda()
		case "3":
			r.showClients()
		case "4":
			r.showInventory()
		case "5":
			r.showAccounting()
		case "0", "q":
			return nil
		default:
			fmt.Fprintln(r.out, "opción inválida")
		}
	}
}
