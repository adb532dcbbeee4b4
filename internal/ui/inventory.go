package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	ucInventory "github.com/BruksfildServices01/estetica-admin/internal/usecase/inventory"
)

func (r *Router) showInventory() {
	for {
		snap := r.store.Snapshot()

		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, color.New(color.Bold).Sprint("── Inventario ──"))
		fmt.Fprintf(r.out, "Total Productos: %d\n", len(snap.Products))

		table := tablewriter.NewWriter(r.out)
		table.SetHeader([]string{"#", "Producto", "Stock", "Unidad", "Precio", "Estado"})
		for i, p := range snap.Products {
			state := color.GreenString("En Orden")
			if p.LowStock() {
				state = color.RedString("Reabastecer")
			}
			table.Append([]string{
				fmt.Sprintf("%d", i+1),
				p.Name,
				fmt.Sprintf("%d", p.Quantity),
				p.Unit,
				fmt.Sprintf("$%.2f", p.Price),
				state,
			})
		}
		table.Render()

		choice, ok := r.readLine("[+]stock  [-]stock  [a]gregar  [enter]volver > ")
		if !ok || choice == "" {
			return
		}

		switch choice {
		case "+":
			r.adjust(1)
		case "-":
			r.adjust(-1)
		case "a":
			r.newProduct()
		}
	}
}

func (r *Router) adjust(sign int) {
	snap := r.store.Snapshot()
	if len(snap.Products) == 0 {
		fmt.Fprintln(r.out, "inventario vacío")
		return
	}
	idx, err := r.promptIndex("Producto #", len(snap.Products))
	if err != nil {
		r.fail(err)
		return
	}
	delta, err := r.promptInt("Cantidad")
	if err != nil {
		r.fail(err)
		return
	}
	r.adjustStock.Execute(snap.Products[idx].ID, sign*delta)
}

func (r *Router) newProduct() {
	name, err := r.promptRequired("Nombre")
	if err != nil {
		r.fail(err)
		return
	}

	in := ucInventory.AddProductInput{Name: name}

	if v := r.promptOptional("Cantidad", ""); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &in.Quantity); err != nil {
			fmt.Fprintln(r.out, "✗ número inválido")
			return
		}
	}
	if v := r.promptOptional("Precio", ""); v != "" {
		if _, err := fmt.Sscanf(v, "%f", &in.Price); err != nil {
			fmt.Fprintln(r.out, "✗ número inválido")
			return
		}
	}
	if v := r.promptOptional("Stock mínimo", ""); v != "" {
		var ms int
		if _, err := fmt.Sscanf(v, "%d", &ms); err != nil {
			fmt.Fprintln(r.out, "✗ número inválido")
			return
		}
		in.MinStock = &ms
	}
	in.Unit = r.promptOptional("Unidad", "")

	p := r.addProduct.Execute(in)
	fmt.Fprintf(r.out, "✓ producto %s agregado (%s, min %d)\n", p.Name, p.Unit, p.MinStock)
}
