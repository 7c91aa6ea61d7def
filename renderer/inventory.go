package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/ehsanjabbari/shoeseli"
)

// InventoryMarkdown renders the product list with stock levels and status.
func InventoryMarkdown(products []shoeseli.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")
	if len(products) == 0 {
		doc.PlainText("No products.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Name", "Category", "Stock", "Sold", "Status"},
	}
	total := 0
	for _, p := range products {
		total += p.CurrentStock
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Category,
			digits(p.CurrentStock),
			digits(p.TotalSold),
			p.Status().String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%s: %s", md.Bold("Total units in stock"), digits(total)))
	return doc.String()
}

// ProductMarkdown renders a single product card.
func ProductMarkdown(p *shoeseli.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(p.Name)
	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"ID", fmt.Sprintf("%d", p.ID)},
			{"Category", p.Category},
			{"Initial quantity", digits(p.InitialQuantity)},
			{"Current stock", digits(p.CurrentStock)},
			{"Total sold", digits(p.TotalSold)},
			{"Status", p.Status().String()},
			{"Created", localized(p.CreatedAt)},
		},
	})
	return doc.String()
}
