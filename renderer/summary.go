// Package renderer turns ledger reports into markdown documents.
//
// All numbers and dates are rendered with Persian digit glyphs; the
// surrounding markdown structure stays ASCII so any terminal renderer can
// process it.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/ehsanjabbari/shoeseli"
	"github.com/ehsanjabbari/shoeseli/hijri"
)

// digits renders an integer with Persian digit glyphs.
func digits(n int) string {
	return hijri.ToLocaleDigits(fmt.Sprintf("%d", n))
}

// localized substitutes Persian digit glyphs into a stored date or id.
func localized(s string) string {
	return hijri.ToLocaleDigits(s)
}

func SummaryMarkdown(s *shoeseli.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Inventory Summary on %s", s.Date.Display()))

	doc.Table(md.TableSet{
		Header: []string{"Counter", "Value"},
		Rows: [][]string{
			{"Products", digits(s.TotalProducts)},
			{"Sales today", digits(s.TodaySales)},
			{"Sales this month", digits(s.MonthlySales)},
			{"Low stock", digits(s.LowStock)},
		},
	})

	if len(s.Recent) > 0 {
		doc.H2("Recent Sales")
		doc.Table(saleRowsTable(s.Recent))
	}

	return doc.String()
}

// SalesMarkdown renders a list of resolved sales, most recent first.
func SalesMarkdown(rows []shoeseli.SaleRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales")
	if len(rows) == 0 {
		doc.PlainText("No sales recorded.")
		return doc.String()
	}
	doc.Table(saleRowsTable(rows))
	return doc.String()
}

// EntriesMarkdown renders a list of resolved stock entries, most recent
// first.
func EntriesMarkdown(rows []shoeseli.EntryRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Entries")
	if len(rows) == 0 {
		doc.PlainText("No entries recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Product", "Quantity", "ID"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			localized(r.Date),
			r.ProductName,
			digits(r.Quantity),
			fmt.Sprintf("%d", r.ID),
		})
	}
	doc.Table(table)
	return doc.String()
}

func saleRowsTable(rows []shoeseli.SaleRow) md.TableSet {
	table := md.TableSet{
		Header: []string{"Date", "Product", "Store", "Quantity", "ID"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			localized(r.Date),
			r.ProductName,
			localized(r.StoreID),
			digits(r.Quantity),
			fmt.Sprintf("%d", r.ID),
		})
	}
	return table
}
