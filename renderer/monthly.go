package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/ehsanjabbari/shoeseli"
	"github.com/ehsanjabbari/shoeseli/hijri"
)

// monthTitle names a Persian month for report headings. Out-of-range
// month numbers fall back to the bare number.
func monthTitle(month, year int) string {
	if month >= 1 && month <= 12 {
		return fmt.Sprintf("%s %s", hijri.MonthNames[month-1], digits(year))
	}
	return fmt.Sprintf("%s/%s", digits(month), digits(year))
}

func MonthlyMarkdown(r *shoeseli.MonthlyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Sales for %s", monthTitle(r.Month, r.Year)))

	if r.NoData() {
		doc.PlainText("No sales recorded in this month.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Stores", "Quantity"},
	}
	for _, day := range r.Days {
		table.Rows = append(table.Rows, []string{
			localized(day.Date),
			localized(strings.Join(day.Stores, ", ")),
			digits(day.Quantity),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", md.Bold(digits(r.Total)),
	})
	doc.Table(table)
	return doc.String()
}
