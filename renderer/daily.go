package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/ehsanjabbari/shoeseli"
)

func DailyMarkdown(r *shoeseli.DailyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Sales for %s", localized(r.Date)))

	if r.NoData() {
		doc.PlainText("No sales recorded on this date.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Product", "Store", "Quantity"},
	}
	for _, line := range r.Lines {
		table.Rows = append(table.Rows, []string{
			line.ProductName,
			localized(line.StoreID),
			digits(line.Quantity),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", md.Bold(digits(r.Total)),
	})
	doc.Table(table)
	return doc.String()
}
