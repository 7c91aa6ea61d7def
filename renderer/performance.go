package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/ehsanjabbari/shoeseli"
)

func PerformanceMarkdown(r *shoeseli.PerformanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Top Sellers, last %s days", digits(r.PeriodDays)))

	if r.NoData() {
		doc.PlainText("No sales in this period.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Rank", "Product", "Units Sold", "Sales"},
	}
	for i, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			digits(i + 1),
			row.ProductName,
			digits(row.TotalSold),
			digits(row.SaleCount),
		})
	}
	doc.Table(table)
	return doc.String()
}
