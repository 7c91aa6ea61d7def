package renderer

import (
	"strings"
	"testing"

	"github.com/ehsanjabbari/shoeseli"
)

func testLedger(t *testing.T) *shoeseli.Ledger {
	t.Helper()
	l := shoeseli.NewLedger()
	p, err := l.AddProduct("فندی رضا", "کفش ورزشی", 10)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordSale(p.ID, "151", 2, "1403/07/09", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordSale(p.ID, "168", 3, "1403/07/09", ""); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestInventoryMarkdown(t *testing.T) {
	l := testLedger(t)
	got := InventoryMarkdown(l.Products())

	for _, want := range []string{
		"# Inventory",
		"فندی رضا",
		"کفش ورزشی",
		"۵", // current stock after two sales
		"low",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestInventoryMarkdownEmpty(t *testing.T) {
	got := InventoryMarkdown(nil)
	if !strings.Contains(got, "No products.") {
		t.Errorf("got:\n%s", got)
	}
}

func TestProductMarkdown(t *testing.T) {
	l := testLedger(t)
	p := l.Products()[0]
	got := ProductMarkdown(&p)

	for _, want := range []string{"# فندی رضا", "Current stock", "۵", "Total sold"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestDailyMarkdown(t *testing.T) {
	l := testLedger(t)
	got := DailyMarkdown(l.DailyReport("1403/07/09"))

	for _, want := range []string{
		"# Daily Sales for ۱۴۰۳/۰۷/۰۹",
		"۱۵۱",
		"۱۶۸",
		"**۵**", // total
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestDailyMarkdownNoData(t *testing.T) {
	l := shoeseli.NewLedger()
	got := DailyMarkdown(l.DailyReport("1400/01/01"))
	if !strings.Contains(got, "No sales recorded on this date.") {
		t.Errorf("got:\n%s", got)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	l := testLedger(t)

	// Stored year-1403 dates re-derive to bucket month 1, year 781.
	got := MonthlyMarkdown(l.MonthlyReport(1, 781))
	for _, want := range []string{"# Monthly Sales for فروردین ۷۸۱", "۱۴۰۳/۰۷/۰۹", "۱۵۱, ۱۶۸"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestMonthlyMarkdownOutOfRangeMonth(t *testing.T) {
	got := MonthlyMarkdown(&shoeseli.MonthlyReport{Month: 99, Year: 1403})
	if !strings.Contains(got, "۹۹/۱۴۰۳") {
		t.Errorf("got:\n%s", got)
	}
}

func TestPerformanceMarkdown(t *testing.T) {
	got := PerformanceMarkdown(&shoeseli.PerformanceReport{
		PeriodDays: 30,
		Rows: []shoeseli.PerformanceRow{
			{ProductID: 1, ProductName: "فندی رضا", TotalSold: 5, SaleCount: 2},
		},
	})
	for _, want := range []string{"last ۳۰ days", "فندی رضا", "۵", "۲"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestPerformanceMarkdownNoData(t *testing.T) {
	got := PerformanceMarkdown(&shoeseli.PerformanceReport{PeriodDays: 30})
	if !strings.Contains(got, "No sales in this period.") {
		t.Errorf("got:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	l := testLedger(t)
	got := SummaryMarkdown(l.Summary())

	for _, want := range []string{"# Inventory Summary on", "Low stock", "Recent Sales"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestSalesMarkdown(t *testing.T) {
	l := testLedger(t)
	got := SalesMarkdown(l.SaleRows(-1))
	for _, want := range []string{"# Sales", "۱۴۰۳/۰۷/۰۹", "فندی رضا"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	if empty := SalesMarkdown(nil); !strings.Contains(empty, "No sales recorded.") {
		t.Errorf("got:\n%s", empty)
	}
}

func TestEntriesMarkdown(t *testing.T) {
	l := testLedger(t)
	p := l.Products()[0]
	if _, err := l.RecordEntry(p.ID, 4, "1403/08/01", ""); err != nil {
		t.Fatal(err)
	}

	got := EntriesMarkdown(l.EntryRows(-1))
	for _, want := range []string{"# Stock Entries", "۱۴۰۳/۰۸/۰۱", "۴"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	if empty := EntriesMarkdown(nil); !strings.Contains(empty, "No entries recorded.") {
		t.Errorf("got:\n%s", empty)
	}
}
