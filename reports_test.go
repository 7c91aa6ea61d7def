package shoeseli

import (
	"testing"
	"time"

	"github.com/ehsanjabbari/shoeseli/hijri"
)

func TestTodaySales(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 10)

	today, _ := l.RecordSale(p.ID, "151", 2, "", "") // defaults to today
	l.RecordSale(p.ID, "151", 1, "1402/05/01", "")   // explicit other date

	got := l.TodaySales()
	if len(got) != 1 || got[0].ID != today.ID {
		t.Errorf("TodaySales = %v, want exactly the defaulted sale", got)
	}
}

func TestSalesOnDate(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 10)
	l.RecordSale(p.ID, "151", 2, "1403/07/09", "")
	l.RecordSale(p.ID, "168", 1, "1403/07/10", "")

	if got := l.SalesOnDate("1403/07/09"); len(got) != 1 || got[0].Quantity != 2 {
		t.Errorf("SalesOnDate(1403/07/09) = %v", got)
	}
	if got := l.SalesOnDate("1400/01/01"); len(got) != 0 {
		t.Errorf("SalesOnDate with no match = %v, want empty", got)
	}
}

func TestSalesInPersianMonth(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 10)
	stored := "1403/07/09"
	l.RecordSale(p.ID, "151", 2, stored, "")

	// The filter re-derives the bucket by running the stored triple
	// through the Gregorian conversion again; the expected bucket comes
	// from the same arithmetic.
	bucket := hijri.FromGregorian(1403, time.Month(7), 9)

	if got := l.SalesInPersianMonth(bucket.Month, bucket.Year); len(got) != 1 {
		t.Errorf("SalesInPersianMonth(%d, %d) = %v, want the sale", bucket.Month, bucket.Year, got)
	}
	if got := l.SalesInPersianMonth(bucket.Month, bucket.Year+1); len(got) != 0 {
		t.Errorf("wrong year matched: %v", got)
	}
}

func TestMonthlySales(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 10)

	// Stored dates in the same Gregorian year as the fixed clock re-derive
	// to today's bucket; an earlier year does not.
	l.RecordSale(p.ID, "151", 2, "2024/05/10", "")
	l.RecordSale(p.ID, "151", 1, "2022/01/01", "")

	got := l.MonthlySales()
	if len(got) != 1 || got[0].SaleDate != "2024/05/10" {
		t.Errorf("MonthlySales = %v, want only the 2024-bucketed sale", got)
	}
}

func TestMonthlySalesSkipsUnparseableDates(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 10)
	l.RecordSale(p.ID, "151", 1, "not-a-date", "")

	if got := l.MonthlySales(); len(got) != 0 {
		t.Errorf("unparseable date included in month filter: %v", got)
	}
}

func TestProductPerformance(t *testing.T) {
	l := newTestLedger(t)
	a, _ := l.AddProduct("A", "c", 20)
	b, _ := l.AddProduct("B", "c", 20)

	// Same Gregorian year as the clock: re-derived bucket equals today's,
	// day difference 0.
	l.RecordSale(a.ID, "151", 3, "2024/02/02", "")
	l.RecordSale(b.ID, "151", 5, "2024/06/01", "")
	l.RecordSale(b.ID, "168", 2, "2024/06/02", "")

	r := l.ProductPerformance(30)
	if r.NoData() {
		t.Fatal("expected rows")
	}
	if len(r.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(r.Rows))
	}
	// B sold 7 across 2 sales, A sold 3 across 1; descending by units.
	if r.Rows[0].ProductName != "B" || r.Rows[0].TotalSold != 7 || r.Rows[0].SaleCount != 2 {
		t.Errorf("top row = %+v", r.Rows[0])
	}
	if r.Rows[1].ProductName != "A" || r.Rows[1].TotalSold != 3 || r.Rows[1].SaleCount != 1 {
		t.Errorf("second row = %+v", r.Rows[1])
	}
}

func TestProductPerformanceOutsidePeriod(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 20)

	// A 1990 date re-derives to a bucket hundreds of years of coarse days
	// away from today.
	l.RecordSale(p.ID, "151", 3, "1990/01/01", "")

	if r := l.ProductPerformance(30); !r.NoData() {
		t.Errorf("sales outside the period included: %+v", r.Rows)
	}
}

func TestProductPerformanceTopTen(t *testing.T) {
	l := newTestLedger(t)
	for i := 0; i < 12; i++ {
		p, _ := l.AddProduct("P", "c", 100)
		l.RecordSale(p.ID, "151", i+1, "2024/06/01", "")
	}
	r := l.ProductPerformance(30)
	if len(r.Rows) != 10 {
		t.Errorf("rows = %d, want capped at 10", len(r.Rows))
	}
	if r.Rows[0].TotalSold != 12 {
		t.Errorf("top seller = %d units, want 12", r.Rows[0].TotalSold)
	}
}

func TestDailyReport(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 10)
	l.RecordSale(p.ID, "151", 2, "1403/07/09", "")
	l.RecordSale(p.ID, "168", 3, "1403/07/09", "")

	r := l.DailyReport("1403/07/09")
	if r.NoData() {
		t.Fatal("expected lines")
	}
	if len(r.Lines) != 2 || r.Total != 5 {
		t.Errorf("lines=%d total=%d, want 2 lines, total 5", len(r.Lines), r.Total)
	}
	if r.Lines[0].ProductName != "X" || r.Lines[0].StoreID != "151" {
		t.Errorf("first line = %+v", r.Lines[0])
	}

	if empty := l.DailyReport("1400/01/01"); !empty.NoData() {
		t.Errorf("expected no data for an empty date")
	}
}

func TestDailyReportOrphanedProduct(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 10)
	l.RecordSale(p.ID, "151", 2, "1403/07/09", "")
	l.DeleteProduct(p.ID)

	r := l.DailyReport("1403/07/09")
	if len(r.Lines) != 1 || r.Lines[0].ProductName != DeletedProductLabel {
		t.Errorf("orphaned sale line = %+v, want %q", r.Lines, DeletedProductLabel)
	}
}

func TestMonthlyReport(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 50)

	stored := "1403/07/09"
	other := "1403/07/10"
	l.RecordSale(p.ID, "151", 2, stored, "")
	l.RecordSale(p.ID, "168", 3, stored, "")
	l.RecordSale(p.ID, "151", 4, other, "")

	bucket := hijri.FromGregorian(1403, time.July, 9)
	r := l.MonthlyReport(bucket.Month, bucket.Year)
	if r.NoData() {
		t.Fatal("expected days")
	}
	if len(r.Days) != 2 || r.Total != 9 {
		t.Errorf("days=%d total=%d, want 2 days, total 9", len(r.Days), r.Total)
	}
	first := r.Days[0]
	if first.Date != stored || first.Quantity != 5 || len(first.Stores) != 2 {
		t.Errorf("first day = %+v", first)
	}

	if empty := l.MonthlyReport(bucket.Month, bucket.Year+50); !empty.NoData() {
		t.Errorf("expected no data for an empty month")
	}
}

func TestSummary(t *testing.T) {
	l := newTestLedger(t)
	a, _ := l.AddProduct("A", "c", 5)  // low
	l.AddProduct("B", "c", 0)          // out
	l.AddProduct("C", "c", 50)         // in stock
	l.RecordSale(a.ID, "151", 1, "", "")

	s := l.Summary()
	if s.TotalProducts != 3 {
		t.Errorf("TotalProducts = %d, want 3", s.TotalProducts)
	}
	if s.TodaySales != 1 {
		t.Errorf("TodaySales = %d, want 1", s.TodaySales)
	}
	if s.LowStock != 1 {
		t.Errorf("LowStock = %d, want 1 (A at 4)", s.LowStock)
	}
	if len(s.Recent) != 1 || s.Recent[0].ProductName != "A" {
		t.Errorf("Recent = %+v", s.Recent)
	}
}

func TestSaleRows(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 50)
	l.RecordSale(p.ID, "151", 1, "1403/07/09", "")
	l.RecordSale(p.ID, "151", 2, "1403/08/01", "")
	l.RecordSale(p.ID, "168", 3, "1402/01/01", "")

	rows := l.SaleRows(2)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Date != "1403/08/01" || rows[1].Date != "1403/07/09" {
		t.Errorf("rows not newest-first: %+v", rows)
	}

	all := l.SaleRows(-1)
	if len(all) != 3 || all[2].Date != "1402/01/01" {
		t.Errorf("unlimited rows = %+v", all)
	}
}

func TestEntryRows(t *testing.T) {
	l := newTestLedger(t)
	p, _ := l.AddProduct("X", "Y", 0)
	l.RecordEntry(p.ID, 5, "1403/02/01", "")
	l.RecordEntry(p.ID, 7, "1403/03/01", "")

	rows := l.EntryRows(10)
	if len(rows) != 2 || rows[0].Date != "1403/03/01" || rows[0].Quantity != 7 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestSearchProducts(t *testing.T) {
	l := newTestLedger(t)
	l.AddProduct("فندی رضا", "کفش ورزشی", 3)
	l.AddProduct("Runner", "sport", 4)

	if got := l.SearchProducts("فندی"); len(got) != 1 {
		t.Errorf("search by name = %v", got)
	}
	if got := l.SearchProducts("SPORT"); len(got) != 1 || got[0].Name != "Runner" {
		t.Errorf("case-insensitive category search = %v", got)
	}
	if got := l.SearchProducts(""); len(got) != 2 {
		t.Errorf("empty term should match all: %v", got)
	}
	if got := l.SearchProducts("nothing"); len(got) != 0 {
		t.Errorf("no-match search = %v", got)
	}
}

func TestProductsByStatus(t *testing.T) {
	l := newTestLedger(t)
	l.AddProduct("out", "c", 0)
	l.AddProduct("low", "c", 3)
	l.AddProduct("in", "c", 30)

	if got := l.ProductsByStatus(OutOfStock); len(got) != 1 || got[0].Name != "out" {
		t.Errorf("out of stock = %v", got)
	}
	if got := l.ProductsByStatus(LowStock); len(got) != 1 || got[0].Name != "low" {
		t.Errorf("low = %v", got)
	}
	if got := l.ProductsByStatus(InStock); len(got) != 1 || got[0].Name != "in" {
		t.Errorf("in stock = %v", got)
	}
}
