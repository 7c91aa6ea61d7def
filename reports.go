package shoeseli

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/ehsanjabbari/shoeseli/hijri"
)

// DeletedProductLabel is displayed in place of the name of a product that
// a sale or entry still references after its deletion.
const DeletedProductLabel = "deleted product"

// saleDatePersian re-derives the Persian bucket of a stored date string.
//
// Stored dates are already Persian strings, but period filters run them
// through the Gregorian conversion again, exactly as the original data was
// bucketed. The double conversion is calendrically meaningless and fully
// self-consistent; records whose date does not parse drop out of every
// converted filter.
func saleDatePersian(stored string) (hijri.Date, bool) {
	d, err := hijri.Parse(stored)
	if err != nil {
		return hijri.Date{}, false
	}
	return hijri.FromGregorian(d.Year, time.Month(d.Month), d.Day), true
}

// productName resolves a weak product reference for display.
func (l *Ledger) productName(id int64) string {
	if p := l.Product(id); p != nil {
		return p.Name
	}
	return DeletedProductLabel
}

// TodaySales returns the sales whose stored date equals today's date.
func (l *Ledger) TodaySales() []Sale {
	today := l.today().String()
	return l.SalesOnDate(today)
}

// MonthlySales returns the sales falling in today's Persian year and month.
func (l *Ledger) MonthlySales() []Sale {
	t := l.today()
	return l.SalesInPersianMonth(t.Month, t.Year)
}

// SalesOnDate returns the sales whose stored date string matches exactly.
func (l *Ledger) SalesOnDate(date string) []Sale {
	var out []Sale
	for _, s := range l.sales {
		if s.SaleDate == date {
			out = append(out, s)
		}
	}
	return out
}

// SalesInPersianMonth returns the sales whose re-derived Persian date falls
// in the given month and year.
func (l *Ledger) SalesInPersianMonth(month, year int) []Sale {
	var out []Sale
	for _, s := range l.sales {
		d, ok := saleDatePersian(s.SaleDate)
		if ok && d.Month == month && d.Year == year {
			out = append(out, s)
		}
	}
	return out
}

// PerformanceRow is one product's aggregate over a reporting period.
type PerformanceRow struct {
	ProductID   int64
	ProductName string
	TotalSold   int
	SaleCount   int
}

// PerformanceReport ranks products by units sold over the last periodDays.
type PerformanceReport struct {
	PeriodDays int
	Rows       []PerformanceRow
}

// NoData reports whether no sale fell in the period.
func (r *PerformanceReport) NoData() bool { return len(r.Rows) == 0 }

// ProductPerformance aggregates sales of the last periodDays per product
// and returns the top 10 by units sold, ties kept in first-sale order.
// The period filter uses the coarse day difference against today.
func (l *Ledger) ProductPerformance(periodDays int) *PerformanceReport {
	today := l.today()

	var order []int64
	byProduct := make(map[int64]*PerformanceRow)
	for _, s := range l.sales {
		d, ok := saleDatePersian(s.SaleDate)
		if !ok || hijri.DayDifference(d, today) > periodDays {
			continue
		}
		row, seen := byProduct[s.ProductID]
		if !seen {
			row = &PerformanceRow{ProductID: s.ProductID, ProductName: l.productName(s.ProductID)}
			byProduct[s.ProductID] = row
			order = append(order, s.ProductID)
		}
		row.TotalSold += s.Quantity
		row.SaleCount++
	}

	rows := make([]PerformanceRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byProduct[id])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalSold > rows[j].TotalSold })
	if len(rows) > 10 {
		rows = rows[:10]
	}
	return &PerformanceReport{PeriodDays: periodDays, Rows: rows}
}

// DailyLine is one sale on a daily report.
type DailyLine struct {
	ProductName string
	StoreID     string
	Quantity    int
}

// DailyReport lists the sales of a single date with their total quantity.
type DailyReport struct {
	Date  string
	Lines []DailyLine
	Total int
}

// NoData reports whether no sale was recorded on the date.
func (r *DailyReport) NoData() bool { return len(r.Lines) == 0 }

// DailyReport builds the daily sales report for a stored-form date string.
func (l *Ledger) DailyReport(date string) *DailyReport {
	r := &DailyReport{Date: date}
	for _, s := range l.SalesOnDate(date) {
		r.Lines = append(r.Lines, DailyLine{
			ProductName: l.productName(s.ProductID),
			StoreID:     s.StoreID,
			Quantity:    s.Quantity,
		})
		r.Total += s.Quantity
	}
	return r
}

// MonthlyLine aggregates one day of a monthly report.
type MonthlyLine struct {
	Date     string
	Stores   []string
	Quantity int
}

// MonthlyReport aggregates a Persian month's sales per day.
type MonthlyReport struct {
	Month int
	Year  int
	Days  []MonthlyLine
	Total int
}

// NoData reports whether no sale fell in the month.
func (r *MonthlyReport) NoData() bool { return len(r.Days) == 0 }

// MonthlyReport builds the monthly sales report for a Persian month and
// year, one line per distinct sale date in first-seen order.
func (l *Ledger) MonthlyReport(month, year int) *MonthlyReport {
	r := &MonthlyReport{Month: month, Year: year}
	index := make(map[string]int)
	for _, s := range l.SalesInPersianMonth(month, year) {
		i, seen := index[s.SaleDate]
		if !seen {
			i = len(r.Days)
			index[s.SaleDate] = i
			r.Days = append(r.Days, MonthlyLine{Date: s.SaleDate})
		}
		day := &r.Days[i]
		day.Quantity += s.Quantity
		if !slices.Contains(day.Stores, s.StoreID) {
			day.Stores = append(day.Stores, s.StoreID)
		}
		r.Total += s.Quantity
	}
	return r
}

// Summary is the dashboard view: headline counters plus recent activity.
type Summary struct {
	Date          hijri.Date
	TotalProducts int
	TodaySales    int
	LowStock      int
	MonthlySales  int
	Recent        []SaleRow
}

// Summary builds the dashboard counters and the five most recent sales.
func (l *Ledger) Summary() *Summary {
	s := &Summary{
		Date:          l.today(),
		TotalProducts: len(l.products),
		TodaySales:    len(l.TodaySales()),
		MonthlySales:  len(l.MonthlySales()),
		Recent:        l.SaleRows(5),
	}
	for i := range l.products {
		if l.products[i].Status() == LowStock {
			s.LowStock++
		}
	}
	return s
}

// SaleRow is a sale resolved for display.
type SaleRow struct {
	ID          int64
	Date        string
	ProductName string
	StoreID     string
	Quantity    int
}

// EntryRow is an entry resolved for display.
type EntryRow struct {
	ID          int64
	Date        string
	ProductName string
	Quantity    int
}

// SaleRows returns up to n sales, most recent stored date first, with
// product names resolved. Sales whose date does not parse sort last.
func (l *Ledger) SaleRows(n int) []SaleRow {
	sales := slices.Clone(l.sales)
	sortByStoredDate(sales, func(s Sale) string { return s.SaleDate })
	if n >= 0 && len(sales) > n {
		sales = sales[:n]
	}
	rows := make([]SaleRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, SaleRow{
			ID:          s.ID,
			Date:        s.SaleDate,
			ProductName: l.productName(s.ProductID),
			StoreID:     s.StoreID,
			Quantity:    s.Quantity,
		})
	}
	return rows
}

// EntryRows returns up to n entries, most recent stored date first, with
// product names resolved.
func (l *Ledger) EntryRows(n int) []EntryRow {
	entries := slices.Clone(l.entries)
	sortByStoredDate(entries, func(e Entry) string { return e.EntryDate })
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	rows := make([]EntryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EntryRow{
			ID:          e.ID,
			Date:        e.EntryDate,
			ProductName: l.productName(e.ProductID),
			Quantity:    e.Quantity,
		})
	}
	return rows
}

// sortByStoredDate orders records by their stored date, newest first,
// stable. Unparseable dates go last.
func sortByStoredDate[T any](records []T, date func(T) string) {
	sort.SliceStable(records, func(i, j int) bool {
		a, errA := hijri.Parse(date(records[i]))
		b, errB := hijri.Parse(date(records[j]))
		if errA != nil {
			return false
		}
		if errB != nil {
			return true
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.Day > b.Day
	})
}

// SearchProducts returns the products whose name or category contains the
// term, case-insensitively. An empty term matches everything.
func (l *Ledger) SearchProducts(term string) []Product {
	term = strings.ToLower(term)
	var out []Product
	for _, p := range l.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}

// ProductsByStatus returns the products whose stock level has the given
// status, in insertion order.
func (l *Ledger) ProductsByStatus(status StockStatus) []Product {
	var out []Product
	for _, p := range l.products {
		if p.Status() == status {
			out = append(out, p)
		}
	}
	return out
}
