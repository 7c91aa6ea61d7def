package shoeseli

import (
	"slices"
	"time"

	"github.com/ehsanjabbari/shoeseli/hijri"
)

// Ledger is the in-memory aggregate of products, sales and entries.
//
// Mutations keep each product's CurrentStock and TotalSold consistent with
// the sales and entries referencing it; deleting a sale or entry exactly
// reverses its contribution. Insertion order is the only implicit ordering
// of the three collections.
//
// A Ledger is not safe for concurrent mutation. The tool has a load,
// mutate, save lifecycle with a single writer; callers that need more must
// serialize access themselves.
type Ledger struct {
	products []Product
	sales    []Sale
	entries  []Entry

	lastID int64
	now    func() time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		products: make([]Product, 0),
		sales:    make([]Sale, 0),
		entries:  make([]Entry, 0),
		now:      time.Now,
	}
}

// today returns the current date on the Persian calendar.
func (l *Ledger) today() hijri.Date {
	return hijri.FromTime(l.now())
}

// newID returns a fresh record id. Ids come from the millisecond clock,
// bumped past any id already present so an append can never collide with
// an existing record.
func (l *Ledger) newID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	for l.idExists(id) {
		id++
	}
	l.lastID = id
	return id
}

func (l *Ledger) idExists(id int64) bool {
	for i := range l.products {
		if l.products[i].ID == id {
			return true
		}
	}
	for i := range l.sales {
		if l.sales[i].ID == id {
			return true
		}
	}
	for i := range l.entries {
		if l.entries[i].ID == id {
			return true
		}
	}
	return false
}

// trackID keeps the id generator ahead of externally supplied ids
// (loaded or imported records).
func (l *Ledger) trackID(id int64) {
	if id > l.lastID {
		l.lastID = id
	}
}

// Product returns a copy of the product with this id, or nil if unknown.
func (l *Ledger) Product(id int64) *Product {
	if i := l.productIndex(id); i >= 0 {
		p := l.products[i]
		return &p
	}
	return nil
}

// Sale returns a copy of the sale with this id, or nil if unknown.
func (l *Ledger) Sale(id int64) *Sale {
	for i := range l.sales {
		if l.sales[i].ID == id {
			s := l.sales[i]
			return &s
		}
	}
	return nil
}

// Entry returns a copy of the entry with this id, or nil if unknown.
func (l *Ledger) Entry(id int64) *Entry {
	for i := range l.entries {
		if l.entries[i].ID == id {
			e := l.entries[i]
			return &e
		}
	}
	return nil
}

// Products returns the products in insertion order.
func (l *Ledger) Products() []Product { return slices.Clone(l.products) }

// Sales returns the sales in insertion order.
func (l *Ledger) Sales() []Sale { return slices.Clone(l.sales) }

// Entries returns the entries in insertion order.
func (l *Ledger) Entries() []Entry { return slices.Clone(l.entries) }

func (l *Ledger) productIndex(id int64) int {
	for i := range l.products {
		if l.products[i].ID == id {
			return i
		}
	}
	return -1
}

// AddProduct creates a product with the given initial quantity as its
// starting stock. The initial quantity must not be negative.
func (l *Ledger) AddProduct(name, category string, initialQuantity int) (*Product, error) {
	if initialQuantity < 0 {
		return nil, &InvalidQuantityError{Quantity: initialQuantity}
	}
	p := Product{
		ID:              l.newID(),
		Name:            name,
		Category:        category,
		InitialQuantity: initialQuantity,
		CurrentStock:    initialQuantity,
		TotalSold:       0,
		CreatedAt:       l.today().String(),
	}
	l.products = append(l.products, p)
	return &p, nil
}

// EditProduct overwrites a product's name, category and current stock.
//
// The stock value is a direct override, not a delta: it bypasses the
// sale/entry bookkeeping and can leave the stock out of line with the
// recorded transactions. Manual-correction escape hatch.
func (l *Ledger) EditProduct(id int64, name, category string, currentStock int) error {
	i := l.productIndex(id)
	if i < 0 {
		return &NotFoundError{Kind: "product", ID: id}
	}
	l.products[i].Name = name
	l.products[i].Category = category
	l.products[i].CurrentStock = currentStock
	return nil
}

// DeleteProduct removes the product with this id. Existing sales and
// entries keep referencing the removed id and become orphaned. Unknown ids
// are a no-op.
func (l *Ledger) DeleteProduct(id int64) {
	if i := l.productIndex(id); i >= 0 {
		l.products = slices.Delete(l.products, i, i+1)
	}
}

// RecordSale appends a sale and decrements the product's stock.
//
// The sale date defaults to today when empty, the store to DefaultStore.
// The quantity must be positive and must not exceed the product's current
// stock; on any failure the ledger is left unchanged.
func (l *Ledger) RecordSale(productID int64, storeID string, quantity int, saleDate, notes string) (*Sale, error) {
	if quantity <= 0 {
		return nil, &InvalidQuantityError{Quantity: quantity}
	}
	i := l.productIndex(productID)
	if i < 0 {
		return nil, &NotFoundError{Kind: "product", ID: productID}
	}
	if quantity > l.products[i].CurrentStock {
		return nil, &InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: l.products[i].CurrentStock,
		}
	}
	if saleDate == "" {
		saleDate = l.today().String()
	}
	if storeID == "" {
		storeID = DefaultStore
	}
	s := Sale{
		ID:        l.newID(),
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  quantity,
		SaleDate:  saleDate,
		Notes:     notes,
		CreatedAt: l.today().String(),
	}
	l.sales = append(l.sales, s)
	l.products[i].CurrentStock -= quantity
	l.products[i].TotalSold += quantity
	return &s, nil
}

// RecordEntry appends a stock entry and increments the product's stock.
// Entries have no stock precondition; the quantity must be positive.
func (l *Ledger) RecordEntry(productID int64, quantity int, entryDate, notes string) (*Entry, error) {
	if quantity <= 0 {
		return nil, &InvalidQuantityError{Quantity: quantity}
	}
	i := l.productIndex(productID)
	if i < 0 {
		return nil, &NotFoundError{Kind: "product", ID: productID}
	}
	if entryDate == "" {
		entryDate = l.today().String()
	}
	e := Entry{
		ID:        l.newID(),
		ProductID: productID,
		Quantity:  quantity,
		EntryDate: entryDate,
		Notes:     notes,
		CreatedAt: l.today().String(),
	}
	l.entries = append(l.entries, e)
	l.products[i].CurrentStock += quantity
	return &e, nil
}

// DeleteSale removes a sale and reverses its effect on the product's stock
// and total sold. The reversal is skipped if the product was deleted.
// Unknown ids are a no-op.
func (l *Ledger) DeleteSale(id int64) {
	for i := range l.sales {
		if l.sales[i].ID != id {
			continue
		}
		s := l.sales[i]
		if j := l.productIndex(s.ProductID); j >= 0 {
			l.products[j].CurrentStock += s.Quantity
			l.products[j].TotalSold -= s.Quantity
		}
		l.sales = slices.Delete(l.sales, i, i+1)
		return
	}
}

// DeleteEntry removes an entry and reverses its effect on the product's
// stock. If sales consumed the entered stock in the meantime this can
// drive the stock negative; that is accepted ledger behavior, not guarded.
// Unknown ids are a no-op.
func (l *Ledger) DeleteEntry(id int64) {
	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		e := l.entries[i]
		if j := l.productIndex(e.ProductID); j >= 0 {
			l.products[j].CurrentStock -= e.Quantity
		}
		l.entries = slices.Delete(l.entries, i, i+1)
		return
	}
}
