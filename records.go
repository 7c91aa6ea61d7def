package shoeseli

import "fmt"

// Stores is the fixed set of store identifiers sales are scoped to.
var Stores = []string{"151", "168"}

// DefaultStore is the store new sales are attributed to when the caller
// does not pick one.
const DefaultStore = "151"

// ValidStore reports whether id is one of the known stores.
func ValidStore(id string) bool {
	for _, s := range Stores {
		if s == id {
			return true
		}
	}
	return false
}

// Product is a catalog item with its running stock counters.
//
// CurrentStock is maintained by the ledger: it always equals
// InitialQuantity plus the entries minus the sales currently referencing
// the product, except after an explicit EditProduct override.
type Product struct {
	ID              int64  `json:"id"`
	Name            string `json:"name" validate:"required"`
	Category        string `json:"category"`
	InitialQuantity int    `json:"initialQuantity" validate:"gte=0"`
	CurrentStock    int    `json:"currentStock"`
	TotalSold       int    `json:"totalSold" validate:"gte=0"`
	CreatedAt       string `json:"createdAt"`
}

// Status classifies the product's current stock level.
func (p *Product) Status() StockStatus {
	return StatusOf(p.CurrentStock)
}

// Sale is a stock-decreasing transaction. ProductID is a weak reference:
// it may dangle after the product is deleted.
type Sale struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	StoreID   string `json:"storeId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	SaleDate  string `json:"saleDate"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// Entry is a stock-increasing transaction (goods received). ProductID is a
// weak reference like Sale.ProductID.
type Entry struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	EntryDate string `json:"entryDate"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// LowStockThreshold is the stock level below which a product counts as
// running low. Fixed policy constant.
const LowStockThreshold = 10

// StockStatus classifies a stock level.
type StockStatus int

const (
	OutOfStock StockStatus = iota
	LowStock
	InStock
)

// StatusOf classifies a stock value: zero is out of stock, a positive
// value under the threshold is low, anything else is in stock.
func StatusOf(stock int) StockStatus {
	switch {
	case stock == 0:
		return OutOfStock
	case stock > 0 && stock < LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

func (s StockStatus) String() string {
	switch s {
	case OutOfStock:
		return "out-of-stock"
	case LowStock:
		return "low"
	case InStock:
		return "in-stock"
	default:
		return "unknown"
	}
}

// ParseStockStatus parses a string into a StockStatus.
func ParseStockStatus(s string) (StockStatus, error) {
	switch s {
	case "out-of-stock", "out":
		return OutOfStock, nil
	case "low":
		return LowStock, nil
	case "in-stock", "in":
		return InStock, nil
	default:
		return 0, fmt.Errorf("unknown stock status: %q", s)
	}
}
