package shoeseli

import "fmt"

// NotFoundError reports that a referenced record does not exist.
// Creation and update operations fail loudly with it; deletions are
// idempotent and never return it.
type NotFoundError struct {
	Kind string // "product", "sale" or "entry"
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: id=%d", e.Kind, e.ID)
}

// Is lets callers match any NotFoundError with errors.Is.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// InvalidQuantityError reports a quantity that is not acceptable for the
// operation: non-positive for sales and entries, negative for a product's
// initial quantity.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity: %d", e.Quantity)
}

func (e *InvalidQuantityError) Is(target error) bool {
	_, ok := target.(*InvalidQuantityError)
	return ok
}

// InsufficientStockError reports a sale quantity exceeding the product's
// current stock at the moment of acceptance.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

// ParseError reports a malformed import payload.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// PersistenceError reports a failed load or save of the ledger state.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool {
	_, ok := target.(*PersistenceError)
	return ok
}
