package shoeseli

import (
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
)

// this file implements the backup import/export format. It is a single
// indented JSON document so backups stay human readable and diffable.

// ExportVersion identifies the backup format. Version 1.1 introduced
// Persian date strings.
const ExportVersion = "1.1"

type exportFile struct {
	Products   []Product `json:"products"`
	Sales      []Sale    `json:"sales"`
	ExportDate string    `json:"exportDate"`
	Version    string    `json:"version"`
}

type importFile struct {
	Products []Product `json:"products" validate:"omitempty,dive"`
	Sales    []Sale    `json:"sales" validate:"omitempty,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Export writes the ledger's products and sales to w as an indented JSON
// backup stamped with today's Persian date.
func Export(w io.Writer, l *Ledger) error {
	f := exportFile{
		Products:   l.Products(),
		Sales:      l.Sales(),
		ExportDate: l.today().String(),
		Version:    ExportVersion,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return &PersistenceError{Op: "save", Path: "export", Err: err}
	}
	return nil
}

// ImportOptions selects, per collection, between merging into the current
// state and replacing it outright.
type ImportOptions struct {
	ReplaceProducts bool
	ReplaceSales    bool
}

// Import reads a backup from r and applies it to the ledger.
//
// Absent collections are left untouched. Merged products get a freshly
// generated id unless an existing product already has the same name, in
// which case they are skipped; merged sales are skipped when their id is
// already present. A malformed or invalid payload is a ParseError and
// leaves the ledger unchanged.
func Import(r io.Reader, l *Ledger, opts ImportOptions) error {
	var f importFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return &ParseError{Reason: "malformed import file", Err: err}
	}
	if err := validate.Struct(f); err != nil {
		return &ParseError{Reason: "invalid import payload", Err: err}
	}

	if f.Products != nil {
		if opts.ReplaceProducts {
			l.products = f.Products
			for i := range l.products {
				l.trackID(l.products[i].ID)
			}
		} else {
			for _, p := range f.Products {
				if l.productByName(p.Name) != nil {
					continue
				}
				p.ID = l.newID()
				l.products = append(l.products, p)
			}
		}
	}

	if f.Sales != nil {
		if opts.ReplaceSales {
			l.sales = f.Sales
			for i := range l.sales {
				l.trackID(l.sales[i].ID)
			}
		} else {
			for _, s := range f.Sales {
				if l.Sale(s.ID) != nil {
					continue
				}
				l.sales = append(l.sales, s)
				l.trackID(s.ID)
			}
		}
	}

	return nil
}

func (l *Ledger) productByName(name string) *Product {
	for i := range l.products {
		if l.products[i].Name == name {
			p := l.products[i]
			return &p
		}
	}
	return nil
}
