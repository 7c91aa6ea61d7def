package shoeseli

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of the three persisted records inside the data directory.
const (
	productsFile = "products.json"
	salesFile    = "sales.json"
	entriesFile  = "entries.json"
)

// Store persists the full ledger state as three JSON arrays in a
// directory. Every save rewrites all three records; last writer wins.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store reads and writes.
func (s *Store) Dir() string { return s.dir }

// Load reads the three records into a fresh ledger.
//
// A missing products record seeds the demo catalog; missing sales or
// entries default to empty. Any other failure is a PersistenceError.
func (s *Store) Load() (*Ledger, error) {
	l := NewLedger()

	found, err := s.loadRecord(productsFile, &l.products)
	if err != nil {
		return nil, err
	}
	if !found {
		l.products = seedProducts(l.today().String())
	}
	if _, err := s.loadRecord(salesFile, &l.sales); err != nil {
		return nil, err
	}
	if _, err := s.loadRecord(entriesFile, &l.entries); err != nil {
		return nil, err
	}

	for i := range l.products {
		l.trackID(l.products[i].ID)
	}
	for i := range l.sales {
		l.trackID(l.sales[i].ID)
	}
	for i := range l.entries {
		l.trackID(l.entries[i].ID)
	}
	return l, nil
}

// Save rewrites all three records.
func (s *Store) Save(l *Ledger) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &PersistenceError{Op: "save", Path: s.dir, Err: err}
	}
	if err := s.saveRecord(productsFile, l.products); err != nil {
		return err
	}
	if err := s.saveRecord(salesFile, l.sales); err != nil {
		return err
	}
	return s.saveRecord(entriesFile, l.entries)
}

// loadRecord reads one record file. It reports whether the file existed.
func (s *Store) loadRecord(name string, v any) (bool, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	if len(data) == 0 {
		return true, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	return true, nil
}

// saveRecord writes one record file through a temp file and rename, so a
// failed write never truncates the previous state.
func (s *Store) saveRecord(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &PersistenceError{Op: "save", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// seedProducts is the starting catalog for a fresh data directory.
func seedProducts(createdAt string) []Product {
	return []Product{
		{ID: 1, Name: "فندی رضا", Category: "کفش ورزشی", InitialQuantity: 3, CurrentStock: 3, CreatedAt: createdAt},
		{ID: 2, Name: "هوتیک سه سگک رضا", Category: "کفش ورزشی", InitialQuantity: 6, CurrentStock: 6, CreatedAt: createdAt},
		{ID: 3, Name: "هرمس تخت رضا", Category: "کفش رسمی", InitialQuantity: 8, CurrentStock: 8, CreatedAt: createdAt},
		{ID: 4, Name: "زارا جلو بسته رضا", Category: "کفش روزمره", InitialQuantity: 7, CurrentStock: 7, CreatedAt: createdAt},
		{ID: 5, Name: "دو سگک ویزون رضا", Category: "کفش تابستانی", InitialQuantity: 1, CurrentStock: 1, CreatedAt: createdAt},
	}
}
