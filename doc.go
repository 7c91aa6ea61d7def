// Package shoeseli implements a small retail inventory ledger: products,
// stock entries (goods received) and sales (goods sold), each stamped with
// a Persian calendar date.
//
// The Ledger keeps every product's running stock consistent with the sales
// and entries referencing it and answers date-bucketed queries (today,
// month, last-N-days) over the Persian calendar provided by the hijri
// package. Persistence is a full-state overwrite of three JSON records via
// Store; Export and Import handle versioned backups.
package shoeseli
