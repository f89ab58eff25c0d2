package core

import "time"

// InvoiceGenerator produces ledger invoice numbers
type InvoiceGenerator interface {
	Next(now time.Time) string
}
