package core

// LedgerMetrics records ledger outcomes
type LedgerMetrics interface {
	TopUpCompleted(amount int64)
	PaymentCompleted(serviceCode string, amount int64)
	LedgerFailed(operation string, kind string)
}
