package entity

// Banner is a promotional item shown on the public home screen
type Banner struct {
	ID          uint64
	Name        string
	Image       string
	Description string
}

// Service is a payable catalog item with a fixed tariff
type Service struct {
	ID     uint64
	Code   string
	Name   string
	Icon   string
	Tariff int64
}

// Payable reports whether a payment for this service would produce a valid ledger record
func (s *Service) Payable() bool {
	return s.Code != "" && s.Tariff > 0 && s.Tariff <= MaxSafeAmount
}
