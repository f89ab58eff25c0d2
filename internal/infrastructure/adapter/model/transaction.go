package model

import (
	"time"
)

// Transaction represents the database model for ledger records
type Transaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"not null;index"`
	InvoiceNumber   string    `gorm:"uniqueIndex:idx_transactions_invoice_number;not null;size:64"`
	ServiceCode     *string   `gorm:"size:50"`
	TransactionType string    `gorm:"not null;size:20"`
	Description     string    `gorm:"not null;size:255"`
	TotalAmount     int64     `gorm:"not null;check:chk_transactions_positive_amount,total_amount > 0"`
	CreatedOn       time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
