package model

import (
	"time"
)

// Balance holds the spendable amount of one user
type Balance struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false"`
	Balance   int64     `gorm:"not null;default:0;check:chk_balances_non_negative,balance >= 0"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}
