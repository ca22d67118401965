package model

import (
	"time"
)

// Transaction represents the database model for ledger transactions
type Transaction struct {
	ID   uint64    `gorm:"primaryKey;autoIncrement"`
	Date time.Time `gorm:"not null;index"`

	// Items belonging to this transaction are removed together
	// with their parent row.
	Items []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
