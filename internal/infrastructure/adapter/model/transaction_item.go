package model

// TransactionItem represents the database model for transaction line items.
// ProductPrice is the unit price captured at sale time; later catalog edits
// must not affect recorded transactions.
type TransactionItem struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	TransactionID uint64 `gorm:"not null;index"`
	ProductID     uint64 `gorm:"not null;index"`
	ProductPrice  int64  `gorm:"not null"` // Unit price in cents at sale time
	Quantity      int64  `gorm:"not null"`

	// Referencing a product blocks its deletion.
	Product Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for TransactionItem
func (TransactionItem) TableName() string {
	return "transaction_items"
}
