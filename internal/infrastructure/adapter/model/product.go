package model

// Product represents the database model for catalog products
type Product struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement"`
	Code  string `gorm:"uniqueIndex;not null;size:64"`
	Name  string `gorm:"not null;size:255"`
	Price int64  `gorm:"not null"` // Price in cents
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
