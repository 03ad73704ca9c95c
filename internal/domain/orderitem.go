package domain

// OrderItem Model
type OrderItem struct {
	ID      uint   `gorm:"primaryKey"`     // Primary key
	OrderID uint   `gorm:"index;not null"` // Foreign key to Order
	Name    string `gorm:"not null"`       // Menu item name at order time
	Qty     int    `gorm:"not null"`       // Ordered quantity, always positive
	Price   int    `gorm:"not null"`       // Unit price snapshot at order time
}
