package domain

// Order Model
type Order struct {
	ID        uint        `gorm:"primaryKey"`                                    // Primary key
	Username  string      `gorm:"index;not null"`                                // References User.Username
	Total     int         `gorm:"not null"`                                      // Sum of item subtotals, integer currency units
	Items     []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // Line items, removed with the order
	CreatedAt int64       `gorm:"autoCreateTime:milli"`                          // Timestamp of creation in milliseconds
}
