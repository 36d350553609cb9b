package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"uniqueIndex" json:"user_id"` // enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem holds at most one row per (cart, product) pair; the composite
// unique index backs the upsert-with-increment on add.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint      `gorm:"uniqueIndex:uq_cart_product" json:"cart_id"`
	ProductID uint      `gorm:"uniqueIndex:uq_cart_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	Subtotal  float64   `gorm:"-" json:"subtotal,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}
