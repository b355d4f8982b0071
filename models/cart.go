package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     decimal.Decimal `gorm:"type:numeric" json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CartItem carries a price snapshot taken at add time. It is never
// refreshed when the catalog price changes; the cart diverges on purpose
// until cleared.
type CartItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	CartID   uint            `gorm:"index" json:"-"`
	ItemID   uint            `gorm:"index" json:"itemId"`
	ItemName string          `json:"name"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
	Price    decimal.Decimal `gorm:"type:numeric" json:"price"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// RecomputeTotal folds over the current lines. The total is always a
// fresh fold, never an incremental adjustment.
func (c *Cart) RecomputeTotal() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.Total = total
}
