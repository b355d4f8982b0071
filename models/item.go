package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FishItem is a sellable catalog entry. Image holds a URL, not a file path.
type FishItem struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stockQuantity"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
