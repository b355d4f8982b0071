package models

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// 10 to 15 digits with an optional leading +.
var contactNumberPattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// Order is an immutable snapshot of a completed purchase. There is no
// status field and no cancellation path.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderRef    string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount decimal.Decimal `gorm:"type:numeric" json:"totalAmount"`
	Delivery    DeliveryInformation `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryInformation"`
	CreatedAt   time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	OrderID  uint            `gorm:"index" json:"-"`
	ItemID   uint            `json:"itemId"`
	ItemName string          `json:"name"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `gorm:"type:numeric" json:"price"`
	Quantity int             `json:"quantity"`
}

type DeliveryInformation struct {
	FullName            string        `json:"fullName"`
	ContactNumber       string        `json:"contactNumber"`
	DeliveryAddress     string        `json:"deliveryAddress"`
	DeliveryTime        string        `json:"deliveryTime"`
	SpecialInstructions string        `json:"specialInstructions"`
	PaymentMethod       PaymentMethod `gorm:"type:VARCHAR(10)" json:"paymentMethod"`
}

// Validate checks the required delivery fields and returns field-level
// messages joined into one ErrInvalidOrder.
func (d DeliveryInformation) Validate() error {
	var problems []string
	if d.FullName == "" {
		problems = append(problems, "full name is required")
	}
	if !contactNumberPattern.MatchString(d.ContactNumber) {
		problems = append(problems, "invalid contact number")
	}
	if d.DeliveryAddress == "" {
		problems = append(problems, "delivery address is required")
	}
	switch d.PaymentMethod {
	case PaymentMethodCash, PaymentMethodCard:
	default:
		problems = append(problems, "payment method must be cash or card")
	}
	if len(problems) > 0 {
		return validationError{problems: problems}
	}
	return nil
}
