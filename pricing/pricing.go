// Package pricing holds the checkout money rules: the subtotal fold and
// the flat delivery fee with its free-shipping threshold.
package pricing

import "github.com/shopspring/decimal"

var (
	// FreeDeliveryThreshold waives the fee when the subtotal is strictly
	// greater than this value.
	FreeDeliveryThreshold = decimal.NewFromInt(50)
	// FlatDeliveryFee applies to all other orders.
	FlatDeliveryFee = decimal.NewFromInt(5)
)

// Line is anything priced per unit with a quantity.
type Line struct {
	Price    decimal.Decimal
	Quantity int
}

// Subtotal folds price times quantity over the lines.
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// DeliveryFee returns the fee owed for the given subtotal.
func DeliveryFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return FlatDeliveryFee
}

// Total is the subtotal plus its delivery fee.
func Total(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(DeliveryFee(subtotal))
}
