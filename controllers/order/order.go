package orderControllers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/models"
	"github.com/seafresh/fishmarket-api/pricing"
)

// totalTolerance absorbs client-side rounding when comparing the
// submitted total against the recomputed one.
var totalTolerance = decimal.NewFromFloat(0.01)

type OrderItemInput struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	Items    []OrderItemInput           `json:"items"`
	Delivery models.DeliveryInformation `json:"deliveryInformation"`
	Total    decimal.Decimal            `json:"total"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder creates an immutable order for the user. The server is
// authoritative: stock is checked and decremented atomically per item,
// lines are priced from the current catalog, and the total is recomputed
// (subtotal plus delivery fee). The submitted total must agree with the
// recomputed one within the rounding tolerance. The user's cart is
// cleared in the same transaction.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, models.ErrInvalidOrder
	}
	if err := req.Delivery.Validate(); err != nil {
		return nil, err
	}
	if !req.Total.IsPositive() {
		return nil, models.ErrInvalidOrder
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		subtotal := decimal.Zero
		var orderItems []models.OrderItem

		for _, input := range req.Items {
			var item models.FishItem
			if err := tx.First(&item, input.ItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrItemNotFound
				}
				return err
			}

			// Conditional decrement keeps the stock check and the write
			// atomic under concurrent orders.
			result := tx.Model(&models.FishItem{}).
				Where("id = ? AND stock_quantity >= ?", item.ID, input.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", input.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return models.ErrInsufficientStock
			}

			subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(input.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ItemID:   item.ID,
				ItemName: item.Name,
				Image:    item.Image,
				Price:    item.Price,
				Quantity: input.Quantity,
			})
		}

		total := pricing.Total(subtotal)
		if total.Sub(req.Total).Abs().GreaterThan(totalTolerance) {
			return models.ErrTotalMismatch
		}

		order = models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			Items:       orderItems,
			TotalAmount: total,
			Delivery:    req.Delivery,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Checkout empties the server-side cart as well.
		var cart models.Cart
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("total", decimal.Zero).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UserOrders returns the user's orders newest first, items included.
func UserOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
