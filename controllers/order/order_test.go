package orderControllers_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	cartControllers "github.com/seafresh/fishmarket-api/controllers/cart"
	orderControllers "github.com/seafresh/fishmarket-api/controllers/order"
	"github.com/seafresh/fishmarket-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.FishItem{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name, price string, stock int) models.FishItem {
	t.Helper()
	item := models.FishItem{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func validDelivery() models.DeliveryInformation {
	return models.DeliveryInformation{
		FullName:        "Jane Doe",
		ContactNumber:   "+94771234567",
		DeliveryAddress: "12 Harbour Road",
		PaymentMethod:   models.PaymentMethodCash,
	}
}

const userID = uint(1)

func TestPlaceOrderAppliesDeliveryFee(t *testing.T) {
	db := newTestDB(t)
	salmon := seedItem(t, db, "Salmon", "22.50", 10)

	// Subtotal 45.00 is not above the threshold, so the 5.00 fee applies.
	order, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
		Items:    []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 2}},
		Delivery: validDelivery(),
		Total:    decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("50.00")))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Salmon", order.Items[0].ItemName)
	assert.NotEmpty(t, order.OrderRef)
}

func TestPlaceOrderWaivesDeliveryFee(t *testing.T) {
	db := newTestDB(t)
	salmon := seedItem(t, db, "Salmon", "20.00", 10)

	// Subtotal 60.00 is above 50, so delivery is free.
	order, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
		Items:    []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 3}},
		Delivery: validDelivery(),
		Total:    decimal.RequireFromString("60.00"),
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("60.00")))
}

func TestPlaceOrderRejectsTamperedTotal(t *testing.T) {
	db := newTestDB(t)
	salmon := seedItem(t, db, "Salmon", "22.50", 10)

	_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
		Items:    []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 2}},
		Delivery: validDelivery(),
		Total:    decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, models.ErrTotalMismatch)

	// The stock decrement rolled back with the rest of the transaction.
	var item models.FishItem
	require.NoError(t, db.First(&item, salmon.ID).Error)
	assert.Equal(t, 10, item.StockQuantity)
}

func TestPlaceOrderUsesCurrentCatalogPrice(t *testing.T) {
	db := newTestDB(t)
	salmon := seedItem(t, db, "Salmon", "22.50", 10)

	// Client claims an old price; the server prices from the catalog and
	// the submitted total no longer matches.
	_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
		Items:    []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 1}},
		Delivery: validDelivery(),
		Total:    decimal.RequireFromString("6.00"),
	})
	assert.ErrorIs(t, err, models.ErrTotalMismatch)
}

func TestPlaceOrderDecrementsStockAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	salmon := seedItem(t, db, "Salmon", "22.50", 10)

	_, err := cartControllers.AddItem(db, userID, salmon.ID, 2)
	require.NoError(t, err)

	_, err = orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
		Items:    []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 2}},
		Delivery: validDelivery(),
		Total:    decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)

	var item models.FishItem
	require.NoError(t, db.First(&item, salmon.ID).Error)
	assert.Equal(t, 8, item.StockQuantity)

	cart, err := cartControllers.GetCart(db, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.Equal(decimal.Zero))
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	salmon := seedItem(t, db, "Salmon", "22.50", 1)

	_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
		Items:    []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 2}},
		Delivery: validDelivery(),
		Total:    decimal.RequireFromString("50.00"),
	})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	db := newTestDB(t)

	_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
		Items:    []orderControllers.OrderItemInput{{ItemID: 9999, Quantity: 1}},
		Delivery: validDelivery(),
		Total:    decimal.RequireFromString("5.00"),
	})
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestPlaceOrderValidation(t *testing.T) {
	db := newTestDB(t)
	salmon := seedItem(t, db, "Salmon", "22.50", 10)
	items := []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 1}}
	total := decimal.RequireFromString("27.50")

	t.Run("empty items", func(t *testing.T) {
		_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
			Delivery: validDelivery(),
			Total:    total,
		})
		assert.ErrorIs(t, err, models.ErrInvalidOrder)
	})

	t.Run("missing total", func(t *testing.T) {
		_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
			Items:    items,
			Delivery: validDelivery(),
		})
		assert.ErrorIs(t, err, models.ErrInvalidOrder)
	})

	t.Run("bad contact number", func(t *testing.T) {
		delivery := validDelivery()
		delivery.ContactNumber = "12345"
		_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
			Items:    items,
			Delivery: delivery,
			Total:    total,
		})
		assert.ErrorIs(t, err, models.ErrInvalidOrder)
		assert.Contains(t, models.Problems(err), "invalid contact number")
	})

	t.Run("bad payment method", func(t *testing.T) {
		delivery := validDelivery()
		delivery.PaymentMethod = "bitcoin"
		_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
			Items:    items,
			Delivery: delivery,
			Total:    total,
		})
		assert.ErrorIs(t, err, models.ErrInvalidOrder)
	})

	t.Run("missing full name", func(t *testing.T) {
		delivery := validDelivery()
		delivery.FullName = ""
		_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
			Items:    items,
			Delivery: delivery,
			Total:    total,
		})
		assert.ErrorIs(t, err, models.ErrInvalidOrder)
	})
}

func TestUserOrdersScopedToUser(t *testing.T) {
	db := newTestDB(t)
	salmon := seedItem(t, db, "Salmon", "22.50", 100)

	for i := 0; i < 2; i++ {
		_, err := orderControllers.PlaceOrder(db, userID, orderControllers.PlaceOrderRequest{
			Items:    []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 2}},
			Delivery: validDelivery(),
			Total:    decimal.RequireFromString("50.00"),
		})
		require.NoError(t, err)
	}
	// Another user's orders must not leak in.
	_, err := orderControllers.PlaceOrder(db, uint(2), orderControllers.PlaceOrderRequest{
		Items:    []orderControllers.OrderItemInput{{ItemID: salmon.ID, Quantity: 2}},
		Delivery: validDelivery(),
		Total:    decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)

	orders, err := orderControllers.UserOrders(db, userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, userID, order.UserID)
		assert.Len(t, order.Items, 1)
	}
}
