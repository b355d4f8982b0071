package cartControllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/models"
)

// Each mutator runs as a single read-modify-write transaction and leaves
// the cart satisfying total == sum(price * quantity) over its lines. The
// total is recomputed from scratch on every mutation.

// GetCart returns the persisted cart, or a synthetic empty cart when the
// user has none. No row is created on read.
func GetCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}, Total: decimal.Zero}, nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// AddItem appends a new line with the current catalog price as snapshot,
// or increments an existing line. The stock check covers the quantity
// already in the cart. The cart row is created lazily on first add.
func AddItem(db *gorm.DB, userID, itemID uint, quantity int) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var item models.FishItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrItemNotFound
			}
			return err
		}

		var cart models.Cart
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{UserID: userID, Total: decimal.Zero}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var line models.CartItem
		err = tx.Where("cart_id = ? AND item_id = ?", cart.ID, itemID).First(&line).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if quantity > item.StockQuantity {
				return models.ErrInsufficientStock
			}
			line = models.CartItem{
				CartID:   cart.ID,
				ItemID:   item.ID,
				ItemName: item.Name,
				Image:    item.Image,
				Category: item.Category,
				Price:    item.Price, // snapshot, fixed from here on
				Quantity: quantity,
				AddedAt:  time.Now(),
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if line.Quantity+quantity > item.StockQuantity {
				return models.ErrInsufficientStock
			}
			line.Quantity += quantity
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
		}

		return persistTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return GetCart(db, userID)
}

// SetQuantity adjusts or removes an existing line. A quantity of zero or
// less removes the line. It never creates a new line.
func SetQuantity(db *gorm.DB, userID, itemID uint, quantity int) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartNotFound
			}
			return err
		}

		var line models.CartItem
		err := tx.Where("cart_id = ? AND item_id = ?", cart.ID, itemID).First(&line).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if quantity > 0 {
				return models.ErrCartItemNotFound
			}
			// Removing an absent line is a no-op.
		case err != nil:
			return err
		case quantity <= 0:
			if err := tx.Delete(&line).Error; err != nil {
				return err
			}
		default:
			line.Quantity = quantity
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
		}

		return persistTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return GetCart(db, userID)
}

// RemoveItem deletes the matching line from the cart.
func RemoveItem(db *gorm.DB, userID, itemID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartNotFound
			}
			return err
		}

		result := tx.Where("cart_id = ? AND item_id = ?", cart.ID, itemID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrCartItemNotFound
		}

		return persistTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return GetCart(db, userID)
}

// ClearCart empties the lines and zeroes the total.
func ClearCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCartNotFound
			}
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
	return GetCart(db, userID)
}

// persistTotal reloads the surviving lines and stores a fresh fold.
func persistTotal(tx *gorm.DB, cartID uint) error {
	var cart models.Cart
	if err := tx.Preload("Items").First(&cart, cartID).Error; err != nil {
		return err
	}
	cart.RecomputeTotal()
	return tx.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("total", cart.Total).Error
}
