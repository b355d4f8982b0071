package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/middleware"
	"github.com/seafresh/fishmarket-api/models"
)

type AddItemInput struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity *int `json:"quantity" binding:"required"` // pointer: zero is a valid value and removes the line
}

// GET /cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		cart, err := GetCart(db, user.ID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/add
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddItem(db, user.ID, input.ItemID, input.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /cart
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := SetQuantity(db, user.ID, input.ItemID, *input.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/remove/:itemId
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item ID"})
			return
		}

		cart, err := RemoveItem(db, user.ID, uint(itemID))
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/clear
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		cart, err := ClearCart(db, user.ID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "cart": cart})
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
	case errors.Is(err, models.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
	case errors.Is(err, models.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient stock"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
