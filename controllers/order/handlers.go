package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/middleware"
	"github.com/seafresh/fishmarket-api/models"
)

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data. Missing required fields."})
			return
		}

		order, err := PlaceOrder(db, user.ID, req)
		if err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		orders, err := UserOrders(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidOrder):
		body := gin.H{"message": "Invalid order data. Missing required fields."}
		if problems := models.Problems(err); problems != nil {
			body["errors"] = problems
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, models.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient stock"})
	case errors.Is(err, models.ErrTotalMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order total does not match"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating order"})
	}
}
