package itemControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/models"
)

// UpdateItemInput uses pointers so that an absent field is distinguished
// from a zero value: price 0 and an empty description are legitimate
// updates and must be applied.
type UpdateItemInput struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stockQuantity"`
	Category      *string          `json:"category"`
	Image         *string          `json:"image"`
}

// UpdateItem applies a partial update to a catalog entry. Admin only.
// PUT /items/:id
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item data"})
			return
		}

		var item models.FishItem
		if err := db.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Price != nil {
			item.Price = *input.Price
		}
		if input.StockQuantity != nil {
			item.StockQuantity = *input.StockQuantity
		}
		if input.Category != nil {
			item.Category = *input.Category
		}
		if input.Image != nil {
			item.Image = *input.Image
		}

		if problems := validateItemFields(item.Price, item.StockQuantity); problems != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation Error", "errors": problems})
			return
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
