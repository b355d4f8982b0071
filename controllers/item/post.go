package itemControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/models"
)

type CreateItemInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
}

func validateItemFields(price decimal.Decimal, stock int) []string {
	var problems []string
	if price.IsNegative() {
		problems = append(problems, "price must not be negative")
	}
	if stock < 0 {
		problems = append(problems, "stock quantity must not be negative")
	}
	return problems
}

// CreateItem adds a catalog entry. Admin only.
// POST /items
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item data"})
			return
		}
		if problems := validateItemFields(input.Price, input.StockQuantity); problems != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation Error", "errors": problems})
			return
		}

		item := models.FishItem{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			StockQuantity: input.StockQuantity,
			Category:      input.Category,
			Image:         input.Image,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item data"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}
