package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/models"
)

// Dashboard returns headline counts and total revenue for the admin
// panel.
// GET /admin/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userCount, itemCount, orderCount int64
		if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if err := db.Model(&models.FishItem{}).Count(&itemCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		var revenue decimal.NullDecimal
		if err := db.Model(&models.Order{}).
			Select("SUM(total_amount)").
			Scan(&revenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		total := decimal.Zero
		if revenue.Valid {
			total = revenue.Decimal
		}

		c.JSON(http.StatusOK, gin.H{
			"users":   userCount,
			"items":   itemCount,
			"orders":  orderCount,
			"revenue": total,
		})
	}
}
