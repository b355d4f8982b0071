package itemControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/models"
)

// PageSize is fixed for the public catalog listing.
const PageSize = 12

// GetItems returns one page of the public catalog.
// Query params: ?page, ?search (case-insensitive name match), ?category.
// GET /items
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		filtered := func() *gorm.DB {
			query := db.Model(&models.FishItem{})
			if search := c.Query("search"); search != "" {
				query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
			}
			if category := c.Query("category"); category != "" && category != "all" {
				query = query.Where("category = ?", category)
			}
			return query
		}

		var totalItems int64
		if err := filtered().Count(&totalItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		totalPages := int((totalItems + PageSize - 1) / PageSize)

		var items []models.FishItem
		if err := filtered().
			Offset((page - 1) * PageSize).
			Limit(PageSize).
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if items == nil {
			items = []models.FishItem{}
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       items,
			"totalPages":  totalPages,
			"currentPage": page,
		})
	}
}

// GetCategories returns the distinct non-empty category values.
// GET /items/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.FishItem{}).
			Where("category IS NOT NULL AND category <> ''").
			Distinct().
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetAllItems returns the unpaginated catalog for the admin panel.
// GET /items/admin
func GetAllItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.FishItem
		if err := db.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if items == nil {
			items = []models.FishItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}
