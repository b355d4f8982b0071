package itemControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/models"
)

// DeleteItem removes a catalog entry. Admin only.
// DELETE /items/:id
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item ID"})
			return
		}

		result := db.Delete(&models.FishItem{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}
