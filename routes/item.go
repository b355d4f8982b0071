package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/config"
	itemControllers "github.com/seafresh/fishmarket-api/controllers/item"
	"github.com/seafresh/fishmarket-api/middleware"
)

// SetupItemRoutes registers the "/items/*" endpoints. Browsing is
// public; catalog management needs the admin role.
func SetupItemRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	items := r.Group("/items")
	{
		items.GET("", itemControllers.GetItems(db))
		items.GET("/categories", itemControllers.GetCategories(db))
	}

	adminItems := r.Group("/items")
	adminItems.Use(middleware.RequireAuth(db, cfg.JWTSecret), middleware.RequireAdmin())
	{
		adminItems.GET("/admin", itemControllers.GetAllItems(db))
		adminItems.POST("", itemControllers.CreateItem(db))
		adminItems.PUT("/:id", itemControllers.UpdateItem(db))
		adminItems.DELETE("/:id", itemControllers.DeleteItem(db))
		adminItems.GET("/export", itemControllers.ExportItemsToExcel(db))
		adminItems.POST("/import", itemControllers.ImportItemsFromExcel(db))
	}
}
