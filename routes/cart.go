package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/config"
	cartControllers "github.com/seafresh/fishmarket-api/controllers/cart"
	"github.com/seafresh/fishmarket-api/middleware"
)

// SetupCartRoutes registers the "/cart/*" endpoints. All of them operate
// on the authenticated user's own cart.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireAuth(db, cfg.JWTSecret))
	{
		cartGroup.GET("", cartControllers.GetUserCart(db))
		cartGroup.POST("/add", cartControllers.AddCartItem(db))
		cartGroup.PUT("", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/remove/:itemId", cartControllers.RemoveCartItem(db))
		cartGroup.DELETE("/clear", cartControllers.ClearUserCart(db))
	}
}
