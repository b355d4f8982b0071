package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/config"
	orderControllers "github.com/seafresh/fishmarket-api/controllers/order"
	"github.com/seafresh/fishmarket-api/middleware"
)

// SetupOrderRoutes registers the "/orders" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth(db, cfg.JWTSecret))
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db))
		orders.GET("", orderControllers.GetUserOrdersHandler(db))
	}
}
