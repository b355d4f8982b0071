package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/config"
	adminControllers "github.com/seafresh/fishmarket-api/controllers/admin"
	"github.com/seafresh/fishmarket-api/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(db, cfg.JWTSecret), middleware.RequireAdmin())
	{
		adminGroup.GET("/dashboard", adminControllers.Dashboard(db))
	}
}
