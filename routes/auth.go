package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/config"
	authControllers "github.com/seafresh/fishmarket-api/controllers/auth"
	"github.com/seafresh/fishmarket-api/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints. Register and login
// are public; profile requires a bearer token.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db, cfg.JWTSecret))
		authGroup.POST("/login", authControllers.Login(db, cfg.JWTSecret))
		authGroup.GET("/profile",
			middleware.RequireAuth(db, cfg.JWTSecret),
			authControllers.Profile())
	}
}
