package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/config"
)

// SetupRoutes is the single entry point that wires up the auth, cart,
// item, order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	SetupAuthRoutes(r, db, cfg)
	SetupCartRoutes(r, db, cfg)
	SetupItemRoutes(r, db, cfg)
	SetupOrderRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}
