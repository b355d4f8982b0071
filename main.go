package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/config"
	"github.com/seafresh/fishmarket-api/middleware"
	"github.com/seafresh/fishmarket-api/models"
	"github.com/seafresh/fishmarket-api/routes"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Prices and totals serialize as plain JSON numbers, the shape the
	// frontend expects.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FishItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, cfg)

	logger.Info("server starting", zap.String("addr", cfg.HTTPAddress()))
	if err := r.Run(cfg.HTTPAddress()); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
