// Command seed migrates the schema and provisions a demo catalog plus an
// admin account. Safe to re-run: it skips anything already present.
package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront-api/internal/core/config"
	"storefront-api/internal/core/database"
	"storefront-api/internal/core/logger"
	"storefront-api/internal/domain"
	"storefront-api/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Product{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}
	log.Info("automigrate done")

	// admin 账号
	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@store.local"
	}
	adminPass := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "changeme123"
	}
	var count int64
	db.Model(&domain.User{}).Where("email = ?", adminEmail).Count(&count)
	if count == 0 {
		admin := domain.User{
			Name:         "Store Admin",
			Email:        adminEmail,
			PasswordHash: utils.HashPassword(adminPass),
			Role:         domain.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal("seed admin", zap.Error(err))
		}
		log.Info("admin account created", zap.String("email", adminEmail))
	}

	// 示例商品
	db.Model(&domain.Product{}).Count(&count)
	if count > 0 {
		log.Info("products already seeded", zap.Int64("count", count))
		return
	}
	demo := []domain.Product{
		{Description: "Wireless mouse", Price: 10.00, Category: "electronics"},
		{Description: "Mechanical keyboard", Price: 45.50, Category: "electronics"},
		{Description: "USB-C cable 1m", Price: 4.25, Category: "electronics"},
		{Description: "Ceramic mug", Price: 7.80, Category: "kitchen"},
		{Description: "Chef knife", Price: 32.00, Category: "kitchen"},
		{Description: "Cotton t-shirt", Price: 12.99, Category: "apparel"},
		{Description: "Running shoes", Price: 59.90, Category: "apparel"},
		{Description: "Notebook A5", Price: 3.10, Category: "stationery"},
		{Description: "Fountain pen", Price: 18.75, Category: "stationery"},
		{Description: "Desk lamp", Price: 22.40, Category: "home"},
		{Description: "Scented candle", Price: 9.60, Category: "home"},
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Fatal("seed products", zap.Error(err))
	}
	log.Info("demo catalog seeded", zap.Int("count", len(demo)))
}
