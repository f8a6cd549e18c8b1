package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"go-cart-api/internal/cloudsync"
	"go-cart-api/internal/pricing"
)

// BuildApp connects the infrastructure and registers every module's routes.
// It returns the cloud sync queue so main can drain it on shutdown.
func BuildApp(router *gin.Engine) (*cloudsync.Queue, error) {
	// 1. Setup Infrastructure
	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return nil, err
	}

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return nil, err
	}

	kafkaWriter, err := ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5)
	if err != nil {
		return nil, err
	}

	// 2. Pricing configuration
	cfg := pricing.Config{StandardShippingRate: standardShippingRate()}

	// 3. Register Modules & Routes
	queue := registerModules(router, db, redisClient, kafkaWriter, cfg)

	return queue, nil
}

// standardShippingRate reads STANDARD_SHIPPING_RATE, falling back to the
// storefront default when unset or unparseable.
func standardShippingRate() decimal.Decimal {
	raw := os.Getenv("STANDARD_SHIPPING_RATE")
	if raw == "" {
		return decimal.NewFromInt(30)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		return decimal.NewFromInt(30)
	}
	return rate
}
