package app

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"go-cart-api/internal/cart"
	"go-cart-api/internal/checkout"
	"go-cart-api/internal/cloudsync"
	"go-cart-api/internal/coupon"
	"go-cart-api/internal/messaging/kafka/producer"
	"go-cart-api/internal/pricing"
	"go-cart-api/internal/rule"
	"go-cart-api/internal/store/cloudstore"
	"go-cart-api/internal/store/localstore"
)

func registerModules(router *gin.Engine, db *sql.DB, redisClient *redis.Client, kafkaWriter *kafka.Writer, cfg pricing.Config) *cloudsync.Queue {
	// --- Stores ---
	local := localstore.NewMemory()
	cloud := cloudstore.NewRedis(redisClient, 0)
	queue := cloudsync.NewQueue(cloud, 10*time.Second)

	// --- Repositories ---
	ruleRepo := rule.NewRepository(db)
	couponRepo := coupon.NewRepository(db)

	// --- Services ---
	couponService := coupon.NewService(couponRepo)
	quoter := pricing.NewQuoter(ruleRepo, cfg)
	cartService := cart.NewService(local, cloud, queue, couponService, quoter)
	publisher := producer.NewPublisher(kafkaWriter)
	checkoutService := checkout.NewService(cartService, quoter, publisher, couponService)

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}

	return queue
}
