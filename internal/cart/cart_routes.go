package cart

import (
	"github.com/gin-gonic/gin"

	"go-cart-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/carts")
	carts.Use(middleware.AuthOptionalMiddleware())
	{
		carts.GET("/detail", handler.Detail)
		carts.GET("/count", handler.Count)

		carts.POST("/coupon", handler.ApplyCoupon)
		carts.DELETE("/coupon", handler.RemoveCoupon)

		carts.POST("/logout", handler.Logout)

		items := carts.Group("/items")
		{
			items.POST("", handler.AddItem)
			items.PATCH("/:productId", handler.UpdateQty)
			items.DELETE("/:productId", handler.RemoveItem)
		}
	}

	// Login sync needs a real identity, so it sits behind the strict guard.
	sync := r.Group("/carts/sync")
	sync.Use(middleware.AuthMiddleware())
	{
		sync.POST("/login", handler.SyncOnLogin)
	}
}
