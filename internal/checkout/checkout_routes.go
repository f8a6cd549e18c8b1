package checkout

import (
	"github.com/gin-gonic/gin"

	"go-cart-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/checkout")
	group.Use(middleware.AuthOptionalMiddleware())
	{
		group.GET("/quote", handler.Quote)
		group.POST("", handler.Checkout)
	}
}
