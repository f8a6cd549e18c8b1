package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cart-api/internal/cart"
	"go-cart-api/internal/pkg/apperror"
	"go-cart-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Quote(ctx *gin.Context) {
	res, err := h.service.Quote(ctx, cart.SessionFromContext(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Checkout(ctx *gin.Context) {
	res, err := h.service.Checkout(ctx, cart.SessionFromContext(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(ctx, http.StatusCreated, res)
}
