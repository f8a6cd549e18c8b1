package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cart-api/internal/pkg/apperror"
	"go-cart-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// SessionFromContext builds the cart session from request context: device ID
// from the X-Device-ID header, identity from the auth middleware when present.
func SessionFromContext(ctx *gin.Context) Session {
	return Session{
		DeviceID: ctx.GetHeader("X-Device-ID"),
		Identity: ctx.GetString("user_id_validated"),
	}
}

func respondError(ctx *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Detail(ctx *gin.Context) {
	res, err := h.service.Detail(ctx, SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Count(ctx *gin.Context) {
	count, err := h.service.Count(ctx, SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, CartCountResponse{Count: count})
}

func (h *Handler) AddItem(ctx *gin.Context) {
	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.AddItem(ctx, SessionFromContext(ctx), req); err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, nil)
}

func (h *Handler) UpdateQty(ctx *gin.Context) {
	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateQty(ctx, SessionFromContext(ctx), ctx.Param("productId"), req); err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	if err := h.service.RemoveItem(ctx, SessionFromContext(ctx), ctx.Param("productId")); err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil)
}

func (h *Handler) ApplyCoupon(ctx *gin.Context) {
	var req ApplyCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.ApplyCoupon(ctx, SessionFromContext(ctx), req); err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil)
}

func (h *Handler) RemoveCoupon(ctx *gin.Context) {
	if err := h.service.RemoveCoupon(ctx, SessionFromContext(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil)
}

func (h *Handler) SyncOnLogin(ctx *gin.Context) {
	if err := h.service.SyncOnLogin(ctx, SessionFromContext(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil)
}

func (h *Handler) Logout(ctx *gin.Context) {
	if err := h.service.Logout(ctx, SessionFromContext(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil)
}
