package checkout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-cart-api/internal/cart"
	"go-cart-api/internal/checkout"
	mockcheckout "go-cart-api/internal/mock/checkout"
)

func setupCheckoutRouter(h *checkout.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/checkout/quote", h.Quote)
	r.POST("/checkout", h.Checkout)
	return r
}

func TestCheckoutHandler_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mockcheckout.NewMockService(ctrl)
	r := setupCheckoutRouter(checkout.NewHandler(svc))

	svc.EXPECT().
		Quote(gomock.Any(), cart.Session{DeviceID: "dev1"}).
		Return(checkout.QuoteResponse{
			Totals:    cart.TotalsResponse{Subtotal: "100.00", ShippingCost: "30.00", Discount: "0.00", Total: "130.00"},
			ItemCount: 1,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/checkout/quote", nil)
	req.Header.Set("X-Device-ID", "dev1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":"130.00"`)
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mockcheckout.NewMockService(ctrl)
	r := setupCheckoutRouter(checkout.NewHandler(svc))

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().
			Checkout(gomock.Any(), cart.Session{DeviceID: "dev1"}).
			Return(checkout.CheckoutResponse{CheckoutID: "chk-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set("X-Device-ID", "dev1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"checkoutId":"chk-1"`)
	})

	t.Run("empty_cart", func(t *testing.T) {
		svc.EXPECT().
			Checkout(gomock.Any(), gomock.Any()).
			Return(checkout.CheckoutResponse{}, checkout.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set("X-Device-ID", "dev1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
