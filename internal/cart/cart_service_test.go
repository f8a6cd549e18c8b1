package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-cart-api/internal/cart"
	carterrors "go-cart-api/internal/cart/errors"
	"go-cart-api/internal/cloudsync"
	mockcart "go-cart-api/internal/mock/cart"
	mockcloud "go-cart-api/internal/mock/cloudstore"
	"go-cart-api/internal/store/localstore"
)

func stubTotals(ctrl *gomock.Controller) *mockcart.MockTotalsSource {
	totals := mockcart.NewMockTotalsSource(ctrl)
	totals.EXPECT().
		Totals(gomock.Any(), gomock.Any()).
		Return(cart.TotalsResponse{Subtotal: "0.00", ShippingCost: "30.00", Discount: "0.00", Total: "30.00"}).
		AnyTimes()
	return totals
}

func addItemRequest(productID string, price float64, qty int) cart.AddItemRequest {
	return cart.AddItemRequest{
		ProductID: productID,
		Title:     "Product " + productID,
		UnitPrice: price,
		Qty:       qty,
		MaxQty:    10,
	}
}

func TestCartService_GuestFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mockcloud.NewMockStore(ctrl)
	coupons := mockcart.NewMockCouponResolver(ctrl)
	svc := cart.NewService(localstore.NewMemory(), cloud, cloudsync.NewQueue(cloud, time.Second), coupons, stubTotals(ctrl))

	ctx := context.Background()
	sess := cart.Session{DeviceID: "dev1"}

	t.Run("empty_detail", func(t *testing.T) {
		detail, err := svc.Detail(ctx, sess)
		assert.NoError(t, err)
		assert.Empty(t, detail.Items)
		assert.Nil(t, detail.AppliedCoupon)
	})

	t.Run("add_and_count", func(t *testing.T) {
		assert.NoError(t, svc.AddItem(ctx, sess, addItemRequest("X", 10.50, 2)))
		assert.NoError(t, svc.AddItem(ctx, sess, addItemRequest("Y", 5, 1)))

		count, err := svc.Count(ctx, sess)
		assert.NoError(t, err)
		assert.Equal(t, 3, count, "count sums quantities, not rows")

		detail, err := svc.Detail(ctx, sess)
		assert.NoError(t, err)
		assert.Len(t, detail.Items, 2)
		assert.Equal(t, "10.50", detail.Items[0].UnitPrice)
		assert.NotEmpty(t, detail.UpdatedAt)
	})

	t.Run("update_and_remove", func(t *testing.T) {
		assert.NoError(t, svc.UpdateQty(ctx, sess, "X", cart.UpdateQtyRequest{Qty: 5}))

		count, _ := svc.Count(ctx, sess)
		assert.Equal(t, 6, count)

		// Zero quantity removes the row.
		assert.NoError(t, svc.UpdateQty(ctx, sess, "X", cart.UpdateQtyRequest{Qty: 0}))
		assert.NoError(t, svc.RemoveItem(ctx, sess, "Y"))

		detail, _ := svc.Detail(ctx, sess)
		assert.Empty(t, detail.Items)
	})

	t.Run("validation_errors", func(t *testing.T) {
		err := svc.AddItem(ctx, sess, cart.AddItemRequest{ProductID: "X"})
		assert.ErrorIs(t, err, carterrors.ErrValidation)

		err = svc.AddItem(ctx, sess, addItemRequest("", 10, 1))
		assert.ErrorIs(t, err, carterrors.ErrValidation)

		err = svc.ApplyCoupon(ctx, sess, cart.ApplyCouponRequest{Code: ""})
		assert.ErrorIs(t, err, carterrors.ErrValidation)
	})

	t.Run("device_id_required", func(t *testing.T) {
		_, err := svc.Detail(ctx, cart.Session{})
		assert.ErrorIs(t, err, carterrors.ErrDeviceIDRequired)
	})
}

func TestCartService_DetailCarriesTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mockcloud.NewMockStore(ctrl)
	coupons := mockcart.NewMockCouponResolver(ctrl)
	totals := mockcart.NewMockTotalsSource(ctrl)
	svc := cart.NewService(localstore.NewMemory(), cloud, cloudsync.NewQueue(cloud, time.Second), coupons, totals)

	ctx := context.Background()
	sess := cart.Session{DeviceID: "dev1"}

	assert.NoError(t, svc.AddItem(ctx, sess, addItemRequest("X", 100, 2)))

	totals.EXPECT().
		Totals(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c cart.Cart) cart.TotalsResponse {
			assert.Len(t, c.Items, 1, "totals are priced against the current snapshot")
			return cart.TotalsResponse{
				Subtotal:     "200.00",
				ShippingCost: "0.00",
				Discount:     "0.00",
				Total:        "200.00",
			}
		})

	detail, err := svc.Detail(ctx, sess)
	assert.NoError(t, err)
	assert.Equal(t, "200.00", detail.Totals.Subtotal)
	assert.Equal(t, "200.00", detail.Totals.Total)
}

func TestCartService_Coupons(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cloud := mockcloud.NewMockStore(ctrl)
	coupons := mockcart.NewMockCouponResolver(ctrl)
	svc := cart.NewService(localstore.NewMemory(), cloud, cloudsync.NewQueue(cloud, time.Second), coupons, stubTotals(ctrl))

	ctx := context.Background()
	sess := cart.Session{DeviceID: "dev1"}

	assert.NoError(t, svc.AddItem(ctx, sess, addItemRequest("X", 100, 2)))

	t.Run("apply_validates_against_subtotal", func(t *testing.T) {
		coupons.EXPECT().
			Validate(ctx, "SAVE20", gomock.Any()).
			DoAndReturn(func(_ context.Context, code string, orderTotal decimal.Decimal) (*cart.AppliedCoupon, error) {
				assert.True(t, orderTotal.Equal(decimal.NewFromInt(200)))
				return &cart.AppliedCoupon{
					Code:           code,
					DiscountType:   cart.DiscountFixedAmount,
					DiscountAmount: decimal.NewFromInt(20),
				}, nil
			})

		assert.NoError(t, svc.ApplyCoupon(ctx, sess, cart.ApplyCouponRequest{Code: "SAVE20"}))

		detail, _ := svc.Detail(ctx, sess)
		assert.NotNil(t, detail.AppliedCoupon)
		assert.Equal(t, "SAVE20", detail.AppliedCoupon.Code)
		assert.Equal(t, "20.00", detail.AppliedCoupon.DiscountAmount)
	})

	t.Run("resolver_rejection_leaves_cart_untouched", func(t *testing.T) {
		coupons.EXPECT().
			Validate(ctx, "NOPE", gomock.Any()).
			Return(nil, carterrors.ErrValidation)

		err := svc.ApplyCoupon(ctx, sess, cart.ApplyCouponRequest{Code: "NOPE"})
		assert.Error(t, err)

		detail, _ := svc.Detail(ctx, sess)
		assert.Equal(t, "SAVE20", detail.AppliedCoupon.Code)
	})

	t.Run("remove", func(t *testing.T) {
		assert.NoError(t, svc.RemoveCoupon(ctx, sess))

		detail, _ := svc.Detail(ctx, sess)
		assert.Nil(t, detail.AppliedCoupon)
	})
}

func TestCartService_LoginLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cloud := mockcloud.NewMockStore(ctrl)
	coupons := mockcart.NewMockCouponResolver(ctrl)
	local := localstore.NewMemory()
	queue := cloudsync.NewQueue(cloud, time.Second)
	svc := cart.NewService(local, cloud, queue, coupons, stubTotals(ctrl))

	guest := cart.Session{DeviceID: "dev1"}
	signedIn := cart.Session{DeviceID: "dev1", Identity: "user-1"}

	// Guest fills the cart, then signs in against an account that already has
	// a cart with the same product at a lower quantity plus another product.
	assert.NoError(t, svc.AddItem(ctx, guest, addItemRequest("X", 10, 4)))

	cloudCart := cart.Cart{Items: []cart.LineItem{
		item("X", "10", 1),
		item("Y", "20", 3),
	}}
	cloud.EXPECT().GetCart(ctx, "user-1").Return(&cloudCart, nil)
	cloud.EXPECT().PutCart(ctx, "user-1", gomock.Any()).Return(nil)

	assert.NoError(t, svc.SyncOnLogin(ctx, signedIn))
	assert.Empty(t, local.Get("cart:device:dev1"))

	detail, err := svc.Detail(ctx, signedIn)
	assert.NoError(t, err)
	assert.Len(t, detail.Items, 2)
	assert.Equal(t, 4, detail.Items[0].Quantity, "quantity takes the maximum of both sides")
	assert.Equal(t, "Y", detail.Items[1].ProductID)

	// Post-login mutations are fire-and-forget cloud writes.
	cloud.EXPECT().PutCart(gomock.Any(), "user-1", gomock.Any()).Return(nil).MinTimes(1)
	assert.NoError(t, svc.AddItem(ctx, signedIn, addItemRequest("Z", 5, 1)))
	queue.Wait()

	// Logout empties the session but never touches the cloud cart.
	assert.NoError(t, svc.Logout(ctx, signedIn))

	detail, err = svc.Detail(ctx, guest)
	assert.NoError(t, err)
	assert.Empty(t, detail.Items)
}

func TestCartService_SyncOnLoginRequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := cart.NewService(localstore.NewMemory(), mockcloud.NewMockStore(ctrl), nil, mockcart.NewMockCouponResolver(ctrl), stubTotals(ctrl))

	err := svc.SyncOnLogin(context.Background(), cart.Session{DeviceID: "dev1"})
	assert.ErrorIs(t, err, carterrors.ErrIdentityRequired)
}
