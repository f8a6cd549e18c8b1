package cart

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	carterrors "go-cart-api/internal/cart/errors"
	"go-cart-api/internal/cloudsync"
	"go-cart-api/internal/store/cloudstore"
	"go-cart-api/internal/store/localstore"
)

// Session identifies the caller of a cart operation: the device always, the
// account only when signed in.
type Session struct {
	DeviceID string
	Identity string
}

// CouponResolver validates a coupon code against the order total and returns
// the resolved discount. Supplied by the coupon feature; the cart only
// combines the result with its state.
type CouponResolver interface {
	Validate(ctx context.Context, code string, orderTotal decimal.Decimal) (*AppliedCoupon, error)
}

// TotalsSource prices a cart snapshot for display. Supplied by the pricing
// feature; rule fetch trouble degrades inside it, so it always answers.
type TotalsSource interface {
	Totals(ctx context.Context, c Cart) TotalsResponse
}

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, sess Session) (CartDetailResponse, error)
	Count(ctx context.Context, sess Session) (int, error)

	AddItem(ctx context.Context, sess Session, req AddItemRequest) error
	UpdateQty(ctx context.Context, sess Session, productID string, req UpdateQtyRequest) error
	RemoveItem(ctx context.Context, sess Session, productID string) error

	ApplyCoupon(ctx context.Context, sess Session, req ApplyCouponRequest) error
	RemoveCoupon(ctx context.Context, sess Session) error

	SyncOnLogin(ctx context.Context, sess Session) error
	Logout(ctx context.Context, sess Session) error

	// Snapshot hands the current cart to collaborators (checkout).
	Snapshot(ctx context.Context, sess Session) (Cart, error)
	// Clear empties the cart after a successful order.
	Clear(ctx context.Context, sess Session) error
}

type service struct {
	local   localstore.Store
	cloud   cloudstore.Store
	queue   *cloudsync.Queue
	coupons CouponResolver
	totals  TotalsSource

	validate *validator.Validate

	mu       sync.Mutex
	sessions map[string]*Manager
}

func NewService(local localstore.Store, cloud cloudstore.Store, queue *cloudsync.Queue, coupons CouponResolver, totals TotalsSource) Service {
	return &service{
		local:    local,
		cloud:    cloud,
		queue:    queue,
		coupons:  coupons,
		totals:   totals,
		validate: validator.New(),
		sessions: make(map[string]*Manager),
	}
}

// manager returns the session's Manager, creating and initializing it on
// first use. Initialization is the suspension point: no mutation reaches a
// manager before its Initialize has completed.
func (s *service) manager(ctx context.Context, sess Session) (*Manager, error) {
	if sess.DeviceID == "" {
		return nil, carterrors.ErrDeviceIDRequired
	}

	s.mu.Lock()
	m, ok := s.sessions[sess.DeviceID]
	if !ok {
		m = NewManager(sess.DeviceID, s.local, s.cloud, s.queue)
		s.sessions[sess.DeviceID] = m
	}
	s.mu.Unlock()

	if err := m.Initialize(ctx, sess.Identity); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Detail(ctx context.Context, sess Session) (CartDetailResponse, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return CartDetailResponse{}, err
	}
	snapshot, _ := m.Snapshot()

	res := toDetailResponse(snapshot)
	res.Totals = s.totals.Totals(ctx, snapshot)
	return res, nil
}

func (s *service) Count(ctx context.Context, sess Session) (int, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return 0, err
	}
	snapshot, _ := m.Snapshot()

	count := 0
	for _, item := range snapshot.Items {
		count += item.Quantity
	}
	return count, nil
}

func (s *service) AddItem(ctx context.Context, sess Session, req AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return carterrors.MapValidationError(err)
	}

	m, err := s.manager(ctx, sess)
	if err != nil {
		return err
	}

	item := LineItem{
		ProductID:   req.ProductID,
		Title:       req.Title,
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		Quantity:    req.Qty,
		MaxQuantity: req.MaxQty,
		ImageURL:    req.ImageURL,
	}
	if req.SalePrice != nil {
		sale := decimal.NewFromFloat(*req.SalePrice)
		item.SalePrice = &sale
	}
	return m.AddItem(item)
}

func (s *service) UpdateQty(ctx context.Context, sess Session, productID string, req UpdateQtyRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return carterrors.MapValidationError(err)
	}
	if productID == "" {
		return carterrors.ErrItemNotFound
	}

	m, err := s.manager(ctx, sess)
	if err != nil {
		return err
	}
	return m.UpdateQuantity(productID, req.Qty)
}

func (s *service) RemoveItem(ctx context.Context, sess Session, productID string) error {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return err
	}
	return m.RemoveItem(productID)
}

func (s *service) ApplyCoupon(ctx context.Context, sess Session, req ApplyCouponRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return carterrors.MapValidationError(err)
	}

	m, err := s.manager(ctx, sess)
	if err != nil {
		return err
	}

	snapshot, _ := m.Snapshot()
	resolved, err := s.coupons.Validate(ctx, req.Code, Subtotal(snapshot.Items))
	if err != nil {
		return err
	}
	return m.ApplyCoupon(*resolved)
}

func (s *service) RemoveCoupon(ctx context.Context, sess Session) error {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return err
	}
	return m.RemoveCoupon()
}

func (s *service) SyncOnLogin(ctx context.Context, sess Session) error {
	if sess.Identity == "" {
		return carterrors.ErrIdentityRequired
	}

	// Initialize with the pre-login view so guest-added items are in memory
	// before the merge.
	m, err := s.manager(ctx, Session{DeviceID: sess.DeviceID})
	if err != nil {
		return err
	}
	return m.SyncOnLogin(ctx, sess.Identity)
}

func (s *service) Logout(ctx context.Context, sess Session) error {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return err
	}
	m.Logout()
	return nil
}

func (s *service) Snapshot(ctx context.Context, sess Session) (Cart, error) {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return Cart{}, err
	}
	snapshot, _ := m.Snapshot()
	return snapshot, nil
}

func (s *service) Clear(ctx context.Context, sess Session) error {
	m, err := s.manager(ctx, sess)
	if err != nil {
		return err
	}
	return m.Clear()
}

func toDetailResponse(c Cart) CartDetailResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		row := CartItemResponse{
			ProductID:   item.ProductID,
			Title:       item.Title,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Quantity:    item.Quantity,
			MaxQuantity: item.MaxQuantity,
			ImageURL:    item.ImageURL,
		}
		if item.SalePrice != nil {
			sale := item.SalePrice.StringFixed(2)
			row.SalePrice = &sale
		}
		items = append(items, row)
	}

	res := CartDetailResponse{Items: items}
	if !c.UpdatedAt.IsZero() {
		res.UpdatedAt = c.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if c.AppliedCoupon != nil {
		res.AppliedCoupon = &AppliedCouponResponse{
			Code:           c.AppliedCoupon.Code,
			DiscountType:   string(c.AppliedCoupon.DiscountType),
			DiscountAmount: c.AppliedCoupon.DiscountAmount.StringFixed(2),
		}
	}
	return res
}
