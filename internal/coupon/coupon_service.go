package coupon

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"go-cart-api/internal/cart"
)

//go:generate mockgen -source=coupon_service.go -destination=../mock/coupon/coupon_service_mock.go -package=mock
type Service interface {
	// Validate resolves a code against the order total. Percentage coupons
	// are converted to a concrete amount here, so downstream pricing only
	// ever sees money.
	Validate(ctx context.Context, code string, orderTotal decimal.Decimal) (*cart.AppliedCoupon, error)

	// Redeem advances the code's use counter after its order went out.
	Redeem(ctx context.Context, code string) error
}

type service struct {
	repo    Repository
	nowFunc func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

func (s *service) Validate(ctx context.Context, code string, orderTotal decimal.Decimal) (*cart.AppliedCoupon, error) {
	record, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if record == nil || !record.Active {
		return nil, ErrCouponNotFound
	}

	now := s.nowFunc()
	if now.Before(record.StartDate) {
		return nil, ErrCouponNotStarted
	}
	if record.EndDate != nil && now.After(*record.EndDate) {
		return nil, ErrCouponExpired
	}
	if record.MaxUses != nil && record.UsedCount >= *record.MaxUses {
		return nil, ErrUsageLimitReached
	}
	if orderTotal.LessThan(record.MinOrderAmount) {
		return nil, ErrMinOrderNotMet
	}

	amount := record.DiscountValue
	discountType := cart.DiscountFixedAmount
	if record.DiscountType == DiscountTypePercentage {
		discountType = cart.DiscountPercentage
		amount = orderTotal.Mul(record.DiscountValue).Div(decimal.NewFromInt(100))
	}
	if amount.GreaterThan(orderTotal) {
		amount = orderTotal
	}

	return &cart.AppliedCoupon{
		Code:           record.Code,
		DiscountType:   discountType,
		DiscountAmount: amount,
	}, nil
}

func (s *service) Redeem(ctx context.Context, code string) error {
	record, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrCouponNotFound
	}
	return s.repo.IncrementUses(ctx, record.ID)
}
