package coupon

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=coupon_repo.go -destination=../mock/coupon/coupon_repo_mock.go -package=mock
type Repository interface {
	// FindByCode returns (nil, nil) when no such code exists.
	FindByCode(ctx context.Context, code string) (*Code, error)
	IncrementUses(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const findByCodeQuery = `
SELECT id, code, COALESCE(description, ''), discount_type, discount_value,
       min_order_amount, max_uses, used_count, active, start_date, end_date,
       created_at, updated_at
FROM coupon_codes
WHERE code = $1`

func (r *repository) FindByCode(ctx context.Context, code string) (*Code, error) {
	var c Code
	var maxUses sql.NullInt64
	var endDate sql.NullTime

	err := r.db.QueryRowContext(ctx, findByCodeQuery, code).Scan(
		&c.ID, &c.Code, &c.Description, &c.DiscountType, &c.DiscountValue,
		&c.MinOrderAmount, &maxUses, &c.UsedCount, &c.Active, &c.StartDate,
		&endDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if maxUses.Valid {
		uses := int(maxUses.Int64)
		c.MaxUses = &uses
	}
	if endDate.Valid {
		end := endDate.Time
		c.EndDate = &end
	}
	return &c, nil
}

func (r *repository) IncrementUses(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE coupon_codes SET used_count = used_count + 1, updated_at = NOW() WHERE id = $1`, id)
	return err
}
