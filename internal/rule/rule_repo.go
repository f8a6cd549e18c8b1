package rule

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=rule_repo.go -destination=../mock/rule/rule_repo_mock.go -package=mock
type Repository interface {
	// ListActive returns every ACTIVE rule. No ordering is guaranteed;
	// the pricing engine sorts its own snapshot.
	ListActive(ctx context.Context) ([]CartRule, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const listActiveQuery = `
SELECT id, name, type, priority, value, status, COALESCE(description, '')
FROM cart_rules
WHERE status = 'ACTIVE'`

func (r *repository) ListActive(ctx context.Context) ([]CartRule, error) {
	rows, err := r.db.QueryContext(ctx, listActiveQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []CartRule
	for rows.Next() {
		var cr CartRule
		if err := rows.Scan(&cr.ID, &cr.Name, &cr.Type, &cr.Priority, &cr.Value, &cr.Status, &cr.Description); err != nil {
			return nil, err
		}
		rules = append(rules, cr)
	}
	return rules, rows.Err()
}
