package domain

import (
	"context"
	"time"
)

type Repository interface {
	Add(ctx context.Context, req CreateRequest) (Customer, error)
	Update(ctx context.Context, c Customer) error
	// Delete refuses while the balance exceeds DebtEpsilon.
	Delete(ctx context.Context, id string) error
	// AdjustDebt applies a signed delta to the balance and stamps the
	// last-transaction date. Negative balances are not clamped.
	AdjustDebt(ctx context.Context, id string, delta float64, at time.Time) (Customer, error)
}
