package domain

import "context"

// Repository writes products through the remote store and keeps the local
// cache in lockstep: the network write happens first, the cache mutation only
// after the backend confirms.
type Repository interface {
	Add(ctx context.Context, req CreateRequest) (Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
	// DecrementStock lowers stock by qty, clamped at zero.
	DecrementStock(ctx context.Context, id string, qty int) (Product, error)
}
