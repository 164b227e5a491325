package repository

import (
	"context"

	"github.com/smallbiznis/tindahan/internal/gateway"
	"github.com/smallbiznis/tindahan/internal/store"
	"github.com/smallbiznis/tindahan/internal/transaction/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Gateway gateway.Gateway
	Store   *store.Store
	Log     *zap.Logger
}

type repo struct {
	gw    gateway.Gateway
	store *store.Store
	log   *zap.Logger
}

func Provide(p Params) domain.Repository {
	return &repo{
		gw:    p.Gateway,
		store: p.Store,
		log:   p.Log.Named("transaction.repository"),
	}
}

func (r *repo) Add(ctx context.Context, t domain.Transaction) error {
	if !t.Type.Valid() {
		return domain.ErrInvalidType
	}
	if t.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if _, err := r.gw.Call(ctx, gateway.ActionAddTransaction, t); err != nil {
		return err
	}
	r.store.AddTransaction(t)
	return nil
}
