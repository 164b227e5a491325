package repository

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tindahan/internal/clock"
	"github.com/smallbiznis/tindahan/internal/customer/domain"
	"github.com/smallbiznis/tindahan/internal/gateway"
	"github.com/smallbiznis/tindahan/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Gateway gateway.Gateway
	Store   *store.Store
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
}

type repo struct {
	gw    gateway.Gateway
	store *store.Store
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
}

func Provide(p Params) domain.Repository {
	return &repo{
		gw:    p.Gateway,
		store: p.Store,
		log:   p.Log.Named("customer.repository"),
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (r *repo) Add(ctx context.Context, req domain.CreateRequest) (domain.Customer, error) {
	if err := req.Validate(); err != nil {
		return domain.Customer{}, err
	}

	c := domain.Customer{
		ID:          r.genID.Generate().String(),
		Name:        strings.TrimSpace(req.Name),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		TotalDebt:   req.TotalDebt,
	}
	// A non-zero starting balance also seeds the last-transaction date.
	if req.TotalDebt > 0 {
		now := r.clock.Now()
		c.LastTransactionDate = &now
	}

	if _, err := r.gw.Call(ctx, gateway.ActionAddCustomer, c); err != nil {
		return domain.Customer{}, err
	}
	r.store.AddCustomer(c)
	return c, nil
}

func (r *repo) Update(ctx context.Context, c domain.Customer) error {
	if _, ok := r.store.CustomerByID(c.ID); !ok {
		return domain.ErrNotFound
	}
	if _, err := r.gw.Call(ctx, gateway.ActionUpdateCustomer, c); err != nil {
		return err
	}
	return r.store.UpdateCustomer(c)
}

func (r *repo) Delete(ctx context.Context, id string) error {
	c, ok := r.store.CustomerByID(id)
	if !ok {
		return domain.ErrNotFound
	}
	if !c.Settled() {
		return domain.ErrOutstandingDebt
	}
	if _, err := r.gw.Call(ctx, gateway.ActionDeleteCustomer, map[string]string{"id": id}); err != nil {
		return err
	}
	return r.store.RemoveCustomer(id)
}

func (r *repo) AdjustDebt(ctx context.Context, id string, delta float64, at time.Time) (domain.Customer, error) {
	c, ok := r.store.CustomerByID(id)
	if !ok {
		return domain.Customer{}, domain.ErrNotFound
	}

	c.TotalDebt += delta
	stamp := at
	c.LastTransactionDate = &stamp

	if err := r.Update(ctx, c); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}
