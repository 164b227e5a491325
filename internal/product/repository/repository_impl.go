package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tindahan/internal/config"
	"github.com/smallbiznis/tindahan/internal/gateway"
	"github.com/smallbiznis/tindahan/internal/product/domain"
	"github.com/smallbiznis/tindahan/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Gateway  gateway.Gateway
	Store    *store.Store
	Log      *zap.Logger
	GenID    *snowflake.Node
	Settings *config.StoreSettingsHolder
}

type repo struct {
	gw       gateway.Gateway
	store    *store.Store
	log      *zap.Logger
	genID    *snowflake.Node
	settings *config.StoreSettingsHolder
}

func Provide(p Params) domain.Repository {
	return &repo{
		gw:       p.Gateway,
		store:    p.Store,
		log:      p.Log.Named("product.repository"),
		genID:    p.GenID,
		settings: p.Settings,
	}
}

func (r *repo) Add(ctx context.Context, req domain.CreateRequest) (domain.Product, error) {
	if err := req.Validate(); err != nil {
		return domain.Product{}, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = r.settings.Get().DefaultCategory
	}

	p := domain.Product{
		ID:                r.genID.Generate().String(),
		Name:              strings.TrimSpace(req.Name),
		Category:          category,
		Price:             req.Price,
		Cost:              req.Cost,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
	}

	if _, err := r.gw.Call(ctx, gateway.ActionAddProduct, p); err != nil {
		return domain.Product{}, err
	}
	r.store.AddProduct(p)
	return p, nil
}

func (r *repo) Update(ctx context.Context, p domain.Product) error {
	if _, ok := r.store.ProductByID(p.ID); !ok {
		return domain.ErrNotFound
	}
	if _, err := r.gw.Call(ctx, gateway.ActionUpdateProduct, p); err != nil {
		return err
	}
	return r.store.UpdateProduct(p)
}

func (r *repo) Delete(ctx context.Context, id string) error {
	if _, ok := r.store.ProductByID(id); !ok {
		return domain.ErrNotFound
	}
	if _, err := r.gw.Call(ctx, gateway.ActionDeleteProduct, map[string]string{"id": id}); err != nil {
		return err
	}
	return r.store.RemoveProduct(id)
}

// DecrementStock is a read-modify-write against the cache's current stock,
// clamped at zero. Selling past available stock is permitted and never drives
// stock negative.
func (r *repo) DecrementStock(ctx context.Context, id string, qty int) (domain.Product, error) {
	p, ok := r.store.ProductByID(id)
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}

	newStock := p.Stock - qty
	if newStock < 0 {
		newStock = 0
	}
	p.Stock = newStock

	if err := r.Update(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
