package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tindahan/internal/config"
	"github.com/smallbiznis/tindahan/internal/gateway"
	"github.com/smallbiznis/tindahan/internal/product/domain"
	"github.com/smallbiznis/tindahan/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Call(ctx context.Context, action string, data any) (*gateway.Response, error) {
	args := m.Called(ctx, action, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Response), args.Error(1)
}

func (m *mockGateway) FetchAll(ctx context.Context) (gateway.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(gateway.Snapshot), args.Error(1)
}

func newTestRepo(t *testing.T, gw gateway.Gateway) (domain.Repository, *store.Store) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	settings, err := config.NewStoreSettingsHolder()
	require.NoError(t, err)

	st := store.New(gw, zap.NewNop())
	repo := Provide(Params{
		Gateway:  gw,
		Store:    st,
		Log:      zap.NewNop(),
		GenID:    node,
		Settings: settings,
	})
	return repo, st
}

func okResponse() *gateway.Response {
	return &gateway.Response{Status: "ok"}
}

func TestAddAssignsIDAndDefaultCategory(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionAddProduct, mock.Anything).Return(okResponse(), nil)
	repo, st := newTestRepo(t, gw)

	p, err := repo.Add(context.Background(), domain.CreateRequest{
		Name: "Coke", Price: 20, Stock: 5, LowStockThreshold: 2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "General", p.Category)

	got := st.Products()
	require.Len(t, got, 1)
	assert.Equal(t, p, got[0])
	gw.AssertExpectations(t)
}

func TestAddValidation(t *testing.T) {
	gw := new(mockGateway)
	repo, st := newTestRepo(t, gw)

	_, err := repo.Add(context.Background(), domain.CreateRequest{Name: "  ", Price: 20})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = repo.Add(context.Background(), domain.CreateRequest{Name: "Coke", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = repo.Add(context.Background(), domain.CreateRequest{Name: "Coke", Stock: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidStock)

	// Validation failures never reach the network or the cache.
	assert.Empty(t, st.Products())
	gw.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything)
}

func TestFailedWriteLeavesCacheUntouched(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionAddProduct, mock.Anything).
		Return(nil, &gateway.NetworkError{Err: errors.New("timeout")})
	repo, st := newTestRepo(t, gw)

	before := st.Products()
	_, err := repo.Add(context.Background(), domain.CreateRequest{Name: "Coke", Price: 20})

	var netErr *gateway.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, before, st.Products())
}

func TestUpdateWritesGatewayThenCache(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionUpdateProduct, mock.Anything).Return(okResponse(), nil)
	repo, st := newTestRepo(t, gw)
	st.AddProduct(domain.Product{ID: "p1", Name: "Coke", Price: 20, Stock: 5})

	updated := domain.Product{ID: "p1", Name: "Coke", Price: 22, Stock: 5}
	require.NoError(t, repo.Update(context.Background(), updated))

	got, ok := st.ProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, 22.0, got.Price)
}

func TestUpdateFailureKeepsLastDurableState(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionUpdateProduct, mock.Anything).
		Return(nil, &gateway.RemoteError{Message: "boom"})
	repo, st := newTestRepo(t, gw)
	st.AddProduct(domain.Product{ID: "p1", Name: "Coke", Price: 20})

	err := repo.Update(context.Background(), domain.Product{ID: "p1", Name: "Coke", Price: 99})
	require.Error(t, err)

	got, ok := st.ProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, 20.0, got.Price)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	gw := new(mockGateway)
	repo, _ := newTestRepo(t, gw)

	err := repo.Update(context.Background(), domain.Product{ID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	gw.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteRemovesFromGatewayAndCache(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionDeleteProduct, mock.Anything).Return(okResponse(), nil)
	repo, st := newTestRepo(t, gw)
	st.AddProduct(domain.Product{ID: "p1"})

	require.NoError(t, repo.Delete(context.Background(), "p1"))
	assert.Empty(t, st.Products())
}

func TestDecrementStockClampsAtZero(t *testing.T) {
	cases := []struct {
		name  string
		stock int
		qty   int
		want  int
	}{
		{"plenty", 10, 3, 7},
		{"exact", 5, 5, 0},
		{"oversell", 2, 9, 0},
		{"zero quantity", 4, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := new(mockGateway)
			gw.On("Call", mock.Anything, gateway.ActionUpdateProduct, mock.Anything).Return(okResponse(), nil)
			repo, st := newTestRepo(t, gw)
			st.AddProduct(domain.Product{ID: "p1", Name: "Coke", Stock: tc.stock})

			p, err := repo.DecrementStock(context.Background(), "p1", tc.qty)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Stock)

			got, ok := st.ProductByID("p1")
			require.True(t, ok)
			assert.Equal(t, tc.want, got.Stock)
		})
	}
}

func TestDecrementStockUnknownProduct(t *testing.T) {
	gw := new(mockGateway)
	repo, _ := newTestRepo(t, gw)

	_, err := repo.DecrementStock(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
