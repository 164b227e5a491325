package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tindahan/internal/clock"
	"github.com/smallbiznis/tindahan/internal/customer/domain"
	"github.com/smallbiznis/tindahan/internal/gateway"
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

var testNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

func newTestRepo(t *testing.T, gw gateway.Gateway) (domain.Repository, *store.Store) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	st := store.New(gw, zap.NewNop())
	repo := Provide(Params{
		Gateway: gw,
		Store:   st,
		Log:     zap.NewNop(),
		GenID:   node,
		Clock:   clock.NewFakeClock(testNow),
	})
	return repo, st
}

func okResponse() *gateway.Response {
	return &gateway.Response{Status: "ok"}
}

func TestAddWithZeroBalance(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionAddCustomer, mock.Anything).Return(okResponse(), nil)
	repo, st := newTestRepo(t, gw)

	c, err := repo.Add(context.Background(), domain.CreateRequest{Name: "Aling Maria"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Zero(t, c.TotalDebt)
	assert.Nil(t, c.LastTransactionDate)
	assert.Len(t, st.Customers(), 1)
}

func TestAddWithStartingBalanceSeedsLastTransactionDate(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionAddCustomer, mock.Anything).Return(okResponse(), nil)
	repo, _ := newTestRepo(t, gw)

	c, err := repo.Add(context.Background(), domain.CreateRequest{Name: "Mang Jun", TotalDebt: 150})
	require.NoError(t, err)
	require.NotNil(t, c.LastTransactionDate)
	assert.Equal(t, testNow, *c.LastTransactionDate)
}

func TestAddValidatesPhoneNumber(t *testing.T) {
	gw := new(mockGateway)
	repo, _ := newTestRepo(t, gw)

	_, err := repo.Add(context.Background(), domain.CreateRequest{
		Name: "Maria", PhoneNumber: "not a number!",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)

	gw.On("Call", mock.Anything, gateway.ActionAddCustomer, mock.Anything).Return(okResponse(), nil)
	_, err = repo.Add(context.Background(), domain.CreateRequest{
		Name: "Maria", PhoneNumber: "+63 (917) 555-0101",
	})
	assert.NoError(t, err)
}

func TestDeleteRefusedWhileDebtOutstanding(t *testing.T) {
	gw := new(mockGateway)
	repo, st := newTestRepo(t, gw)
	st.AddCustomer(domain.Customer{ID: "c1", Name: "Maria", TotalDebt: 60})

	err := repo.Delete(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrOutstandingDebt)
	assert.Len(t, st.Customers(), 1)
	gw.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteAllowedWithinEpsilon(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionDeleteCustomer, mock.Anything).Return(okResponse(), nil)
	repo, st := newTestRepo(t, gw)
	// Float drift from repeated debt arithmetic should not trap a settled
	// customer.
	st.AddCustomer(domain.Customer{ID: "c1", Name: "Maria", TotalDebt: 0.0000001})

	require.NoError(t, repo.Delete(context.Background(), "c1"))
	assert.Empty(t, st.Customers())
}

func TestAdjustDebtStampsLastTransactionDate(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionUpdateCustomer, mock.Anything).Return(okResponse(), nil)
	repo, st := newTestRepo(t, gw)
	st.AddCustomer(domain.Customer{ID: "c1", Name: "Maria", TotalDebt: 100})

	at := testNow.Add(2 * time.Hour)
	c, err := repo.AdjustDebt(context.Background(), "c1", -40, at)
	require.NoError(t, err)
	assert.Equal(t, 60.0, c.TotalDebt)
	require.NotNil(t, c.LastTransactionDate)
	assert.Equal(t, at, *c.LastTransactionDate)

	got, ok := st.CustomerByID("c1")
	require.True(t, ok)
	assert.Equal(t, 60.0, got.TotalDebt)
}

func TestAdjustDebtOverpaymentGoesNegative(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionUpdateCustomer, mock.Anything).Return(okResponse(), nil)
	repo, st := newTestRepo(t, gw)
	st.AddCustomer(domain.Customer{ID: "c1", Name: "Maria", TotalDebt: 30})

	c, err := repo.AdjustDebt(context.Background(), "c1", -50, testNow)
	require.NoError(t, err)
	// Overpayment is not clamped; the balance simply goes negative.
	assert.Equal(t, -20.0, c.TotalDebt)
}

func TestAdjustDebtFailureKeepsCache(t *testing.T) {
	gw := new(mockGateway)
	gw.On("Call", mock.Anything, gateway.ActionUpdateCustomer, mock.Anything).
		Return(nil, &gateway.NetworkError{})
	repo, st := newTestRepo(t, gw)
	st.AddCustomer(domain.Customer{ID: "c1", Name: "Maria", TotalDebt: 100})

	_, err := repo.AdjustDebt(context.Background(), "c1", 50, testNow)
	require.Error(t, err)

	got, ok := st.CustomerByID("c1")
	require.True(t, ok)
	assert.Equal(t, 100.0, got.TotalDebt)
	assert.Nil(t, got.LastTransactionDate)
}
