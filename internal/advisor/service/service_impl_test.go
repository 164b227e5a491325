package service

import (
	"context"
	"errors"
	"testing"

	"github.com/smallbiznis/tindahan/internal/advisor/domain"
	"github.com/smallbiznis/tindahan/internal/config"
	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func newService(t *testing.T, gen domain.Generator) domain.Service {
	t.Helper()
	settings, err := config.NewStoreSettingsHolder()
	require.NoError(t, err)
	return New(Params{Log: zap.NewNop(), Settings: settings, Generator: gen})
}

func TestSummarizeWithoutGenerator(t *testing.T) {
	svc := newService(t, nil)

	got := svc.Summarize(context.Background(), nil, nil, nil)
	assert.Equal(t, MsgMissingKey, got)
}

func TestSummarizeGeneratorFailure(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))
	svc := newService(t, gen)

	got := svc.Summarize(context.Background(), nil, nil, nil)
	assert.Equal(t, MsgUnavailable, got)
}

func TestSummarizeEmptyGeneration(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("  \n", nil)
	svc := newService(t, gen)

	got := svc.Summarize(context.Background(), nil, nil, nil)
	assert.Equal(t, MsgEmptyResponse, got)
}

func TestSummarizePromptCarriesAggregates(t *testing.T) {
	gen := new(mockGenerator)
	var prompt string
	gen.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { prompt = args.String(1) }).
		Return("Magandang balita: ok ang benta mo!", nil)
	svc := newService(t, gen)

	transactions := []transactiondomain.Transaction{
		{Type: transactiondomain.TypeSale, Amount: 120},
		{Type: transactiondomain.TypeSale, Amount: 80},
		{Type: transactiondomain.TypeExpense, Amount: 50},
		{Type: transactiondomain.TypePaymentReceived, Amount: 40},
	}
	products := []productdomain.Product{
		{Name: "Coke", Stock: 1, LowStockThreshold: 2},
		{Name: "SkyFlakes", Stock: 20, LowStockThreshold: 5},
	}
	customers := []customerdomain.Customer{
		{Name: "Maria", TotalDebt: 60},
		{Name: "Jun", TotalDebt: 40},
	}

	got := svc.Summarize(context.Background(), transactions, products, customers)
	assert.Equal(t, "Magandang balita: ok ang benta mo!", got)

	// Payments are neither sales nor expenses; they must not skew the totals.
	assert.Contains(t, prompt, "Total Recent Sales: ₱200.00")
	assert.Contains(t, prompt, "Total Expenses: ₱50.00")
	assert.Contains(t, prompt, "Total Customer Debt (Utang): ₱100.00")
	assert.Contains(t, prompt, "Low Stock Items: Coke")
	assert.NotContains(t, prompt, "SkyFlakes")
}

func TestSummarizeNoLowStockSaysNone(t *testing.T) {
	gen := new(mockGenerator)
	var prompt string
	gen.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { prompt = args.String(1) }).
		Return("tips", nil)
	svc := newService(t, gen)

	svc.Summarize(context.Background(), nil, []productdomain.Product{
		{Name: "Coke", Stock: 10, LowStockThreshold: 2},
	}, nil)
	assert.Contains(t, prompt, "Low Stock Items: None")
}
