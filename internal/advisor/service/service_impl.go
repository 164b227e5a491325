package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallbiznis/tindahan/internal/advisor/domain"
	"github.com/smallbiznis/tindahan/internal/config"
	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// User-safe fallbacks. The advisor degrades to these instead of failing.
const (
	MsgMissingKey    = "API Key is missing. Please configure your environment variables to use the AI features."
	MsgEmptyResponse = "Sorry, I couldn't generate insights right now."
	MsgUnavailable   = "An error occurred while connecting to the smart assistant. Please try again later."
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Settings  *config.StoreSettingsHolder
	Generator domain.Generator `optional:"true"`
}

type Service struct {
	log       *zap.Logger
	settings  *config.StoreSettingsHolder
	generator domain.Generator
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("advisor.service"),
		settings:  p.Settings,
		generator: p.Generator,
	}
}

func (s *Service) Summarize(ctx context.Context,
	transactions []transactiondomain.Transaction,
	products []productdomain.Product,
	customers []customerdomain.Customer,
) string {
	if s.generator == nil {
		return MsgMissingKey
	}

	snap := buildSnapshot(transactions, products, customers)
	prompt := s.buildPrompt(snap)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("insight generation failed", zap.Error(err))
		return MsgUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return MsgEmptyResponse
	}
	return text
}

func buildSnapshot(
	transactions []transactiondomain.Transaction,
	products []productdomain.Product,
	customers []customerdomain.Customer,
) domain.Snapshot {
	var snap domain.Snapshot
	for _, t := range transactions {
		switch t.Type {
		case transactiondomain.TypeSale:
			snap.TotalSales += t.Amount
		case transactiondomain.TypeExpense:
			snap.TotalExpenses += t.Amount
		}
	}
	for _, c := range customers {
		snap.TotalUtang += c.TotalDebt
	}
	for _, p := range products {
		if p.LowStock() {
			snap.LowStockItems = append(snap.LowStockItems, p.Name)
		}
	}
	return snap
}

func (s *Service) buildPrompt(snap domain.Snapshot) string {
	currency := s.settings.Get().CurrencySymbol
	lowStock := strings.Join(snap.LowStockItems, ", ")
	if lowStock == "" {
		lowStock = "None"
	}

	return fmt.Sprintf(`Act as a smart business consultant for a small Filipino Sari-sari store owner.
Analyze the following snapshot of their business data:

- Total Recent Sales: %s%.2f
- Total Expenses: %s%.2f
- Total Customer Debt (Utang): %s%.2f
- Low Stock Items: %s

Please provide 3 specific, actionable, and encouraging tips (in a mix of English and Tagalog for a friendly tone) to help the owner improve their cash flow and manage their store better. Keep it concise (under 150 words total).`,
		currency, snap.TotalSales,
		currency, snap.TotalExpenses,
		currency, snap.TotalUtang,
		lowStock,
	)
}
