package domain

import (
	"context"

	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
)

// Snapshot is the compact numeric view of the business handed to the
// generator instead of the raw collections.
type Snapshot struct {
	TotalSales    float64
	TotalExpenses float64
	TotalUtang    float64
	LowStockItems []string
}

// Generator is the external text-generation collaborator. It may fail; the
// advisor absorbs every failure.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service produces advisory text. It never returns an error: the advisor is
// purely informational and must not block the rest of the system.
type Service interface {
	Summarize(ctx context.Context,
		transactions []transactiondomain.Transaction,
		products []productdomain.Product,
		customers []customerdomain.Customer,
	) string
}
