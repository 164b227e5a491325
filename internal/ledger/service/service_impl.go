package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/tindahan/internal/clock"
	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	"github.com/smallbiznis/tindahan/internal/ledger/domain"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Transactions transactiondomain.Repository
	Products     productdomain.Repository
	Customers    customerdomain.Repository
}

type Service struct {
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	transactions transactiondomain.Repository
	products     productdomain.Repository
	customers    customerdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:          p.Log.Named("ledger.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		transactions: p.Transactions,
		products:     p.Products,
		customers:    p.Customers,
	}
}

func (s *Service) Record(ctx context.Context, req domain.RecordRequest) (domain.Result, error) {
	if !req.Type.Valid() {
		return domain.Result{}, domain.ErrInvalidType
	}
	if req.Amount <= 0 {
		return domain.Result{}, domain.ErrInvalidAmount
	}
	if req.PaymentMethod != "" && !req.PaymentMethod.Valid() {
		return domain.Result{}, domain.ErrInvalidMethod
	}
	if req.Quantity < 0 {
		return domain.Result{}, domain.ErrInvalidQuantity
	}

	tx := transactiondomain.Transaction{
		ID:            s.genID.Generate().String(),
		Date:          s.clock.Now(),
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   strings.TrimSpace(req.Description),
		Category:      strings.TrimSpace(req.Category),
		PaymentMethod: req.PaymentMethod,
		CustomerID:    req.CustomerID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
	}

	result := domain.Result{Transaction: tx}

	// Step 1: append the ledger record. If this fails nothing happened.
	if err := s.transactions.Add(ctx, tx); err != nil {
		result.Steps = append(result.Steps, failed(domain.StepAppendTransaction, err))
		return result, err
	}
	result.Steps = append(result.Steps, ok(domain.StepAppendTransaction))

	// Step 2: stock decrement for a product-linked sale.
	if tx.Type == transactiondomain.TypeSale && tx.ProductID != "" {
		qty := tx.Quantity
		if qty < 1 {
			qty = 1
		}
		if _, err := s.products.DecrementStock(ctx, tx.ProductID, qty); err != nil {
			s.log.Warn("transaction recorded but stock not updated",
				zap.String("transaction_id", tx.ID),
				zap.String("product_id", tx.ProductID),
				zap.Error(err))
			result.Steps = append(result.Steps, failed(domain.StepDecrementStock, err))
			result.Steps = append(result.Steps, skipped(domain.StepAdjustDebt))
			return result, err
		}
		result.Steps = append(result.Steps, ok(domain.StepDecrementStock))
	} else {
		result.Steps = append(result.Steps, skipped(domain.StepDecrementStock))
	}

	// Step 3: debt adjustment for a customer-linked entry.
	delta, applies := debtDelta(tx)
	if applies {
		if _, err := s.customers.AdjustDebt(ctx, tx.CustomerID, delta, tx.Date); err != nil {
			s.log.Warn("transaction recorded but debt not updated",
				zap.String("transaction_id", tx.ID),
				zap.String("customer_id", tx.CustomerID),
				zap.Error(err))
			result.Steps = append(result.Steps, failed(domain.StepAdjustDebt, err))
			return result, err
		}
		result.Steps = append(result.Steps, ok(domain.StepAdjustDebt))
	} else {
		result.Steps = append(result.Steps, skipped(domain.StepAdjustDebt))
	}

	return result, nil
}

// debtDelta maps a transaction onto the customer's balance. A credit sale
// increases debt; a received payment decreases it, with no clamp on
// overpayment. Anything else leaves the balance alone.
func debtDelta(tx transactiondomain.Transaction) (float64, bool) {
	if tx.CustomerID == "" {
		return 0, false
	}
	switch {
	case tx.Type == transactiondomain.TypeSale && tx.PaymentMethod == transactiondomain.MethodCredit:
		return tx.Amount, true
	case tx.Type == transactiondomain.TypePaymentReceived:
		return -tx.Amount, true
	default:
		return 0, false
	}
}

func ok(name domain.StepName) domain.Step {
	return domain.Step{Name: name, Status: domain.StepOK}
}

func skipped(name domain.StepName) domain.Step {
	return domain.Step{Name: name, Status: domain.StepSkipped}
}

func failed(name domain.StepName, err error) domain.Step {
	return domain.Step{Name: name, Status: domain.StepFailed, Error: err.Error()}
}
