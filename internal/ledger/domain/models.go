package domain

import (
	"context"
	"errors"
	"fmt"

	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
)

// RecordRequest is one user-facing action: "sell 3 Cokes on credit",
// "log an expense", "Maria paid 40".
type RecordRequest struct {
	Type          transactiondomain.Type          `json:"type"`
	Amount        float64                         `json:"amount"`
	Description   string                          `json:"description"`
	Category      string                          `json:"category"`
	PaymentMethod transactiondomain.PaymentMethod `json:"paymentMethod"`
	CustomerID    string                          `json:"customerId"`
	ProductID     string                          `json:"productId"`
	Quantity      int                             `json:"quantity"`
}

// StepName identifies one of the dependent writes a recorded transaction
// fans out into.
type StepName string

const (
	StepAppendTransaction StepName = "append_transaction"
	StepDecrementStock    StepName = "decrement_stock"
	StepAdjustDebt        StepName = "adjust_debt"
)

type StepStatus string

const (
	StepOK      StepStatus = "ok"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

type Step struct {
	Name   StepName   `json:"name"`
	Status StepStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Result reports what actually happened, step by step. The steps are not
// transactional: when a later step fails the transaction record is already
// durable and no compensation is attempted. A caller holding a Result can
// tell "nothing happened" from "recorded, side effects missing".
type Result struct {
	Transaction transactiondomain.Transaction `json:"transaction"`
	Steps       []Step                        `json:"steps"`
}

// Recorded reports whether the ledger append itself went through.
func (r Result) Recorded() bool {
	for _, s := range r.Steps {
		if s.Name == StepAppendTransaction {
			return s.Status == StepOK
		}
	}
	return false
}

type Service interface {
	// Record runs the fixed sequence: append, then stock decrement for a
	// product-linked sale, then debt adjustment for a customer-linked
	// credit sale or payment.
	Record(ctx context.Context, req RecordRequest) (Result, error)
}

// DeriveSale computes the auto-filled amount and description for a
// product-linked sale. Pure computation; quantities below one count as one.
func DeriveSale(p productdomain.Product, quantity int) (amount float64, description string) {
	if quantity < 1 {
		quantity = 1
	}
	return p.Price * float64(quantity), fmt.Sprintf("%dx %s", quantity, p.Name)
}

var (
	ErrInvalidType     = errors.New("invalid_type")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidMethod   = errors.New("invalid_payment_method")
	ErrInvalidQuantity = errors.New("invalid_quantity")
)
