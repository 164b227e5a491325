package domain

import (
	"context"
	"errors"
	"time"
)

// Type classifies a ledger entry.
type Type string

const (
	TypeSale            Type = "SALE"
	TypeExpense         Type = "EXPENSE"
	TypePaymentReceived Type = "PAYMENT_RECEIVED"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSale, TypeExpense, TypePaymentReceived:
		return true
	default:
		return false
	}
}

// PaymentMethod is meaningful for sales; CREDIT marks an utang sale.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "CASH"
	MethodGCash  PaymentMethod = "GCASH"
	MethodCredit PaymentMethod = "CREDIT"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodGCash, MethodCredit:
		return true
	default:
		return false
	}
}

// Transaction is an append-only ledger record. It has no update or delete
// operation; once written it is history. A referenced product may since have
// been deleted.
type Transaction struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	Type          Type          `json:"type"`
	Amount        float64       `json:"amount"`
	Description   string        `json:"description"`
	Category      string        `json:"category,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CustomerID    string        `json:"customerId,omitempty"`
	ProductID     string        `json:"productId,omitempty"`
	Quantity      int           `json:"quantity,omitempty"`
}

// Repository appends transactions. The ledger is append-only, so there is
// deliberately no Update or Delete.
type Repository interface {
	Add(ctx context.Context, t Transaction) error
}

var (
	ErrInvalidType   = errors.New("invalid_type")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidMethod = errors.New("invalid_payment_method")
)
