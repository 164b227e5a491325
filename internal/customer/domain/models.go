package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// DebtEpsilon absorbs floating-point drift when deciding whether a customer
// still owes anything. Balances at or below it count as settled.
const DebtEpsilon = 0.5

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)

// Customer is a store patron who may carry an utang balance. TotalDebt is
// conventionally non-negative but an overpayment is not clamped.
type Customer struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	PhoneNumber         string     `json:"phoneNumber,omitempty"`
	TotalDebt           float64    `json:"totalDebt"`
	LastTransactionDate *time.Time `json:"lastTransactionDate,omitempty"`
}

// Settled reports whether the balance is close enough to zero to allow
// deletion.
func (c Customer) Settled() bool {
	return c.TotalDebt <= DebtEpsilon
}

type CreateRequest struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	TotalDebt   float64 `json:"totalDebt"`
}

func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if phone := strings.TrimSpace(r.PhoneNumber); phone != "" && !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	if r.TotalDebt < 0 {
		return ErrInvalidDebt
	}
	return nil
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidPhone    = errors.New("invalid_phone_number")
	ErrInvalidDebt     = errors.New("invalid_total_debt")
	ErrNotFound        = errors.New("customer_not_found")
	ErrOutstandingDebt = errors.New("customer_has_outstanding_debt")
)
