// Package sheetd is a development stand-in for the spreadsheet web app. It
// serves the same contract — one GET for the full snapshot, one POST per
// action — backed by SQLite, so the ledger runs locally and in tests.
package sheetd

import (
	"time"

	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
)

type ProductRow struct {
	ID                string `gorm:"primaryKey"`
	Name              string `gorm:"not null"`
	Category          string
	Price             float64
	Cost              float64
	Stock             int
	LowStockThreshold int
}

func (ProductRow) TableName() string { return "products" }

type CustomerRow struct {
	ID                  string `gorm:"primaryKey"`
	Name                string `gorm:"not null"`
	PhoneNumber         string
	TotalDebt           float64
	LastTransactionDate *time.Time
}

func (CustomerRow) TableName() string { return "customers" }

type TransactionRow struct {
	ID            string    `gorm:"primaryKey"`
	Date          time.Time `gorm:"index"`
	Type          string    `gorm:"not null"`
	Amount        float64
	Description   string
	Category      string
	PaymentMethod string
	CustomerID    string
	ProductID     string
	Quantity      int
}

func (TransactionRow) TableName() string { return "transactions" }

type UserRow struct {
	Username     string `gorm:"primaryKey"`
	PasswordHash string `gorm:"not null"`
}

func (UserRow) TableName() string { return "users" }

func productFromDomain(p productdomain.Product) ProductRow {
	return ProductRow{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price,
		Cost:              p.Cost,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
	}
}

func (r ProductRow) toDomain() productdomain.Product {
	return productdomain.Product{
		ID:                r.ID,
		Name:              r.Name,
		Category:          r.Category,
		Price:             r.Price,
		Cost:              r.Cost,
		Stock:             r.Stock,
		LowStockThreshold: r.LowStockThreshold,
	}
}

func customerFromDomain(c customerdomain.Customer) CustomerRow {
	return CustomerRow{
		ID:                  c.ID,
		Name:                c.Name,
		PhoneNumber:         c.PhoneNumber,
		TotalDebt:           c.TotalDebt,
		LastTransactionDate: c.LastTransactionDate,
	}
}

func (r CustomerRow) toDomain() customerdomain.Customer {
	return customerdomain.Customer{
		ID:                  r.ID,
		Name:                r.Name,
		PhoneNumber:         r.PhoneNumber,
		TotalDebt:           r.TotalDebt,
		LastTransactionDate: r.LastTransactionDate,
	}
}

func transactionFromDomain(t transactiondomain.Transaction) TransactionRow {
	return TransactionRow{
		ID:            t.ID,
		Date:          t.Date,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Description:   t.Description,
		Category:      t.Category,
		PaymentMethod: string(t.PaymentMethod),
		CustomerID:    t.CustomerID,
		ProductID:     t.ProductID,
		Quantity:      t.Quantity,
	}
}

func (r TransactionRow) toDomain() transactiondomain.Transaction {
	return transactiondomain.Transaction{
		ID:            r.ID,
		Date:          r.Date,
		Type:          transactiondomain.Type(r.Type),
		Amount:        r.Amount,
		Description:   r.Description,
		Category:      r.Category,
		PaymentMethod: transactiondomain.PaymentMethod(r.PaymentMethod),
		CustomerID:    r.CustomerID,
		ProductID:     r.ProductID,
		Quantity:      r.Quantity,
	}
}
