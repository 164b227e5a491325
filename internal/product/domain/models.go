package domain

import (
	"errors"
	"strings"
)

// Product is an inventory item. Stock never goes negative: sale-driven
// decrements clamp at zero.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Cost              float64 `json:"cost"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

// LowStock reports whether the product sits at or below its threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

type CreateRequest struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Cost              float64 `json:"cost"`
	Stock             int     `json:"stock"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if r.Price < 0 {
		return ErrInvalidPrice
	}
	if r.Cost < 0 {
		return ErrInvalidCost
	}
	if r.Stock < 0 {
		return ErrInvalidStock
	}
	if r.LowStockThreshold < 0 {
		return ErrInvalidThreshold
	}
	return nil
}

var (
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidPrice     = errors.New("invalid_price")
	ErrInvalidCost      = errors.New("invalid_cost")
	ErrInvalidStock     = errors.New("invalid_stock")
	ErrInvalidThreshold = errors.New("invalid_low_stock_threshold")
	ErrNotFound         = errors.New("product_not_found")
)
