// Package store holds the in-memory mirror of the three backend collections.
// It is authoritative for reads between network round-trips but never for
// durability; the spreadsheet behind the gateway is the only durable store.
package store

import (
	"context"
	"sort"
	"sync"

	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	"github.com/smallbiznis/tindahan/internal/gateway"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
	"go.uber.org/zap"
)

type Store struct {
	mu  sync.RWMutex
	gw  gateway.Gateway
	log *zap.Logger

	products     []productdomain.Product
	customers    []customerdomain.Customer
	transactions []transactiondomain.Transaction
}

func New(gw gateway.Gateway, log *zap.Logger) *Store {
	return &Store{
		gw:  gw,
		log: log.Named("store"),
	}
}

// Refresh replaces all three collections wholesale from a full fetch. On
// gateway failure every collection is reset to empty: callers must treat a
// failed refresh as "no data", never "old data retained".
func (s *Store) Refresh(ctx context.Context) error {
	snap, err := s.gw.FetchAll(ctx)
	if err != nil {
		s.log.Warn("refresh failed, clearing cache", zap.Error(err))
		s.Reset()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]productdomain.Product(nil), snap.Products...)
	s.customers = append([]customerdomain.Customer(nil), snap.Customers...)
	s.transactions = append([]transactiondomain.Transaction(nil), snap.Transactions...)
	return nil
}

// Reset empties all three collections.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.customers = nil
	s.transactions = nil
}

// Products returns a defensive copy of the product collection.
func (s *Store) Products() []productdomain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]productdomain.Product(nil), s.products...)
}

// Customers returns a defensive copy of the customer collection.
func (s *Store) Customers() []customerdomain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]customerdomain.Customer(nil), s.customers...)
}

// Transactions returns a defensive copy ordered most-recent-first by date.
// Equal timestamps keep their insertion order.
func (s *Store) Transactions() []transactiondomain.Transaction {
	s.mu.RLock()
	out := append([]transactiondomain.Transaction(nil), s.transactions...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ProductByID returns a copy of the product with the given id.
func (s *Store) ProductByID(id string) (productdomain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return productdomain.Product{}, false
}

// CustomerByID returns a copy of the customer with the given id.
func (s *Store) CustomerByID(id string) (customerdomain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return customerdomain.Customer{}, false
}

func (s *Store) AddProduct(p productdomain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

func (s *Store) UpdateProduct(p productdomain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return productdomain.ErrNotFound
}

func (s *Store) RemoveProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return productdomain.ErrNotFound
}

func (s *Store) AddCustomer(c customerdomain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
}

func (s *Store) UpdateCustomer(c customerdomain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return nil
		}
	}
	return customerdomain.ErrNotFound
}

func (s *Store) RemoveCustomer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return customerdomain.ErrNotFound
}

func (s *Store) AddTransaction(t transactiondomain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, t)
}
