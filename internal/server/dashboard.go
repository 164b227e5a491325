package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
)

type dashboardSummary struct {
	TodaySales       float64  `json:"todaySales"`
	TodayExpenses    float64  `json:"todayExpenses"`
	TotalUtang       float64  `json:"totalUtang"`
	LowStockProducts []string `json:"lowStockProducts"`
}

// DashboardSummary aggregates the figures the storefront dashboard shows:
// today's takings and spend, outstanding utang, and what needs restocking.
func (s *Server) DashboardSummary(c *gin.Context) {
	now := s.clock.Now()
	var summary dashboardSummary

	for _, t := range s.store.Transactions() {
		if !sameDay(t.Date, now) {
			continue
		}
		switch t.Type {
		case transactiondomain.TypeSale:
			summary.TodaySales += t.Amount
		case transactiondomain.TypeExpense:
			summary.TodayExpenses += t.Amount
		}
	}
	for _, cust := range s.store.Customers() {
		summary.TotalUtang += cust.TotalDebt
	}
	for _, p := range s.store.Products() {
		if p.LowStock() {
			summary.LowStockProducts = append(summary.LowStockProducts, p.Name)
		}
	}

	c.JSON(http.StatusOK, summary)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func (s *Server) Insights(c *gin.Context) {
	text := s.advisor.Summarize(
		c.Request.Context(),
		s.store.Transactions(),
		s.store.Products(),
		s.store.Customers(),
	)
	c.JSON(http.StatusOK, gin.H{"insights": text})
}

func (s *Server) Settings(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings.Get())
}
