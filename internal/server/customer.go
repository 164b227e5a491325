package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
)

func (s *Server) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"customers": s.store.Customers()})
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	cust, err := s.customers.Add(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var cust customerdomain.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	cust.ID = c.Param("id")

	if err := s.customers.Update(c.Request.Context(), cust); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	if err := s.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
