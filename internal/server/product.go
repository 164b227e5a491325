package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
)

func (s *Server) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": s.store.Products()})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	p, err := s.products.Add(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var p productdomain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	p.ID = c.Param("id")

	if err := s.products.Update(c.Request.Context(), p); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
