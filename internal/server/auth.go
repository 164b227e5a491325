package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/tindahan/internal/auth/domain"
)

func (s *Server) Login(c *gin.Context) {
	var creds authdomain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	user, err := s.authSvc.Login(c.Request.Context(), creds)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) Register(c *gin.Context) {
	var creds authdomain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	user, err := s.authSvc.Register(c.Request.Context(), creds)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}
