package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/tindahan/internal/gateway"
)

// RefreshCache re-reads the full snapshot. A failed refresh leaves the cache
// empty rather than stale.
func (s *Server) RefreshCache(c *gin.Context) {
	if err := s.store.Refresh(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ResetData wipes the backend and refreshes the now-empty cache.
func (s *Server) ResetData(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := s.gw.Call(ctx, gateway.ActionResetDB, nil); err != nil {
		AbortWithError(c, err)
		return
	}
	if err := s.store.Refresh(ctx); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
