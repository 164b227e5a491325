package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ledgerdomain "github.com/smallbiznis/tindahan/internal/ledger/domain"
)

func (s *Server) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transactions": s.store.Transactions()})
}

// RecordTransaction runs the compound workflow. On a partial failure the
// response still carries the step-by-step result so the caller can tell what
// was already made durable.
func (s *Server) RecordTransaction(c *gin.Context) {
	var req ledgerdomain.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.ledgerSvc.Record(c.Request.Context(), req)
	if err != nil {
		if result.Recorded() {
			status, payload := mapError(err)
			c.JSON(status, gin.H{"error": payload, "result": result})
			return
		}
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
