package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/store"
	"github.com/limpanome/crm_backend/internal/middleware"
)

// paymentHandler handles the payment routes that are not nested under a
// contract. Creation lives on /contracts/:id/payments.
type paymentHandler struct {
	stores *store.Manager
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, stores *store.Manager) {
	h := &paymentHandler{stores: stores}

	payments := rg.Group("/payments")
	{
		payments.DELETE("/:id", h.deletePayment)
	}
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment. The contract's status is never re-derived downward; eligibility is monotonic.
// @Tags payments
// @Param   id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	if err := s.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			logger.Error("Failed to delete payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
