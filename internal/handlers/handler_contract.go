package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/store"
	"github.com/limpanome/crm_backend/internal/dto"
	"github.com/limpanome/crm_backend/internal/middleware"
)

// contractHandler handles HTTP requests related to contracts and their
// derived views (balance, audit trail, payments).
type contractHandler struct {
	stores *store.Manager
}

// registerContractRoutes registers routes related to contracts.
func registerContractRoutes(rg *gin.RouterGroup, stores *store.Manager) {
	h := &contractHandler{stores: stores}

	contracts := rg.Group("/contracts")
	{
		contracts.POST("", h.createContract)
		contracts.GET("", h.listContracts)
		contracts.GET("/:id", h.getContract)
		contracts.PUT("/:id", h.updateContract)
		contracts.POST("/:id/return", h.returnContract)
		contracts.GET("/:id/balance", h.getBalance)
		contracts.GET("/:id/events", h.listEvents)
		contracts.GET("/:id/payments", h.listPayments)
		contracts.POST("/:id/payments", h.createPayment)
	}
}

// createContract godoc
// @Summary Open a new contract
// @Description Opens a contract for an existing client; new contracts start at in_progress
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   contract body dto.CreateContractRequest true "Contract details"
// @Success 201 {object} dto.ContractResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateContract", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	contract, err := s.AddContract(c.Request.Context(), req.ToNewContract())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create contract", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contract"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

// listContracts godoc
// @Summary List contracts
// @Description Lists all contracts of the logged-in operator
// @Tags contracts
// @Produce  json
// @Success 200 {array} dto.ContractResponse
// @Security BearerAuth
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponseList(s.Contracts()))
}

// getContract godoc
// @Summary Get a contract by ID
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 404 {object} map[string]string "Contract not found"
// @Security BearerAuth
// @Router /contracts/{id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	contract, found := s.Contract(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// updateContract godoc
// @Summary Update a contract
// @Description Edits contract terms; status and list membership only move through lifecycle routes
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   id path string true "Contract ID"
// @Param   contract body dto.UpdateContractRequest true "Fields to update"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Contract not found"
// @Security BearerAuth
// @Router /contracts/{id} [put]
func (h *contractHandler) updateContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateContract", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	contract, err := s.UpdateContract(c.Request.Context(), c.Param("id"), req.ToContractPatch())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update contract", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contract"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// returnContract godoc
// @Summary Mark a contract as returned
// @Description Moves the contract to returned, recording the mandatory reason in the audit trail
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   id path string true "Contract ID"
// @Param   return body dto.ReturnContractRequest true "Return reason"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 404 {object} map[string]string "Contract not found"
// @Security BearerAuth
// @Router /contracts/{id}/return [post]
func (h *contractHandler) returnContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReturnContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReturnContract", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	contract, err := s.ReturnContract(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to return contract", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return contract"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// getBalance godoc
// @Summary Get a contract's balance
// @Description Returns paid, remaining and raw percentage; unknown contracts yield all zeros
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {object} dto.BalanceResponse
// @Security BearerAuth
// @Router /contracts/{id}/balance [get]
func (h *contractHandler) getBalance(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(s.Balance(c.Param("id"))))
}

// listEvents godoc
// @Summary List a contract's audit trail
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {array} dto.ContractEventResponse
// @Security BearerAuth
// @Router /contracts/{id}/events [get]
func (h *contractHandler) listEvents(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToContractEventResponseList(s.EventsForContract(c.Param("id"))))
}

// listPayments godoc
// @Summary List a contract's payments
// @Tags contracts
// @Produce  json
// @Param   id path string true "Contract ID"
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /contracts/{id}/payments [get]
func (h *contractHandler) listPayments(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponseList(s.PaymentsForContract(c.Param("id"))))
}

// createPayment godoc
// @Summary Record a payment
// @Description Records an installment payment; reaching half the total value promotes the contract to eligible
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   id path string true "Contract ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Contract not found"
// @Security BearerAuth
// @Router /contracts/{id}/payments [post]
func (h *contractHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	payment, err := s.AddPayment(c.Request.Context(), req.ToNewPayment(c.Param("id")))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}
