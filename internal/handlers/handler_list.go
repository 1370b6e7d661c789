package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/store"
	"github.com/limpanome/crm_backend/internal/dto"
	"github.com/limpanome/crm_backend/internal/middleware"
)

// listHandler handles HTTP requests related to shipment lists and the
// contracts moving through them.
type listHandler struct {
	stores *store.Manager
}

// registerListRoutes registers routes related to shipment lists.
func registerListRoutes(rg *gin.RouterGroup, stores *store.Manager) {
	h := &listHandler{stores: stores}

	lists := rg.Group("/lists")
	{
		lists.POST("", h.createList)
		lists.GET("", h.listLists)
		lists.GET("/:id", h.getList)
		lists.GET("/:id/contracts", h.listListContracts)
		lists.PUT("/:id", h.renameList)
		lists.DELETE("/:id", h.deleteList)
		lists.PUT("/:id/contracts/:contractID", h.addContract)
		lists.DELETE("/:id/contracts/:contractID", h.removeContract)
		lists.POST("/:id/complete", h.completeList)
	}
}

// createList godoc
// @Summary Open a shipment list
// @Tags lists
// @Accept  json
// @Produce  json
// @Param   list body dto.CreateListRequest true "List details"
// @Success 201 {object} dto.ListResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /lists [post]
func (h *listHandler) createList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateList", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	var createdAt time.Time
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}
	list, err := s.CreateList(c.Request.Context(), req.Name, createdAt)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create list", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create list"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToListResponse(list))
}

// listLists godoc
// @Summary List shipment lists
// @Tags lists
// @Produce  json
// @Success 200 {array} dto.ListResponse
// @Security BearerAuth
// @Router /lists [get]
func (h *listHandler) listLists(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponseList(s.Lists()))
}

// getList godoc
// @Summary Get a shipment list by ID
// @Tags lists
// @Produce  json
// @Param   id path string true "List ID"
// @Success 200 {object} dto.ListResponse
// @Failure 404 {object} map[string]string "List not found"
// @Security BearerAuth
// @Router /lists/{id} [get]
func (h *listHandler) getList(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	list, found := s.List(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(list))
}

// listListContracts godoc
// @Summary List the contracts in a shipment list
// @Tags lists
// @Produce  json
// @Param   id path string true "List ID"
// @Success 200 {array} dto.ContractResponse
// @Failure 404 {object} map[string]string "List not found"
// @Security BearerAuth
// @Router /lists/{id}/contracts [get]
func (h *listHandler) listListContracts(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	listID := c.Param("id")
	if _, found := s.List(listID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToContractResponseList(s.ContractsInList(listID)))
}

// renameList godoc
// @Summary Rename a shipment list
// @Tags lists
// @Accept  json
// @Produce  json
// @Param   id path string true "List ID"
// @Param   list body dto.UpdateListRequest true "New name"
// @Success 200 {object} dto.ListResponse
// @Failure 404 {object} map[string]string "List not found"
// @Security BearerAuth
// @Router /lists/{id} [put]
func (h *listHandler) renameList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenameList", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	list, err := s.RenameList(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to rename list", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename list"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListResponse(list))
}

// deleteList godoc
// @Summary Delete a shipment list
// @Description Deletes a list; its members drop back to eligible with no list link
// @Tags lists
// @Param   id path string true "List ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "List not found"
// @Security BearerAuth
// @Router /lists/{id} [delete]
func (h *listHandler) deleteList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	if err := s.DeleteList(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		} else {
			logger.Error("Failed to delete list", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete list"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// addContract godoc
// @Summary Add a contract to a shipment list
// @Description Adding to a non-open list is a silent no-op
// @Tags lists
// @Param   id path string true "List ID"
// @Param   contractID path string true "Contract ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "List or contract not found"
// @Security BearerAuth
// @Router /lists/{id}/contracts/{contractID} [put]
func (h *listHandler) addContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	if err := s.AddContractToList(c.Request.Context(), c.Param("id"), c.Param("contractID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add contract to list", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add contract to list"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// removeContract godoc
// @Summary Remove a contract from a shipment list
// @Tags lists
// @Param   id path string true "List ID"
// @Param   contractID path string true "Contract ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "List or contract not found"
// @Security BearerAuth
// @Router /lists/{id}/contracts/{contractID} [delete]
func (h *listHandler) removeContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	if err := s.RemoveContractFromList(c.Request.Context(), c.Param("id"), c.Param("contractID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to remove contract from list", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove contract from list"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// completeList godoc
// @Summary Complete a shipment list
// @Description Marks the list completed and every member contract completed, atomically
// @Tags lists
// @Param   id path string true "List ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "List not found"
// @Failure 500 {object} map[string]string "Failed to complete list"
// @Security BearerAuth
// @Router /lists/{id}/complete [post]
func (h *listHandler) completeList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}

	if err := s.CompleteList(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		} else {
			logger.Error("Failed to complete list", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete list"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
