package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
	"github.com/tanvirdev/officebook/internal/repository/mongodb"
)

// AdvanceHandler serves the cash advance routes.
type AdvanceHandler struct {
	store  mongodb.AdvanceStore
	logger *zap.Logger
}

// NewAdvanceHandler constructs the HTTP handler adapter.
func NewAdvanceHandler(store mongodb.AdvanceStore, logger *zap.Logger) *AdvanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvanceHandler{store: store, logger: logger}
}

// ListByDate returns all advances disbursed on the (normalized) path date.
func (h *AdvanceHandler) ListByDate(c *gin.Context) {
	date, err := models.NormalizeDate(c.Param("date"))
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid date"))
		return
	}

	advances, err := h.store.ListAdvancesByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, advances)
}

// MonthlySummary returns per-date advance totals for one employee and month.
func (h *AdvanceHandler) MonthlySummary(c *gin.Context) {
	employeeID, err := primitive.ObjectIDFromHex(c.Param("employeeId"))
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid employee id"))
		return
	}

	month := c.Param("month")
	if !models.ValidMonth(month) {
		respondError(c, h.logger, apperrors.Validation("Invalid month"))
		return
	}

	days, err := h.store.MonthlyAdvanceSummary(c.Request.Context(), employeeID, month)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *AdvanceHandler) bindRequest(c *gin.Context) (primitive.ObjectID, string, float64, bool) {
	var req models.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid data"))
		return primitive.NilObjectID, "", 0, false
	}

	if req.EmployeeID == "" || req.Date == "" {
		respondError(c, h.logger, apperrors.Validation("Invalid data"))
		return primitive.NilObjectID, "", 0, false
	}

	employeeID, err := primitive.ObjectIDFromHex(req.EmployeeID)
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid employee id"))
		return primitive.NilObjectID, "", 0, false
	}

	date, err := models.NormalizeDate(req.Date)
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid date"))
		return primitive.NilObjectID, "", 0, false
	}

	return employeeID, date, req.Amount, true
}

// Create records a new advance; an existing (employeeId, date) advance is a
// conflict, never overwritten.
func (h *AdvanceHandler) Create(c *gin.Context) {
	employeeID, date, amount, ok := h.bindRequest(c)
	if !ok {
		return
	}

	if err := h.store.CreateAdvance(c.Request.Context(), employeeID, date, amount); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Advance created"})
}

// Update changes the amount of an existing advance only.
func (h *AdvanceHandler) Update(c *gin.Context) {
	employeeID, date, amount, ok := h.bindRequest(c)
	if !ok {
		return
	}

	if err := h.store.UpdateAdvance(c.Request.Context(), employeeID, date, amount); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Advance updated"})
}
