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

// AttendanceHandler serves the attendance tracking routes.
type AttendanceHandler struct {
	store  mongodb.AttendanceStore
	logger *zap.Logger
}

// NewAttendanceHandler constructs the HTTP handler adapter.
func NewAttendanceHandler(store mongodb.AttendanceStore, logger *zap.Logger) *AttendanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceHandler{store: store, logger: logger}
}

// Mark upserts the status for one (employeeId, date) pair.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	employeeID, err := primitive.ObjectIDFromHex(req.EmployeeID)
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid employee id"))
		return
	}

	date, err := models.NormalizeDate(req.Date)
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid date"))
		return
	}

	if req.Status == "" {
		respondError(c, h.logger, apperrors.Validation("Status required"))
		return
	}

	updated, err := h.store.MarkAttendance(c.Request.Context(), employeeID, date, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

// ListByDate returns all attendance rows for one date, unfiltered by employee.
func (h *AttendanceHandler) ListByDate(c *gin.Context) {
	records, err := h.store.ListAttendanceByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
