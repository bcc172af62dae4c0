package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
	"github.com/tanvirdev/officebook/internal/service/reporting"
)

// ReportHandler serves the derived salary and daily summary views.
type ReportHandler struct {
	svc    *reporting.Service
	logger *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(svc *reporting.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// Salary recomputes the monthly payroll view for one employee.
func (h *ReportHandler) Salary(c *gin.Context) {
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

	report, err := h.svc.SalaryReport(c.Request.Context(), employeeID, month)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Daily computes the operations summary for one date on demand.
func (h *ReportHandler) Daily(c *gin.Context) {
	date, err := models.NormalizeDate(c.Param("date"))
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid date"))
		return
	}

	summary, err := h.svc.ComputeDailySummary(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
