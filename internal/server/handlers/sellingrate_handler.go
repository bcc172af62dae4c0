package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
	"github.com/tanvirdev/officebook/internal/repository/mongodb"
)

// SellingRateHandler serves the per-date rate ledger routes.
type SellingRateHandler struct {
	store  mongodb.SellingRateStore
	logger *zap.Logger
}

// NewSellingRateHandler constructs the HTTP handler adapter.
func NewSellingRateHandler(store mongodb.SellingRateStore, logger *zap.Logger) *SellingRateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SellingRateHandler{store: store, logger: logger}
}

// Append upserts the date document and appends the given entries in order.
func (h *SellingRateHandler) Append(c *gin.Context) {
	var req models.AppendRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	if req.Date == "" {
		respondError(c, h.logger, apperrors.Validation("Date required"))
		return
	}
	if len(req.Rates) == 0 {
		respondError(c, h.logger, apperrors.Validation("Rates required"))
		return
	}

	for i := range req.Rates {
		if req.Rates[i].Piece.BoilerBig < 0 {
			req.Rates[i].Piece.BoilerBig = 0
		}
		if req.Rates[i].Piece.BoilerSmall < 0 {
			req.Rates[i].Piece.BoilerSmall = 0
		}
	}

	if err := h.store.AppendRates(c.Request.Context(), req.Date, req.CreatedAt, req.Rates); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rates saved"})
}

// Read returns the rate list for the query date, defaulting to today (UTC).
func (h *SellingRateHandler) Read(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = models.Today()
	}

	rates, err := h.store.RatesForDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "rates": rates})
}

// Patch updates the first matching customer's entry within the date
// document. A zero matched count is reported as counts, not as an error.
func (h *SellingRateHandler) Patch(c *gin.Context) {
	var req models.PatchRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	if req.Date == "" || req.CustomerName == "" {
		respondError(c, h.logger, apperrors.Validation("Date & customerName required"))
		return
	}
	if req.ProposalPrice == nil && req.ActualSellingPrice == nil && req.Piece == nil {
		respondError(c, h.logger, apperrors.Validation("nothing to update"))
		return
	}

	matched, modified, err := h.store.PatchRate(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}

// RemoveCustomer pulls every matching entry from the date document.
func (h *SellingRateHandler) RemoveCustomer(c *gin.Context) {
	var req models.RemoveCustomerRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	if req.Date == "" || req.CustomerName == "" {
		respondError(c, h.logger, apperrors.Validation("Date & customerName required"))
		return
	}

	modified, err := h.store.PullCustomerRates(c.Request.Context(), req.Date, req.CustomerName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "modifiedCount": modified})
}

// RemoveDate deletes the whole per-date ledger document.
func (h *SellingRateHandler) RemoveDate(c *gin.Context) {
	var req models.RemoveDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	if req.Date == "" {
		respondError(c, h.logger, apperrors.Validation("Date required"))
		return
	}

	deleted, err := h.store.DeleteDate(c.Request.Context(), req.Date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}
