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

// CustomerHandler serves the customer registry routes.
type CustomerHandler struct {
	store  mongodb.CustomerStore
	logger *zap.Logger
}

// NewCustomerHandler constructs the HTTP handler adapter.
func NewCustomerHandler(store mongodb.CustomerStore, logger *zap.Logger) *CustomerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerHandler{store: store, logger: logger}
}

// Create adds a customer; names are unique case-insensitively.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	if req.Name == "" {
		respondError(c, h.logger, apperrors.Validation("Customer name required"))
		return
	}

	customer, err := h.store.CreateCustomer(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Customer added successfully",
		"customer": customer,
	})
}

// List returns all customers, newest first.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.store.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Delete removes a customer and every rate-ledger entry carrying its name.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid customer id"))
		return
	}

	if err := h.store.DeleteCustomerCascade(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
