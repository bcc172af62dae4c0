package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
	"github.com/tanvirdev/officebook/internal/repository/mongodb"
)

// EmployeeHandler serves the employee registry routes.
type EmployeeHandler struct {
	store  mongodb.EmployeeStore
	logger *zap.Logger
}

// NewEmployeeHandler constructs the HTTP handler adapter.
func NewEmployeeHandler(store mongodb.EmployeeStore, logger *zap.Logger) *EmployeeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeHandler{store: store, logger: logger}
}

// Create registers a new employee with status "active".
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	if req.Name == "" || req.DailySalary <= 0 {
		respondError(c, h.logger, apperrors.Validation("Name & salary required"))
		return
	}

	employee := models.Employee{
		Name:        req.Name,
		DailySalary: req.DailySalary,
		Status:      models.StatusActive,
		CreatedAt:   time.Now(),
	}

	created, err := h.store.InsertEmployee(c.Request.Context(), employee)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List returns all employees, newest first.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.store.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// Update applies a partial update to one employee.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid employee id"))
		return
	}

	var update models.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, h.logger, apperrors.Validation("invalid request body"))
		return
	}
	if update.Empty() {
		respondError(c, h.logger, apperrors.Validation("nothing to update"))
		return
	}

	if err := h.store.UpdateEmployee(c.Request.Context(), id, update); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee updated successfully"})
}

// Delete removes an employee and cascades to its attendance and advances.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, apperrors.Validation("Invalid employee id"))
		return
	}

	if err := h.store.DeleteEmployeeCascade(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee deleted successfully"})
}
