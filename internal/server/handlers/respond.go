package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
)

// respondError maps any error onto the standard {message} body. Unexpected
// errors become a logged 500; the client never sees their details.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(status, gin.H{"message": appErr.Message})
		return
	}
	c.JSON(status, gin.H{"message": "internal server error"})
}
