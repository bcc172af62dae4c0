package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		respondError(c, zap.NewNop(), err)
		return w
	}

	t.Run("app error keeps its status and message", func(t *testing.T) {
		w := run(fmt.Errorf("lookup: %w", apperrors.NotFound("Employee")))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Employee not found"}`, w.Body.String())
	})

	t.Run("unknown error hides details behind a 500", func(t *testing.T) {
		w := run(errors.New("connection reset"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"internal server error"}`, w.Body.String())
	})
}
