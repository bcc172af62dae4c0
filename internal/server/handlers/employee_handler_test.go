package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
)

func employeeRouter(store *fakeEmployeeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEmployeeHandler(store, nil)

	r := gin.New()
	r.POST("/employees", h.Create)
	r.GET("/employees", h.List)
	r.PATCH("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeCreate(t *testing.T) {
	t.Run("stores active employee with numeric salary", func(t *testing.T) {
		store := &fakeEmployeeStore{}
		w := doJSON(t, employeeRouter(store), http.MethodPost, "/employees", `{"name":"Rahim","dailySalary":450}`)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, store.inserted)
		assert.Equal(t, models.StatusActive, store.inserted.Status)
		assert.Equal(t, 450.0, store.inserted.DailySalary)
		assert.False(t, store.inserted.CreatedAt.IsZero())

		var created models.Employee
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "Rahim", created.Name)
		assert.False(t, created.ID.IsZero())
	})

	t.Run("missing name", func(t *testing.T) {
		store := &fakeEmployeeStore{}
		w := doJSON(t, employeeRouter(store), http.MethodPost, "/employees", `{"dailySalary":450}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, store.inserted)
	})

	t.Run("non-positive salary", func(t *testing.T) {
		store := &fakeEmployeeStore{}
		w := doJSON(t, employeeRouter(store), http.MethodPost, "/employees", `{"name":"Rahim","dailySalary":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		store := &fakeEmployeeStore{}
		w := doJSON(t, employeeRouter(store), http.MethodPost, "/employees", `{`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeList(t *testing.T) {
	store := &fakeEmployeeStore{list: []models.Employee{
		{Name: "newest"}, {Name: "oldest"},
	}}
	w := doJSON(t, employeeRouter(store), http.MethodGet, "/employees", "")

	require.Equal(t, http.StatusOK, w.Code)
	var employees []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	require.Len(t, employees, 2)
	assert.Equal(t, "newest", employees[0].Name)
}

func TestEmployeeUpdate(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		store := &fakeEmployeeStore{}
		w := doJSON(t, employeeRouter(store), http.MethodPatch, "/employees/nope", `{"status":"inactive"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown employee", func(t *testing.T) {
		store := &fakeEmployeeStore{updateErr: apperrors.NotFound("Employee")}
		id := primitive.NewObjectID().Hex()
		w := doJSON(t, employeeRouter(store), http.MethodPatch, "/employees/"+id, `{"status":"inactive"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})

	t.Run("empty update rejected", func(t *testing.T) {
		store := &fakeEmployeeStore{}
		id := primitive.NewObjectID().Hex()
		w := doJSON(t, employeeRouter(store), http.MethodPatch, "/employees/"+id, `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		store := &fakeEmployeeStore{}
		id := primitive.NewObjectID()
		w := doJSON(t, employeeRouter(store), http.MethodPatch, "/employees/"+id.Hex(), `{"dailySalary":500}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, store.updatedID)
	})
}

func TestEmployeeDelete(t *testing.T) {
	t.Run("cascade invoked with parsed id", func(t *testing.T) {
		store := &fakeEmployeeStore{}
		id := primitive.NewObjectID()
		w := doJSON(t, employeeRouter(store), http.MethodDelete, "/employees/"+id.Hex(), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, store.deletedID)
	})

	t.Run("missing employee", func(t *testing.T) {
		store := &fakeEmployeeStore{deleteErr: apperrors.NotFound("Employee")}
		w := doJSON(t, employeeRouter(store), http.MethodDelete, "/employees/"+primitive.NewObjectID().Hex(), "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
