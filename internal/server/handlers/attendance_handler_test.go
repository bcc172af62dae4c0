package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanvirdev/officebook/internal/domain/models"
)

func attendanceRouter(store *fakeAttendanceStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAttendanceHandler(store, nil)

	r := gin.New()
	r.POST("/attendance", h.Mark)
	r.GET("/attendance/date/:date", h.ListByDate)
	return r
}

func TestAttendanceMark(t *testing.T) {
	employeeID := primitive.NewObjectID()

	t.Run("creates new record", func(t *testing.T) {
		store := &fakeAttendanceStore{markUpdated: false}
		w := doJSON(t, attendanceRouter(store), http.MethodPost, "/attendance",
			`{"employeeId":"`+employeeID.Hex()+`","date":"2024-04-10","status":"present"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, employeeID, store.markedEmployee)
		assert.Equal(t, "2024-04-10", store.markedDate)
		assert.Equal(t, "present", store.markedStatus)
		assert.Contains(t, w.Body.String(), `"updated":false`)
	})

	t.Run("overwrite reported as updated", func(t *testing.T) {
		store := &fakeAttendanceStore{markUpdated: true}
		w := doJSON(t, attendanceRouter(store), http.MethodPost, "/attendance",
			`{"employeeId":"`+employeeID.Hex()+`","date":"2024-04-10","status":"absent"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated":true`)
	})

	t.Run("invalid employee id", func(t *testing.T) {
		store := &fakeAttendanceStore{}
		w := doJSON(t, attendanceRouter(store), http.MethodPost, "/attendance",
			`{"employeeId":"nope","date":"2024-04-10","status":"present"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		store := &fakeAttendanceStore{}
		w := doJSON(t, attendanceRouter(store), http.MethodPost, "/attendance",
			`{"employeeId":"`+employeeID.Hex()+`","date":"2024-04-10"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAttendanceListByDate(t *testing.T) {
	store := &fakeAttendanceStore{byDate: []models.Attendance{
		{EmployeeID: primitive.NewObjectID(), Date: "2024-04-10", Status: "present"},
		{EmployeeID: primitive.NewObjectID(), Date: "2024-04-10", Status: "absent"},
	}}
	w := doJSON(t, attendanceRouter(store), http.MethodGet, "/attendance/date/2024-04-10", "")

	require.Equal(t, http.StatusOK, w.Code)
	var rows []models.Attendance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}
