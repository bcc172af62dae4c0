package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvirdev/officebook/internal/domain/models"
)

func TestSendDailySummary(t *testing.T) {
	t.Run("posts the summary as json", func(t *testing.T) {
		var received models.DailySummary
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewWebhookClient(srv.URL)
		err := client.SendDailySummary(context.Background(), models.DailySummary{
			Date:         "2024-04-10",
			TotalAdvance: 700,
			PresentCount: 8,
		})

		require.NoError(t, err)
		assert.Equal(t, "2024-04-10", received.Date)
		assert.Equal(t, 700.0, received.TotalAdvance)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewWebhookClient(srv.URL)
		err := client.SendDailySummary(context.Background(), models.DailySummary{Date: "2024-04-10"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}
