package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegosantosouza/projeto-teste-truther/internal/application/dto"
)

func TestHealthHandler_Health(t *testing.T) {
	h := NewHealthHandler("development", nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "development", body.Environment)
	assert.False(t, body.Timestamp.IsZero())
	assert.NotEmpty(t, body.Uptime)
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("all dependencies ready", func(t *testing.T) {
		h := NewHealthHandler("development", map[string]ReadinessCheck{
			"mongodb":   func(ctx context.Context) error { return nil },
			"coingecko": func(ctx context.Context) error { return nil },
		})

		rec := httptest.NewRecorder()
		h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Status   string            `json:"status"`
			Services map[string]string `json:"services"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, "ready", body.Services["mongodb"])
		assert.Equal(t, "ready", body.Services["coingecko"])
	})

	t.Run("one failing dependency", func(t *testing.T) {
		h := NewHealthHandler("development", map[string]ReadinessCheck{
			"mongodb":   func(ctx context.Context) error { return nil },
			"coingecko": func(ctx context.Context) error { return errors.New("provider unreachable") },
		})

		rec := httptest.NewRecorder()
		h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body struct {
			Status   string            `json:"status"`
			Services map[string]string `json:"services"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "ready", body.Services["mongodb"])
		assert.Contains(t, body.Services["coingecko"], "provider unreachable")
	})
}
