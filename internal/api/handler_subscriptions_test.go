package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bordbuch-backend/internal/model"
)

func TestPutSubscriptionValidation(t *testing.T) {
	router, _ := setupTestRouter(t, "subscription_validation_test")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/subscriptions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionLifecycle(t *testing.T) {
	router, testDB := setupTestRouter(t, "subscription_lifecycle_test")

	machines := []model.Machine{
		{Code: "A1", Stadt: "Berlin"},
		{Code: "A2", Stadt: "Berlin"},
	}
	require.NoError(t, testDB.Create(&machines).Error)

	payload, _ := json.Marshal(map[string]any{
		"endpoint":            "https://push.example/abc",
		"p256dh":              "key",
		"auth":                "secret",
		"subscribed_machines": []string{"A1", "A2"},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/subscriptions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/subscriptions?endpoint=https://push.example/abc", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SubscribedMachines []string `json:"subscribed_machines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"A1", "A2"}, resp.SubscribedMachines)

	deletePayload, _ := json.Marshal(map[string]string{"endpoint": "https://push.example/abc"})
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/subscriptions", bytes.NewReader(deletePayload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/subscriptions?endpoint=https://push.example/abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
