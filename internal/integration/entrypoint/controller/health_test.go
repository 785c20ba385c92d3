package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func checkHealth(t *testing.T, checker func() bool) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	NewHealthController(checker).Check(c)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	var response HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

func TestHealthController(t *testing.T) {
	t.Run("reports the database checker result", func(t *testing.T) {
		response := checkHealth(t, func() bool { return true })
		if response.Status != "ok" {
			t.Errorf("unexpected status: %s", response.Status)
		}
		if response.Database != "connected" {
			t.Errorf("expected database connected, got %s", response.Database)
		}

		response = checkHealth(t, func() bool { return false })
		if response.Database != "disconnected" {
			t.Errorf("expected database disconnected, got %s", response.Database)
		}
	})

	t.Run("a nil checker reports disconnected", func(t *testing.T) {
		response := checkHealth(t, nil)
		if response.Database != "disconnected" {
			t.Errorf("expected database disconnected, got %s", response.Database)
		}
	})
}
