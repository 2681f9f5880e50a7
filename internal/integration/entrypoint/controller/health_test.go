package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performHealthCheck(t *testing.T, check CheckFunc) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	NewHealthController(check).Check(ctx)

	var body HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	return recorder, body
}

func TestHealthCheck_DatabaseReachable(t *testing.T) {
	recorder, body := performHealthCheck(t, func() bool { return true })

	if recorder.Code != http.StatusOK {
		t.Errorf("status code = %d, want %d", recorder.Code, http.StatusOK)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want %q", body.Status, "ok")
	}
	if body.Database != "connected" {
		t.Errorf("database = %q, want %q", body.Database, "connected")
	}
	if body.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestHealthCheck_DatabaseUnreachable(t *testing.T) {
	recorder, body := performHealthCheck(t, func() bool { return false })

	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want %d", recorder.Code, http.StatusServiceUnavailable)
	}
	if body.Status != "degraded" {
		t.Errorf("status = %q, want %q", body.Status, "degraded")
	}
	if body.Database != "disconnected" {
		t.Errorf("database = %q, want %q", body.Database, "disconnected")
	}
}

func TestHealthCheck_NilCheckReportsDegraded(t *testing.T) {
	recorder, _ := performHealthCheck(t, nil)

	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want %d", recorder.Code, http.StatusServiceUnavailable)
	}
}
