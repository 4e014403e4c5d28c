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
)

type stubChecker struct {
	err error
}

func (s stubChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

func performHealthCheck(t *testing.T, deps ...Dependency) (int, map[string]any) {
	t.Helper()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/health", nil)

	DependencyHealthHandler(deps...)(recorder, request)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestDependencyHealthHandlerAllHealthy(t *testing.T) {
	code, body := performHealthCheck(t,
		Dependency{Name: "mongodb", Check: stubChecker{}, Required: true},
		Dependency{Name: "redis", Check: stubChecker{}},
	)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "ok", body["mongodb"])
	assert.Equal(t, "ok", body["redis"])
}

func TestDependencyHealthHandlerRequiredFailureDegrades(t *testing.T) {
	code, body := performHealthCheck(t,
		Dependency{Name: "mongodb", Check: stubChecker{err: errors.New("connection refused")}, Required: true},
	)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "connection refused", body["mongodb"])
}

func TestDependencyHealthHandlerOptionalFailureStaysHealthy(t *testing.T) {
	code, body := performHealthCheck(t,
		Dependency{Name: "mongodb", Check: stubChecker{}, Required: true},
		Dependency{Name: "redis", Check: stubChecker{err: errors.New("cache down")}},
	)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "cache down", body["redis"])
}
