package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directionsBody = `{
	"features": [
		{
			"geometry": {
				"coordinates": [[8.681495, 49.41461], [8.686507, 49.41943]]
			},
			"properties": {
				"segments": [
					{"distance": 1408.8, "duration": 281.9}
				]
			}
		}
	]
}`

func TestDrivingRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/directions/driving-car", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.NotEmpty(t, r.URL.Query().Get("start"))
		assert.NotEmpty(t, r.URL.Query().Get("end"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(directionsBody))
	}))
	defer server.Close()

	t.Setenv("ORS_BASE_URL", server.URL)
	t.Setenv("ORS_API_KEY", "test-key")

	client := NewClient(nil)

	route, err := client.DrivingRoute(context.Background(), 8.681495, 49.41461, 8.686507, 49.41943)
	require.NoError(t, err)
	assert.Len(t, route.Path, 2)
	assert.Equal(t, 1408.8, route.Distance)
	assert.Equal(t, 281.9, route.Duration)
}

func TestDrivingRouteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	t.Setenv("ORS_BASE_URL", server.URL)
	t.Setenv("ORS_API_KEY", "test-key")

	client := NewClient(nil)

	_, err := client.DrivingRoute(context.Background(), 0, 0, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestDrivingRouteEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	t.Setenv("ORS_BASE_URL", server.URL)
	t.Setenv("ORS_API_KEY", "test-key")

	client := NewClient(nil)

	_, err := client.DrivingRoute(context.Background(), 0, 0, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
}
