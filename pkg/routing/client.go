// Package routing wraps the OpenRouteService directions API used by the
// path-to-checkpoint query.
package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fogexplore/pkg/config"
	"fogexplore/pkg/database"

	"github.com/go-resty/resty/v2"
)

// ErrUpstream is returned for any provider-side failure. Handlers surface
// it as a generic fetch error, never the provider response verbatim.
var ErrUpstream = errors.New("routing provider request failed")

// Route is the provider's answer passed through to the client: geometry
// as [lng, lat] pairs, distance in meters, duration in seconds.
type Route struct {
	Path     [][]float64 `json:"path"`
	Distance float64     `json:"distance"`
	Duration float64     `json:"duration"`
}

// Client calls the OpenRouteService driving directions endpoint, with an
// optional Redis cache in front of it
type Client struct {
	http     *resty.Client
	apiKey   string
	cache    *database.Redis
	cacheTTL time.Duration
}

// NewClient creates a directions client. cache may be nil.
func NewClient(cache *database.Redis) *Client {
	httpClient := resty.New().
		SetBaseURL(config.GetORSBaseURL()).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		apiKey:   config.GetORSAPIKey(),
		cache:    cache,
		cacheTTL: config.GetDurationEnv("ROUTE_CACHE_TTL", 10*time.Minute),
	}
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// DrivingRoute resolves a driving route between two [lng, lat] points
func (c *Client) DrivingRoute(ctx context.Context, startLng, startLat, endLng, endLat float64) (*Route, error) {
	cacheKey := fmt.Sprintf("route:driving:%.5f,%.5f:%.5f,%.5f", startLng, startLat, endLng, endLat)

	if c.cache != nil {
		var cached Route
		if err := c.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		} else if !database.IsCacheMiss(err) {
			slog.Warn("Route cache read failed", "key", cacheKey, "error", err)
		}
	}

	var result directionsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key": c.apiKey,
			"start":   fmt.Sprintf("%f,%f", startLng, startLat),
			"end":     fmt.Sprintf("%f,%f", endLng, endLat),
		}).
		SetResult(&result).
		Get("/v2/directions/driving-car")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	if len(result.Features) == 0 || len(result.Features[0].Properties.Segments) == 0 {
		return nil, fmt.Errorf("%w: empty directions response", ErrUpstream)
	}

	feature := result.Features[0]
	route := &Route{
		Path:     feature.Geometry.Coordinates,
		Distance: feature.Properties.Segments[0].Distance,
		Duration: feature.Properties.Segments[0].Duration,
	}

	if c.cache != nil {
		if err := c.cache.SetJSON(ctx, cacheKey, route, c.cacheTTL); err != nil {
			slog.Warn("Route cache write failed", "key", cacheKey, "error", err)
		}
	}

	return route, nil
}
