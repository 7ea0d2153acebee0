package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sportconnect-api/models"
)

// RouteFetcher resolves an ordered coordinate sequence to a planned route.
type RouteFetcher interface {
	Fetch(ctx context.Context, points []models.Coordinate) (*models.PlannedRoute, error)
}

// OSRMRouter calls an OSRM-compatible routing service. The caller guarantees
// at least two points; the first candidate route is always selected.
type OSRMRouter struct {
	baseURL string
	profile string
	client  *http.Client
}

func NewOSRMRouter(baseURL, profile string) *OSRMRouter {
	return &OSRMRouter{
		baseURL: baseURL,
		profile: profile,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type osrmResponse struct {
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry struct {
		Coordinates [][]float64 `json:"coordinates"` // [lng, lat]
	} `json:"geometry"`
	Legs     []osrmLeg `json:"legs"`
	Distance float64   `json:"distance"` // meters
	Duration float64   `json:"duration"` // seconds
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmStep struct {
	Name     string `json:"name"`
	Maneuver struct {
		Type string `json:"type"`
	} `json:"maneuver"`
}

func (r *OSRMRouter) Fetch(ctx context.Context, points []models.Coordinate) (*models.PlannedRoute, error) {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%f,%f", p.Longitude, p.Latitude)
	}

	endpoint := fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson&steps=true",
		r.baseURL, r.profile, strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: router returned status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var data osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if len(data.Routes) == 0 {
		return nil, ErrNoRouteFound
	}

	route := data.Routes[0]
	polyline := make([]models.Coordinate, 0, len(route.Geometry.Coordinates))
	for _, c := range route.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		polyline = append(polyline, models.Coordinate{Latitude: c[1], Longitude: c[0]})
	}

	var steps []string
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			steps = append(steps, formatStep(step))
		}
	}

	return &models.PlannedRoute{
		Points:      polyline,
		Steps:       steps,
		DistanceKm:  route.Distance / 1000,
		DurationMin: route.Duration / 60,
	}, nil
}

// formatStep renders one maneuver as "<type> por <street>", dropping the
// street part when the upstream gives none.
func formatStep(step osrmStep) string {
	maneuver := step.Maneuver.Type
	if maneuver == "" {
		maneuver = "continue"
	}
	if step.Name == "" {
		return maneuver
	}
	return fmt.Sprintf("%s por %s", maneuver, step.Name)
}
