package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sportconnect-api/models"
	"sportconnect-api/services"
)

type stubGeocoder struct {
	err error
}

func (g *stubGeocoder) Resolve(_ context.Context, address string) (models.Coordinate, error) {
	if g.err != nil {
		return models.Coordinate{}, g.err
	}
	if address == "calle inventada" {
		return models.Coordinate{}, services.ErrNotFound
	}
	return models.Coordinate{Latitude: 40.4168, Longitude: -3.7038}, nil
}

type stubFetcher struct {
	err error
}

func (f *stubFetcher) Fetch(_ context.Context, points []models.Coordinate) (*models.PlannedRoute, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PlannedRoute{
		Points:      points,
		DistanceKm:  3.2,
		DurationMin: 40,
	}, nil
}

func newPlannerRouter(geocoder services.Geocoder, fetcher services.RouteFetcher, locationEnabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	tracker := services.NewTracker(locationEnabled)
	planner := services.NewPlanner(geocoder, fetcher, tracker)
	controller := NewPlannerController(planner, tracker)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	r.PUT("/mode", controller.SetMode)
	r.POST("/plan", controller.Plan)
	r.GET("/route", controller.GetPlannedRoute)
	r.POST("/points", controller.AddDrawPoint)
	r.POST("/navigation/start", controller.StartNavigation)
	r.POST("/navigation/position", controller.UpdatePosition)
	return r
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPlanAddressesEndpoint(t *testing.T) {
	router := newPlannerRouter(&stubGeocoder{}, &stubFetcher{}, true)

	w := postJSON(router, "/plan", map[string]interface{}{
		"mode":  "addresses",
		"start": "Gran Via",
		"end":   "Plaza Mayor",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	// The plan is now retrievable
	get := httptest.NewRecorder()
	router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/route", nil))
	if get.Code != http.StatusOK {
		t.Errorf("GET /route status = %d, want 200", get.Code)
	}
}

func TestPlanEndpointErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		geocoder   services.Geocoder
		fetcher    services.RouteFetcher
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name:       "unknown mode",
			geocoder:   &stubGeocoder{},
			fetcher:    &stubFetcher{},
			payload:    map[string]interface{}{"mode": "teleport", "start": "a", "end": "b"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank start address",
			geocoder:   &stubGeocoder{},
			fetcher:    &stubFetcher{},
			payload:    map[string]interface{}{"mode": "addresses", "start": "  ", "end": "Plaza Mayor"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "address not found",
			geocoder:   &stubGeocoder{},
			fetcher:    &stubFetcher{},
			payload:    map[string]interface{}{"mode": "addresses", "start": "calle inventada", "end": "Plaza Mayor"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "geocoder unavailable",
			geocoder:   &stubGeocoder{err: services.ErrUpstreamUnavailable},
			fetcher:    &stubFetcher{},
			payload:    map[string]interface{}{"mode": "addresses", "start": "Gran Via", "end": "Plaza Mayor"},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "no route between points",
			geocoder:   &stubGeocoder{},
			fetcher:    &stubFetcher{err: services.ErrNoRouteFound},
			payload:    map[string]interface{}{"mode": "addresses", "start": "Gran Via", "end": "Plaza Mayor"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "draw mode without points",
			geocoder:   &stubGeocoder{},
			fetcher:    &stubFetcher{},
			payload:    map[string]interface{}{"mode": "draw"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPlannerRouter(tt.geocoder, tt.fetcher, true)
			w := postJSON(router, "/plan", tt.payload)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestNavigationEndpoints(t *testing.T) {
	router := newPlannerRouter(&stubGeocoder{}, &stubFetcher{}, true)

	// Starting without a plan fails
	w := postJSON(router, "/navigation/start", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("start without plan: status = %d, want 404", w.Code)
	}

	// Position event without a session conflicts
	w = postJSON(router, "/navigation/position", map[string]interface{}{"latitude": 40.42, "longitude": -3.70})
	if w.Code != http.StatusConflict {
		t.Errorf("position without session: status = %d, want 409", w.Code)
	}

	// Plan, start, then feed a position
	if w = postJSON(router, "/plan", map[string]interface{}{"mode": "addresses", "start": "Gran Via", "end": "Plaza Mayor"}); w.Code != http.StatusOK {
		t.Fatalf("plan: status = %d", w.Code)
	}
	if w = postJSON(router, "/navigation/start", nil); w.Code != http.StatusOK {
		t.Fatalf("start: status = %d; body: %s", w.Code, w.Body.String())
	}
	if w = postJSON(router, "/navigation/position", map[string]interface{}{"latitude": 40.42, "longitude": -3.70}); w.Code != http.StatusOK {
		t.Errorf("position: status = %d; body: %s", w.Code, w.Body.String())
	}
}

func TestZeroCoordinatesAreAccepted(t *testing.T) {
	router := newPlannerRouter(&stubGeocoder{}, &stubFetcher{}, true)

	if w := postJSON(router, "/plan", map[string]interface{}{"mode": "addresses", "start": "Gran Via", "end": "Plaza Mayor"}); w.Code != http.StatusOK {
		t.Fatalf("plan: status = %d", w.Code)
	}
	if w := postJSON(router, "/navigation/start", nil); w.Code != http.StatusOK {
		t.Fatalf("start: status = %d", w.Code)
	}

	// The equator and the prime meridian are legal positions
	positions := []map[string]interface{}{
		{"latitude": 0.0, "longitude": 6.73},
		{"latitude": 51.48, "longitude": 0.0},
		{"latitude": 0.0, "longitude": 0.0},
	}
	for _, pos := range positions {
		if w := postJSON(router, "/navigation/position", pos); w.Code != http.StatusOK {
			t.Errorf("position %v: status = %d, want 200; body: %s", pos, w.Code, w.Body.String())
		}
	}

	// Out-of-range coordinates still fail range validation
	if w := postJSON(router, "/navigation/position", map[string]interface{}{"latitude": 95.0, "longitude": 0.0}); w.Code != http.StatusBadRequest {
		t.Errorf("out-of-range position: status = %d, want 400", w.Code)
	}
}

func TestDrawPointOnEquator(t *testing.T) {
	router := newPlannerRouter(&stubGeocoder{}, &stubFetcher{}, true)

	body, _ := json.Marshal(map[string]interface{}{"mode": "draw"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/mode", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("set mode: status = %d", w.Code)
	}

	if w := postJSON(router, "/points", map[string]interface{}{"latitude": 0.0, "longitude": -78.5}); w.Code != http.StatusOK {
		t.Errorf("zero-latitude draw point: status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
}

func TestStartNavigationWithoutLocation(t *testing.T) {
	router := newPlannerRouter(&stubGeocoder{}, &stubFetcher{}, false)

	if w := postJSON(router, "/plan", map[string]interface{}{"mode": "addresses", "start": "Gran Via", "end": "Plaza Mayor"}); w.Code != http.StatusOK {
		t.Fatalf("plan: status = %d", w.Code)
	}

	w := postJSON(router, "/navigation/start", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("start without position source: status = %d, want 503; body: %s", w.Code, w.Body.String())
	}
}
