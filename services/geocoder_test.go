package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNominatimGeocoderResolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// Two candidates; only the first counts
		w.Write([]byte(`[
			{"lat": "40.4168", "lon": "-3.7038", "display_name": "Madrid"},
			{"lat": "25.0", "lon": "25.0", "display_name": "Somewhere else"}
		]`))
	}))
	defer server.Close()

	g := NewNominatimGeocoder(server.URL)
	coord, err := g.Resolve(context.Background(), "Madrid")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if coord.Latitude != 40.4168 || coord.Longitude != -3.7038 {
		t.Errorf("Resolve() = %+v, want {40.4168 -3.7038}", coord)
	}
}

func TestNominatimGeocoderNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	g := NewNominatimGeocoder(server.URL)
	_, err := g.Resolve(context.Background(), "calle inventada 999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestNominatimGeocoderUpstreamFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
		{
			name: "non-numeric coordinates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"lat": "abc", "lon": "def"}]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			g := NewNominatimGeocoder(server.URL)
			_, err := g.Resolve(context.Background(), "Madrid")
			if !errors.Is(err, ErrUpstreamUnavailable) {
				t.Errorf("Resolve() error = %v, want ErrUpstreamUnavailable", err)
			}
		})
	}
}

func TestNominatimGeocoderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // reject all connections

	g := NewNominatimGeocoder(server.URL)
	_, err := g.Resolve(context.Background(), "Madrid")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("Resolve() error = %v, want ErrUpstreamUnavailable", err)
	}
}
