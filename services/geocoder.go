package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sportconnect-api/models"
)

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (models.Coordinate, error)
}

// NominatimGeocoder calls the Nominatim search API. One outbound request per
// call, no retries.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Nominatim returns lat/lon as numeric strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (g *NominatimGeocoder) Resolve(ctx context.Context, address string) (models.Coordinate, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", g.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("User-Agent", "sportconnect-api")

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Coordinate{}, fmt.Errorf("%w: geocoder returned status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if len(results) == 0 {
		return models.Coordinate{}, fmt.Errorf("%w: %s", ErrNotFound, address)
	}

	// Only the first candidate is used
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: bad latitude %q", ErrUpstreamUnavailable, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: bad longitude %q", ErrUpstreamUnavailable, results[0].Lon)
	}

	return models.Coordinate{Latitude: lat, Longitude: lon}, nil
}
