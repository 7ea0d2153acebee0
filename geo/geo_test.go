package geo

import (
	"math"
	"testing"

	"sportconnect-api/models"
)

var (
	madrid    = models.Coordinate{Latitude: 40.4168, Longitude: -3.7038}
	barcelona = models.Coordinate{Latitude: 41.3851, Longitude: 2.1734}
)

func TestHaversineKmZeroDistance(t *testing.T) {
	if d := HaversineKm(madrid, madrid); d != 0 {
		t.Errorf("expected 0 distance for identical points, got %f", d)
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	ab := HaversineKm(madrid, barcelona)
	ba := HaversineKm(barcelona, madrid)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance is not symmetric: %f vs %f", ab, ba)
	}
}

func TestHaversineKmKnownDistance(t *testing.T) {
	d := HaversineKm(madrid, barcelona)
	if d < 499 || d > 510 {
		t.Errorf("Madrid-Barcelona distance = %f km, expected ~504 km", d)
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name     string
		from, to models.Coordinate
		want     float64
	}{
		{"due north", models.Coordinate{Latitude: 0, Longitude: 0}, models.Coordinate{Latitude: 1, Longitude: 0}, 0},
		{"due east", models.Coordinate{Latitude: 0, Longitude: 0}, models.Coordinate{Latitude: 0, Longitude: 1}, 90},
		{"due south", models.Coordinate{Latitude: 1, Longitude: 0}, models.Coordinate{Latitude: 0, Longitude: 0}, 180},
		{"due west", models.Coordinate{Latitude: 0, Longitude: 1}, models.Coordinate{Latitude: 0, Longitude: 0}, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bearing(tt.from, tt.to)
			if math.Abs(got-tt.want) > 0.5 {
				t.Errorf("Bearing() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestPathLengthKm(t *testing.T) {
	if total := PathLengthKm(nil); total != 0 {
		t.Errorf("empty path length = %f, want 0", total)
	}
	if total := PathLengthKm([]models.Coordinate{madrid}); total != 0 {
		t.Errorf("single point path length = %f, want 0", total)
	}

	direct := HaversineKm(madrid, barcelona)
	total := PathLengthKm([]models.Coordinate{madrid, barcelona})
	if math.Abs(total-direct) > 1e-9 {
		t.Errorf("two point path length = %f, want %f", total, direct)
	}

	// A path through a detour must be at least as long as the direct leg
	zaragoza := models.Coordinate{Latitude: 41.6488, Longitude: -0.8891}
	viaZaragoza := PathLengthKm([]models.Coordinate{madrid, zaragoza, barcelona})
	if viaZaragoza < direct {
		t.Errorf("detour path %f km shorter than direct %f km", viaZaragoza, direct)
	}
}
