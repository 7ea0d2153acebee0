package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"sportconnect-api/models"
)

const (
	EarthRadiusKm     = 6371.0
	EarthRadiusMeters = 6371000.0
)

// HaversineKm calculates the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(a, b models.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// Bearing calculates the initial bearing (forward azimuth) from a to b.
// Returns degrees in [0, 360), where 0 is North and 90 is East.
func Bearing(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lonDiff := (b.Longitude - a.Longitude) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(bearing+360, 360)
}

// PathLengthKm sums consecutive haversine legs along a polyline.
func PathLengthKm(points []models.Coordinate) float64 {
	var total float64
	for i := 0; i+1 < len(points); i++ {
		total += HaversineKm(points[i], points[i+1])
	}
	return total
}
