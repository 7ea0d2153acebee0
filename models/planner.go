package models

// Coordinate is an immutable latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// PlannedRoute is the result of one successful planning call. It is replaced
// wholesale on re-planning and discarded on reset.
type PlannedRoute struct {
	Points      []Coordinate `json:"points"` // polyline, at least one point
	Steps       []string     `json:"steps"`  // turn-by-turn descriptions
	DistanceKm  float64      `json:"distance_km"`
	DurationMin float64      `json:"duration_min"`
}

// End returns the last polyline point.
func (r *PlannedRoute) End() Coordinate {
	return r.Points[len(r.Points)-1]
}

// NavigationStatus is the externally visible state of a navigation session.
type NavigationStatus struct {
	Active              bool          `json:"active"`
	CurrentPosition     *Coordinate   `json:"current_position,omitempty"`
	DistanceRemainingKm float64       `json:"distance_remaining_km"`
	Route               *PlannedRoute `json:"route,omitempty"`
}
