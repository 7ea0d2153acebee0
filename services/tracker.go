package services

import (
	"sync"
	"time"

	"sportconnect-api/geo"
	"sportconnect-api/models"
)

// Tracker manages live navigation sessions. Position updates arrive as
// discrete events; once a session is stopped, late events are dropped.
type Tracker struct {
	hasPositionSource bool

	mu       sync.Mutex
	sessions map[string]*navigationSession
}

type navigationSession struct {
	route      *models.PlannedRoute
	current    *models.Coordinate
	remaining  float64
	active     bool
	startedAt  time.Time
	lastUpdate time.Time
}

func NewTracker(hasPositionSource bool) *Tracker {
	return &Tracker{
		hasPositionSource: hasPositionSource,
		sessions:          make(map[string]*navigationSession),
	}
}

// Start opens a navigation session for userID on the given route. An already
// active session is stopped first, so at most one session exists per user.
func (t *Tracker) Start(userID string, route *models.PlannedRoute) error {
	if !t.hasPositionSource {
		return ErrLocationUnavailable
	}
	if route == nil || len(route.Points) == 0 {
		return ErrNoPlannedRoute
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.sessions[userID] = &navigationSession{
		route:     route,
		active:    true,
		startedAt: time.Now(),
	}
	return nil
}

// UpdatePosition records a position event: it replaces the current position
// and recomputes the distance to the route's endpoint. Events for inactive
// or unknown sessions are rejected without mutating anything.
func (t *Tracker) UpdatePosition(userID string, pos models.Coordinate) (models.NavigationStatus, error) {
	if !pos.Valid() {
		return models.NavigationStatus{}, validationError("coordinates out of range")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[userID]
	if !ok || !s.active {
		return models.NavigationStatus{}, ErrNoActiveSession
	}

	p := pos
	s.current = &p
	s.remaining = geo.HaversineKm(pos, s.route.End())
	s.lastUpdate = time.Now()

	return s.status(), nil
}

// Stop deactivates the user's session. The flag flips under the same lock
// that guards position updates, so no event observed after Stop returns can
// mutate session state.
func (t *Tracker) Stop(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.sessions[userID]; ok {
		s.active = false
	}
}

// Status returns a snapshot of the user's session state.
func (t *Tracker) Status(userID string) models.NavigationStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[userID]
	if !ok {
		return models.NavigationStatus{}
	}
	return s.status()
}

// Active reports whether the user has a running session.
func (t *Tracker) Active(userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[userID]
	return ok && s.active
}

// CleanupStale drops sessions whose last activity is older than maxAge.
// Returns the number of removed sessions.
func (t *Tracker) CleanupStale(maxAge time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for userID, s := range t.sessions {
		last := s.lastUpdate
		if last.IsZero() {
			last = s.startedAt
		}
		if !s.active || last.Before(cutoff) {
			delete(t.sessions, userID)
			removed++
		}
	}
	return removed
}

func (s *navigationSession) status() models.NavigationStatus {
	st := models.NavigationStatus{
		Active:              s.active,
		DistanceRemainingKm: s.remaining,
		Route:               s.route,
	}
	if s.current != nil {
		c := *s.current
		st.CurrentPosition = &c
	}
	return st
}
