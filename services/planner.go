package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"sportconnect-api/models"
)

// Input modes for route planning.
const (
	ModeAddresses = "addresses"
	ModeDraw      = "draw"
)

// Planner coordinates the two planning input modes into a normalized
// coordinate sequence, resolves it through the route fetcher and keeps the
// per-user planning session state (mode, draw points, current plan).
type Planner struct {
	geocoder Geocoder
	router   RouteFetcher
	tracker  *Tracker

	mu       sync.Mutex
	sessions map[string]*planSession
}

type planSession struct {
	mode       string
	drawPoints []models.Coordinate
	planned    *models.PlannedRoute
	generation uint64
}

func NewPlanner(geocoder Geocoder, router RouteFetcher, tracker *Tracker) *Planner {
	return &Planner{
		geocoder: geocoder,
		router:   router,
		tracker:  tracker,
		sessions: make(map[string]*planSession),
	}
}

func (p *Planner) session(userID string) *planSession {
	s, ok := p.sessions[userID]
	if !ok {
		s = &planSession{mode: ModeAddresses}
		p.sessions[userID] = s
	}
	return s
}

// SetMode switches the active input mode for the user's planning session.
func (p *Planner) SetMode(userID, mode string) error {
	if mode != ModeAddresses && mode != ModeDraw {
		return validationError("unknown mode %q", mode)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.session(userID).mode = mode
	return nil
}

// AddDrawPoint appends a manually placed point. Points are only accepted
// while draw mode is active.
func (p *Planner) AddDrawPoint(userID string, point models.Coordinate) (int, error) {
	if !point.Valid() {
		return 0, validationError("coordinates out of range")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.session(userID)
	if s.mode != ModeDraw {
		return len(s.drawPoints), validationError("draw mode is not active")
	}
	s.drawPoints = append(s.drawPoints, point)
	return len(s.drawPoints), nil
}

// ClearDrawPoints empties the accumulated point list.
func (p *Planner) ClearDrawPoints(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session(userID).drawPoints = nil
}

// PlanAddresses resolves [start, stops..., end] through the geocoder and
// fetches a route over the resolved points. Blank stop entries are filtered
// out; a blank start or end fails before any network call. Any single
// resolution failure aborts the whole plan.
func (p *Planner) PlanAddresses(ctx context.Context, userID, start string, stops []string, end string) (*models.PlannedRoute, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return nil, validationError("start and end addresses are required")
	}

	addresses := []string{start}
	for _, stop := range stops {
		if s := strings.TrimSpace(stop); s != "" {
			addresses = append(addresses, s)
		}
	}
	addresses = append(addresses, end)

	gen := p.beginPlan(userID)

	points, err := p.resolveAll(ctx, addresses)
	if err != nil {
		return nil, err
	}

	return p.fetchAndInstall(ctx, userID, gen, points)
}

// PlanDraw fetches a route over the points accumulated in draw mode.
func (p *Planner) PlanDraw(ctx context.Context, userID string) (*models.PlannedRoute, error) {
	p.mu.Lock()
	s := p.session(userID)
	points := make([]models.Coordinate, len(s.drawPoints))
	copy(points, s.drawPoints)
	p.mu.Unlock()

	if len(points) < 2 {
		return nil, ErrInsufficientPoints
	}

	gen := p.beginPlan(userID)
	return p.fetchAndInstall(ctx, userID, gen, points)
}

// resolveAll geocodes every address concurrently but assembles results in
// input order. On failure the lowest failing index determines the error.
func (p *Planner) resolveAll(ctx context.Context, addresses []string) ([]models.Coordinate, error) {
	points := make([]models.Coordinate, len(addresses))
	errs := make([]error, len(addresses))

	var wg sync.WaitGroup
	for i, address := range addresses {
		wg.Add(1)
		go func(i int, address string) {
			defer wg.Done()
			points[i], errs[i] = p.geocoder.Resolve(ctx, address)
		}(i, address)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

// beginPlan bumps the session's plan generation. A completion whose
// generation no longer matches is stale and must not be installed.
func (p *Planner) beginPlan(userID string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.session(userID)
	s.generation++
	return s.generation
}

func (p *Planner) fetchAndInstall(ctx context.Context, userID string, gen uint64, points []models.Coordinate) (*models.PlannedRoute, error) {
	route, err := p.router.Fetch(ctx, points)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.session(userID)
	if s.generation != gen {
		return nil, ErrPlanSuperseded
	}

	// A session navigating the discarded route must not keep its
	// subscription: stop it before the replacement lands.
	p.tracker.Stop(userID)
	s.planned = route

	return route, nil
}

// PlannedRoute returns the session's current plan, if any.
func (p *Planner) PlannedRoute(userID string) (*models.PlannedRoute, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.session(userID)
	if s.planned == nil {
		return nil, ErrNoPlannedRoute
	}
	return s.planned, nil
}

// StartNavigation opens a live session on the current plan.
func (p *Planner) StartNavigation(userID string) error {
	route, err := p.PlannedRoute(userID)
	if err != nil {
		return err
	}
	return p.tracker.Start(userID, route)
}

// StopNavigation ends the live session, if one is running.
func (p *Planner) StopNavigation(userID string) {
	p.tracker.Stop(userID)
}

// Reset discards the plan, clears draw points and stops navigation,
// returning the session to idle.
func (p *Planner) Reset(userID string) {
	p.tracker.Stop(userID)

	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.session(userID)
	s.planned = nil
	s.drawPoints = nil
	s.generation++
}

// MapsLink builds a Google Maps directions deep link for the current plan:
// start, end, and a downsampled waypoint set. The polyline is sampled at
// every 20th point first, then the first and last samples are dropped.
func (p *Planner) MapsLink(userID string) (string, error) {
	route, err := p.PlannedRoute(userID)
	if err != nil {
		return "", err
	}

	start := route.Points[0]
	end := route.End()

	var sampled []string
	for i, pt := range route.Points {
		if i%20 == 0 {
			sampled = append(sampled, fmt.Sprintf("%f,%f", pt.Latitude, pt.Longitude))
		}
	}
	var waypoints []string
	if len(sampled) > 2 {
		waypoints = sampled[1 : len(sampled)-1]
	}

	link := fmt.Sprintf("https://www.google.com/maps/dir/?api=1&origin=%f,%f&destination=%f,%f&travelmode=walking",
		start.Latitude, start.Longitude, end.Latitude, end.Longitude)
	if len(waypoints) > 0 {
		link += "&waypoints=" + url.QueryEscape(strings.Join(waypoints, "|"))
	}
	return link, nil
}
