package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the planning, geocoding, routing and tracking
// services. Controllers match with errors.Is and convert each failure into a
// single user-facing message.
var (
	ErrNotFound            = errors.New("address not found")
	ErrNoRouteFound        = errors.New("no route available for those points")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrInsufficientPoints  = errors.New("at least two points are required")
	ErrLocationUnavailable = errors.New("location capability unavailable")
	ErrNoActiveSession     = errors.New("no active navigation session")
	ErrNoPlannedRoute      = errors.New("no planned route")
	ErrPlanSuperseded      = errors.New("plan superseded by a newer request")
	ErrValidation          = errors.New("validation failed")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
