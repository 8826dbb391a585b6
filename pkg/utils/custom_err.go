package utils

import "errors"

var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrNoActivePlan      = errors.New("no travel plan has been generated yet")
	ErrGenerationFailed  = errors.New("plan generation failed")
	ErrEmptyGeneration   = errors.New("generator returned empty content")
	ErrStorageFailed     = errors.New("storage error")
	ErrInvalidInput      = errors.New("invalid input")
	ErrSinkDisabled      = errors.New("relational sink is not configured")
	ErrUnsupportedDriver = errors.New("unsupported store driver")
)

// TripNotFoundError carries the id that was looked up. It matches ErrTripNotFound
// under errors.Is.
type TripNotFoundError struct {
	ID string
}

func (e *TripNotFoundError) Error() string {
	return "trip not found: " + e.ID
}

func (e *TripNotFoundError) Is(target error) bool {
	return target == ErrTripNotFound
}
