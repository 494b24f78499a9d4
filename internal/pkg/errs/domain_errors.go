package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Event errors
	ErrEventNotFound      = errors.New("event not found")
	ErrEventAlreadyExists = errors.New("event already exists")

	// Reservation errors
	ErrReservationNotFound         = errors.New("reservation not found")
	ErrInsufficientAvailability    = errors.New("insufficient availability")
	ErrReservationAlreadyCancelled = errors.New("reservation already cancelled")

	// Validation errors
	ErrInvalidSeatCount = errors.New("invalid seat count")
)
