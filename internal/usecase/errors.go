package usecase

import "errors"

// Sentinel errors for the failure kinds the handlers translate to HTTP
// statuses. Ownership mismatches and non-cancellable states stay internally
// distinct but both surface as not-found, so callers cannot probe for the
// existence of other customers' bookings.
var (
	ErrHangarNotFound        = errors.New("Hangar not found")
	ErrInvalidPricing        = errors.New("Invalid hangar pricing configuration")
	ErrInvalidDateRange      = errors.New("End date must be after start date")
	ErrBookingNotFound       = errors.New("Booking not found")
	ErrBookingNotCancellable = errors.New("Booking cannot be cancelled")
)
