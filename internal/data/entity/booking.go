package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsTerminal reports whether no further status transition is allowed.
// pending -> {confirmed, cancelled}; confirmed -> {cancelled, completed}.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type AircraftSize string

const (
	AircraftSizeSmall  AircraftSize = "small"
	AircraftSizeMedium AircraftSize = "medium"
	AircraftSizeLarge  AircraftSize = "large"
)

type Aircraft struct {
	Type               string       `db:"aircraft_type"`
	RegistrationNumber string       `db:"aircraft_registration"`
	Size               AircraftSize `db:"aircraft_size"`
}

// Pricing is the snapshot captured at creation time. It is never recomputed,
// later hangar price changes do not affect existing bookings.
type Pricing struct {
	PricePerDay  float64 `db:"price_per_day"`
	DurationDays int     `db:"duration_days"`
	TotalAmount  float64 `db:"total_amount"`
}

type Booking struct {
	Base
	HangarID        uuid.UUID     `db:"hangar_id"`
	CustomerID      uuid.UUID     `db:"customer_id"`
	StartDate       time.Time     `db:"start_date"`
	EndDate         time.Time     `db:"end_date"`
	Aircraft        Aircraft
	Status          BookingStatus `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	SpecialRequests *string       `db:"special_requests"`
	Pricing         Pricing
}
