package response

import (
	"time"

	"hangar-booking/internal/data/entity"
)

type HangarRef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	PricePerDay *float64 `json:"pricePerDay,omitempty"`
}

type CustomerRef struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
}

type AircraftResponse struct {
	Type               string `json:"type"`
	RegistrationNumber string `json:"registrationNumber"`
	Size               string `json:"size"`
}

type PricingResponse struct {
	PricePerDay  float64 `json:"pricePerDay"`
	DurationDays int     `json:"durationDays"`
	TotalAmount  float64 `json:"totalAmount"`
}

type BookingResponse struct {
	ID              string               `json:"id"`
	Hangar          *HangarRef           `json:"hangar,omitempty"`
	Customer        *CustomerRef         `json:"customer,omitempty"`
	StartDate       time.Time            `json:"startDate"`
	EndDate         time.Time            `json:"endDate"`
	Aircraft        AircraftResponse     `json:"aircraft"`
	Status          entity.BookingStatus `json:"status"`
	PaymentStatus   entity.PaymentStatus `json:"paymentStatus"`
	SpecialRequests *string              `json:"specialRequests,omitempty"`
	Pricing         PricingResponse      `json:"pricing"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type BookingDates struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingSummary recaps the derived pricing for the just-created booking
type BookingSummary struct {
	DurationDays int          `json:"durationDays"`
	PricePerDay  float64      `json:"pricePerDay"`
	TotalPrice   float64      `json:"totalPrice"`
	Dates        BookingDates `json:"dates"`
}

type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Summary BookingSummary  `json:"summary"`
}

// BookingToResponse converts a booking entity, optionally resolving the
// hangar and customer references to their display subsets
func BookingToResponse(booking *entity.Booking, hangar *entity.Hangar, customer *entity.User) BookingResponse {
	resp := BookingResponse{
		ID:        booking.ID.String(),
		StartDate: booking.StartDate,
		EndDate:   booking.EndDate,
		Aircraft: AircraftResponse{
			Type:               booking.Aircraft.Type,
			RegistrationNumber: booking.Aircraft.RegistrationNumber,
			Size:               string(booking.Aircraft.Size),
		},
		Status:          booking.Status,
		PaymentStatus:   booking.PaymentStatus,
		SpecialRequests: booking.SpecialRequests,
		Pricing: PricingResponse{
			PricePerDay:  booking.Pricing.PricePerDay,
			DurationDays: booking.Pricing.DurationDays,
			TotalAmount:  booking.Pricing.TotalAmount,
		},
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}

	if hangar != nil {
		resp.Hangar = &HangarRef{
			ID:       hangar.ID.String(),
			Name:     hangar.Name,
			Location: hangar.Location,
		}
	}

	if customer != nil {
		resp.Customer = &CustomerRef{
			ID:          customer.ID.String(),
			CompanyName: customer.DisplayName(),
			Email:       customer.Email,
		}
	}

	return resp
}
