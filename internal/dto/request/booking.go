package request

type AircraftRequest struct {
	Type               string `json:"type" validate:"required"`
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	Size               string `json:"size" validate:"required,oneof=small medium large"`
}

// CreateBookingRequest carries everything the customer supplies. The
// customer identity itself always comes from the session, never the body.
type CreateBookingRequest struct {
	HangarID        string          `json:"hangarId" validate:"required,uuid4"`
	StartDate       string          `json:"startDate" validate:"required"`
	EndDate         string          `json:"endDate" validate:"required"`
	Aircraft        AircraftRequest `json:"aircraft" validate:"required"`
	SpecialRequests *string         `json:"specialRequests,omitempty"`
}
