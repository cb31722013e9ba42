package response

import (
	"time"

	"hangar-booking/internal/data/entity"
)

type HangarResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description *string   `json:"description,omitempty"`
	PricePerDay float64   `json:"pricePerDay"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func HangarToResponse(hangar *entity.Hangar) HangarResponse {
	return HangarResponse{
		ID:          hangar.ID.String(),
		OwnerID:     hangar.OwnerID.String(),
		Name:        hangar.Name,
		Location:    hangar.Location,
		Description: hangar.Description,
		PricePerDay: hangar.PricePerDay,
		Currency:    hangar.Currency,
		CreatedAt:   hangar.CreatedAt,
		UpdatedAt:   hangar.UpdatedAt,
	}
}
