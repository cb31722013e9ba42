package request

type CreateHangarRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Location    string  `json:"location" validate:"required,max=255"`
	Description *string `json:"description,omitempty"`
	PricePerDay float64 `json:"pricePerDay" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
}

type UpdateHangarPriceRequest struct {
	Amount   float64 `json:"amount" validate:"required"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}
