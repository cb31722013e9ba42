package entity

import (
	"github.com/google/uuid"
)

type Hangar struct {
	Base
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Location    string    `db:"location"`
	Description *string   `db:"description"`
	PricePerDay float64   `db:"price_per_day"`
	Currency    string    `db:"currency"`
}
