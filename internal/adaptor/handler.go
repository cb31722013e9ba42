package adaptor

import (
	"hangar-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Hangar  *HangarHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Hangar:  NewHangarHandler(service.Hangar, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
