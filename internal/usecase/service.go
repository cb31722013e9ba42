package usecase

import (
	"hangar-booking/internal/data/repository"
	"hangar-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Hangar  HangarService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Hangar:  NewHangarService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
