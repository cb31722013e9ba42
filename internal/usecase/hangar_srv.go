package usecase

import (
	"context"
	"fmt"
	"time"

	"hangar-booking/internal/data/entity"
	"hangar-booking/internal/data/repository"
	"hangar-booking/internal/dto/request"
	"hangar-booking/internal/dto/response"
	"hangar-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HangarService interface {
	CreateHangar(ctx context.Context, ownerID string, req *request.CreateHangarRequest) (*response.HangarResponse, error)
	GetHangars(ctx context.Context) ([]response.HangarResponse, error)
	GetHangarByID(ctx context.Context, hangarID string) (*response.HangarResponse, error)
	UpdatePrice(ctx context.Context, hangarID string, req *request.UpdateHangarPriceRequest) (*response.HangarResponse, error)
}

type hangarService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHangarService(repo *repository.Repository, log *zap.Logger) HangarService {
	return &hangarService{
		repo: repo,
		log:  log.With(zap.String("service", "hangar")),
	}
}

func (s *hangarService) CreateHangar(ctx context.Context, ownerID string, req *request.CreateHangarRequest) (*response.HangarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hangar validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	hangar := &entity.Hangar{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:     ownerUUID,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		Currency:    currency,
	}

	if err := s.repo.Hangar.Create(ctx, hangar); err != nil {
		s.log.Error("Failed to create hangar",
			zap.Error(err),
			zap.String("owner_id", ownerID),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create hangar: %w", err)
	}

	s.log.Info("Hangar created",
		zap.String("hangar_id", hangar.ID.String()),
		zap.String("owner_id", ownerID),
		zap.Float64("price_per_day", hangar.PricePerDay),
	)

	resp := response.HangarToResponse(hangar)
	return &resp, nil
}

func (s *hangarService) GetHangars(ctx context.Context) ([]response.HangarResponse, error) {
	hangars, err := s.repo.Hangar.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list hangars", zap.Error(err))
		return nil, fmt.Errorf("list hangars: %w", err)
	}

	hangarResponses := make([]response.HangarResponse, len(hangars))
	for i, hangar := range hangars {
		hangarResponses[i] = response.HangarToResponse(hangar)
	}

	return hangarResponses, nil
}

func (s *hangarService) GetHangarByID(ctx context.Context, hangarID string) (*response.HangarResponse, error) {
	id, err := uuid.Parse(hangarID)
	if err != nil {
		return nil, fmt.Errorf("invalid hangar ID format %s: %w", hangarID, err)
	}

	hangar, err := s.repo.Hangar.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find hangar", zap.Error(err), zap.String("hangar_id", hangarID))
		return nil, fmt.Errorf("find hangar: %w", err)
	}
	if hangar == nil {
		return nil, fmt.Errorf("%w: %s", ErrHangarNotFound, hangarID)
	}

	resp := response.HangarToResponse(hangar)
	return &resp, nil
}

func (s *hangarService) UpdatePrice(ctx context.Context, hangarID string, req *request.UpdateHangarPriceRequest) (*response.HangarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update price validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(hangarID)
	if err != nil {
		return nil, fmt.Errorf("invalid hangar ID format %s: %w", hangarID, err)
	}

	// A zero or negative daily price would break every later booking against
	// this listing, refuse it here as well as at creation time.
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive number", ErrInvalidPricing)
	}

	hangar, err := s.repo.Hangar.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find hangar", zap.Error(err), zap.String("hangar_id", hangarID))
		return nil, fmt.Errorf("find hangar: %w", err)
	}
	if hangar == nil {
		return nil, fmt.Errorf("%w: %s", ErrHangarNotFound, hangarID)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	if err := s.repo.Hangar.UpdatePrice(ctx, id, req.Amount, currency); err != nil {
		s.log.Error("Failed to update hangar price",
			zap.Error(err),
			zap.String("hangar_id", hangarID),
			zap.Float64("amount", req.Amount),
		)
		return nil, fmt.Errorf("update hangar price: %w", err)
	}

	s.log.Info("Hangar price updated",
		zap.String("hangar_id", hangarID),
		zap.Float64("old_price", hangar.PricePerDay),
		zap.Float64("new_price", req.Amount),
		zap.String("currency", currency),
	)

	hangar.PricePerDay = req.Amount
	hangar.Currency = currency
	hangar.UpdatedAt = time.Now()

	resp := response.HangarToResponse(hangar)
	return &resp, nil
}
