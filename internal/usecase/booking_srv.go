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

type BookingService interface {
	CreateBooking(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	GetCustomerBookings(ctx context.Context, customerID string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, customerID, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, customerID, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	hangarID, err := uuid.Parse(req.HangarID)
	if err != nil {
		return nil, fmt.Errorf("invalid hangar ID format %s: %w", req.HangarID, err)
	}

	// 1. Hangar must exist
	hangar, err := s.repo.Hangar.FindByID(ctx, hangarID)
	if err != nil {
		s.log.Error("Failed to look up hangar", zap.Error(err), zap.String("hangar_id", req.HangarID))
		return nil, fmt.Errorf("look up hangar: %w", err)
	}
	if hangar == nil {
		return nil, fmt.Errorf("%w: %s", ErrHangarNotFound, req.HangarID)
	}

	// 2. The listing's own price data must be sane. A non-positive price is
	// a listing-data integrity failure, not a caller error.
	if hangar.PricePerDay <= 0 {
		s.log.Warn("Hangar has non-positive price",
			zap.String("hangar_id", req.HangarID),
			zap.Float64("price_per_day", hangar.PricePerDay),
		)
		return nil, fmt.Errorf("%w: hangar %s price must be a positive number", ErrInvalidPricing, req.HangarID)
	}

	// 3. The requested range must be non-empty
	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", req.StartDate, err)
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", req.EndDate, err)
	}
	if !endDate.After(startDate) {
		return nil, ErrInvalidDateRange
	}

	// Price snapshot: partial days bill as full days
	durationDays := utils.DurationDays(startDate, endDate)
	totalPrice := hangar.PricePerDay * float64(durationDays)

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HangarID:   hangarID,
		CustomerID: customerUUID,
		StartDate:  startDate,
		EndDate:    endDate,
		Aircraft: entity.Aircraft{
			Type:               req.Aircraft.Type,
			RegistrationNumber: req.Aircraft.RegistrationNumber,
			Size:               entity.AircraftSize(req.Aircraft.Size),
		},
		Status:          entity.BookingStatusPending,
		PaymentStatus:   entity.PaymentStatusPending,
		SpecialRequests: req.SpecialRequests,
		Pricing: entity.Pricing{
			PricePerDay:  hangar.PricePerDay,
			DurationDays: durationDays,
			TotalAmount:  totalPrice,
		},
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", customerID),
			zap.String("hangar_id", req.HangarID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", customerID),
		zap.String("hangar_id", req.HangarID),
		zap.Int("duration_days", durationDays),
		zap.Float64("total_price", totalPrice),
	)

	// Resolve display references for the response
	customer, err := s.repo.User.FindByID(ctx, customerUUID)
	if err != nil {
		s.log.Warn("Failed to resolve customer for booking response",
			zap.Error(err), zap.String("customer_id", customerID))
	}

	bookingResp := response.BookingToResponse(booking, hangar, customer)
	bookingResp.Hangar.PricePerDay = &hangar.PricePerDay

	return &response.CreateBookingResponse{
		Booking: bookingResp,
		Summary: response.BookingSummary{
			DurationDays: durationDays,
			PricePerDay:  hangar.PricePerDay,
			TotalPrice:   totalPrice,
			Dates: response.BookingDates{
				Start: startDate,
				End:   endDate,
			},
		},
	}, nil
}

func (s *bookingService) GetCustomerBookings(ctx context.Context, customerID string) ([]response.BookingResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	bookings, err := s.repo.Booking.FindByCustomerID(ctx, customerUUID)
	if err != nil {
		s.log.Error("Failed to get customer bookings",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("get customer bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		hangar, err := s.repo.Hangar.FindByID(ctx, booking.HangarID)
		if err != nil {
			s.log.Warn("Failed to resolve hangar for booking",
				zap.Error(err), zap.String("booking_id", booking.ID.String()))
		}
		bookingResponses[i] = response.BookingToResponse(booking, hangar, nil)
	}

	s.log.Info("Customer bookings retrieved",
		zap.String("customer_id", customerID),
		zap.Int("count", len(bookings)),
	)

	return bookingResponses, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, customerID, bookingID string) (*response.BookingResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}

	// An ownership mismatch reads the same as a missing booking
	if booking == nil || booking.CustomerID != customerUUID {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	hangar, err := s.repo.Hangar.FindByID(ctx, booking.HangarID)
	if err != nil {
		s.log.Warn("Failed to resolve hangar for booking",
			zap.Error(err), zap.String("booking_id", bookingID))
	}

	resp := response.BookingToResponse(booking, hangar, nil)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, customerID, bookingID string) (*response.BookingResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}

	if booking == nil || booking.CustomerID != customerUUID {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	// cancelled and completed are terminal
	if booking.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status is %s", ErrBookingNotCancellable, booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("customer_id", customerID),
	)

	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = time.Now()

	resp := response.BookingToResponse(booking, nil, nil)
	return &resp, nil
}
