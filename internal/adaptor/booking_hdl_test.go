package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hangar-booking/internal/dto/request"
	"hangar-booking/internal/dto/response"
	"hangar-booking/internal/usecase"
	"hangar-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CreateBookingResponse), args.Error(1)
}

func (m *MockBookingService) GetCustomerBookings(ctx context.Context, customerID string) ([]response.BookingResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, customerID, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, customerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, customerID, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, customerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func newBookingRouter(service usecase.BookingService, customerID uuid.UUID) *chi.Mux {
	handler := NewBookingHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := utils.SetCustomerContext(req.Context(), customerID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/api/bookings", handler.CreateBooking)
	r.Get("/api/bookings/customer", handler.GetCustomerBookings)
	r.Get("/api/bookings/{id}", handler.GetBookingByID)
	r.Patch("/api/bookings/{id}/cancel", handler.CancelBooking)
	return r
}

func createBookingBody(t *testing.T, hangarID string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(request.CreateBookingRequest{
		HangarID:  hangarID,
		StartDate: "2024-01-01T00:00:00Z",
		EndDate:   "2024-01-03T00:00:00Z",
		Aircraft: request.AircraftRequest{
			Type:               "Cessna 172",
			RegistrationNumber: "N12345",
			Size:               "small",
		},
	})
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreateBookingHandler_Created(t *testing.T) {
	service := &MockBookingService{}
	customerID := uuid.New()
	hangarID := uuid.New()

	result := &response.CreateBookingResponse{
		Booking: response.BookingResponse{ID: uuid.New().String()},
		Summary: response.BookingSummary{DurationDays: 2, PricePerDay: 100, TotalPrice: 200},
	}
	service.On("CreateBooking", mock.Anything, customerID.String(), mock.AnythingOfType("*request.CreateBookingRequest")).
		Return(result, nil)

	router := newBookingRouter(service, customerID)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", createBookingBody(t, hangarID.String()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
	service.AssertExpectations(t)
}

func TestCreateBookingHandler_HangarNotFound(t *testing.T) {
	service := &MockBookingService{}
	customerID := uuid.New()

	service.On("CreateBooking", mock.Anything, customerID.String(), mock.Anything).
		Return(nil, usecase.ErrHangarNotFound)

	router := newBookingRouter(service, customerID)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", createBookingBody(t, uuid.New().String()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Status)
	assert.Equal(t, "Hangar not found", envelope.Message)
}

func TestCreateBookingHandler_InvalidDateRange(t *testing.T) {
	service := &MockBookingService{}
	customerID := uuid.New()

	service.On("CreateBooking", mock.Anything, customerID.String(), mock.Anything).
		Return(nil, usecase.ErrInvalidDateRange)

	router := newBookingRouter(service, customerID)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", createBookingBody(t, uuid.New().String()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "End date must be after start date", envelope.Message)
}

func TestCreateBookingHandler_MalformedBody(t *testing.T) {
	service := &MockBookingService{}
	customerID := uuid.New()

	router := newBookingRouter(service, customerID)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingHandler_NoIdentity(t *testing.T) {
	service := &MockBookingService{}
	handler := NewBookingHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", createBookingBody(t, uuid.New().String()))
	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBookingByIDHandler_NotFound(t *testing.T) {
	service := &MockBookingService{}
	customerID := uuid.New()
	bookingID := uuid.New().String()

	service.On("GetBookingByID", mock.Anything, customerID.String(), bookingID).
		Return(nil, usecase.ErrBookingNotFound)

	router := newBookingRouter(service, customerID)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCustomerBookingsHandler_OK(t *testing.T) {
	service := &MockBookingService{}
	customerID := uuid.New()

	bookings := []response.BookingResponse{
		{ID: uuid.New().String()},
		{ID: uuid.New().String()},
	}
	service.On("GetCustomerBookings", mock.Anything, customerID.String()).Return(bookings, nil)

	router := newBookingRouter(service, customerID)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/customer", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
}

func TestCancelBookingHandler_NotCancellable(t *testing.T) {
	service := &MockBookingService{}
	customerID := uuid.New()
	bookingID := uuid.New().String()

	service.On("CancelBooking", mock.Anything, customerID.String(), bookingID).
		Return(nil, usecase.ErrBookingNotCancellable)

	router := newBookingRouter(service, customerID)

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope utils.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Booking not found or cannot be cancelled", envelope.Message)
}

func TestCancelBookingHandler_OK(t *testing.T) {
	service := &MockBookingService{}
	customerID := uuid.New()
	bookingID := uuid.New().String()

	cancelled := &response.BookingResponse{ID: bookingID, Status: "cancelled"}
	service.On("CancelBooking", mock.Anything, customerID.String(), bookingID).Return(cancelled, nil)

	router := newBookingRouter(service, customerID)

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
