package usecase

import (
	"context"
	"testing"

	"hangar-booking/internal/data/repository"
	"hangar-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newHangarService(hangarRepo *MockHangarRepository) HangarService {
	repo := &repository.Repository{Hangar: hangarRepo}
	return NewHangarService(repo, zap.NewNop())
}

func TestUpdatePrice_Success(t *testing.T) {
	hangarRepo := &MockHangarRepository{}

	hangarID := uuid.New()
	hangar := testHangar(hangarID, 100)

	hangarRepo.On("FindByID", mock.Anything, hangarID).Return(hangar, nil)
	hangarRepo.On("UpdatePrice", mock.Anything, hangarID, 150.0, "USD").Return(nil)

	svc := newHangarService(hangarRepo)

	resp, err := svc.UpdatePrice(context.Background(), hangarID.String(), &request.UpdateHangarPriceRequest{
		Amount: 150,
	})

	assert.NoError(t, err)
	assert.Equal(t, 150.0, resp.PricePerDay)
	assert.Equal(t, "USD", resp.Currency)
	hangarRepo.AssertExpectations(t)
}

func TestUpdatePrice_HangarNotFound(t *testing.T) {
	hangarRepo := &MockHangarRepository{}

	hangarID := uuid.New()
	hangarRepo.On("FindByID", mock.Anything, hangarID).Return(nil, nil)

	svc := newHangarService(hangarRepo)

	resp, err := svc.UpdatePrice(context.Background(), hangarID.String(), &request.UpdateHangarPriceRequest{
		Amount: 150,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrHangarNotFound)
	hangarRepo.AssertNotCalled(t, "UpdatePrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePrice_NonPositiveAmountRejected(t *testing.T) {
	hangarRepo := &MockHangarRepository{}

	svc := newHangarService(hangarRepo)

	resp, err := svc.UpdatePrice(context.Background(), uuid.New().String(), &request.UpdateHangarPriceRequest{
		Amount: -10,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidPricing)
	hangarRepo.AssertNotCalled(t, "UpdatePrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePrice_KeepsExplicitCurrency(t *testing.T) {
	hangarRepo := &MockHangarRepository{}

	hangarID := uuid.New()
	hangar := testHangar(hangarID, 100)

	hangarRepo.On("FindByID", mock.Anything, hangarID).Return(hangar, nil)
	hangarRepo.On("UpdatePrice", mock.Anything, hangarID, 90.0, "EUR").Return(nil)

	svc := newHangarService(hangarRepo)

	resp, err := svc.UpdatePrice(context.Background(), hangarID.String(), &request.UpdateHangarPriceRequest{
		Amount:   90,
		Currency: "EUR",
	})

	assert.NoError(t, err)
	assert.Equal(t, "EUR", resp.Currency)
}

func TestCreateHangar_Success(t *testing.T) {
	hangarRepo := &MockHangarRepository{}

	hangarRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Hangar")).Return(nil)

	svc := newHangarService(hangarRepo)

	resp, err := svc.CreateHangar(context.Background(), uuid.New().String(), &request.CreateHangarRequest{
		Name:        "East Apron Hangar",
		Location:    "KSQL",
		PricePerDay: 120,
	})

	assert.NoError(t, err)
	assert.Equal(t, "East Apron Hangar", resp.Name)
	assert.Equal(t, 120.0, resp.PricePerDay)
	assert.Equal(t, "USD", resp.Currency)
}

func TestGetHangarByID_NotFound(t *testing.T) {
	hangarRepo := &MockHangarRepository{}

	hangarID := uuid.New()
	hangarRepo.On("FindByID", mock.Anything, hangarID).Return(nil, nil)

	svc := newHangarService(hangarRepo)

	resp, err := svc.GetHangarByID(context.Background(), hangarID.String())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrHangarNotFound)
}
