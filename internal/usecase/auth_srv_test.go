package usecase

import (
	"context"
	"testing"
	"time"

	"hangar-booking/internal/data/entity"
	"hangar-booking/internal/data/repository"
	"hangar-booking/internal/dto/request"
	"hangar-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newAuthService(userRepo *MockUserRepository, sessionRepo *MockSessionRepository) AuthService {
	repo := &repository.Repository{
		User:    userRepo,
		Session: sessionRepo,
	}
	config := &utils.Config{}
	config.Session.ExpiryHours = 168
	return NewAuthService(repo, config, zap.NewNop())
}

func testUser(password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	company := "Pacific Aviation LLC"
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "pacificair",
		Email:        "ops@pacificair.example",
		PasswordHash: hash,
		CompanyName:  &company,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	sessionRepo := &MockSessionRepository{}

	user := testUser("correct-horse-battery")
	userRepo.On("FindByEmail", mock.Anything, "ops@pacificair.example").Return(user, nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	svc := newAuthService(userRepo, sessionRepo)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "ops@pacificair.example",
		Password: "correct-horse-battery",
	})

	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.UserID)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	sessionRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	sessionRepo := &MockSessionRepository{}

	user := testUser("correct-horse-battery")
	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	svc := newAuthService(userRepo, sessionRepo)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: user.Email,
		Password: "not-the-password",
	})

	assert.Nil(t, resp)
	assert.EqualError(t, err, "invalid credentials")
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_FallsBackToUsername(t *testing.T) {
	userRepo := &MockUserRepository{}
	sessionRepo := &MockSessionRepository{}

	user := testUser("correct-horse-battery")
	userRepo.On("FindByEmail", mock.Anything, "pacificair").Return(nil, nil)
	userRepo.On("FindByUsername", mock.Anything, "pacificair").Return(user, nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	svc := newAuthService(userRepo, sessionRepo)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "pacificair",
		Password: "correct-horse-battery",
	})

	assert.NoError(t, err)
	assert.Equal(t, user.Username, resp.Username)
}

func TestLogin_InactiveAccount(t *testing.T) {
	userRepo := &MockUserRepository{}
	sessionRepo := &MockSessionRepository{}

	user := testUser("correct-horse-battery")
	user.IsActive = false
	userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	svc := newAuthService(userRepo, sessionRepo)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: user.Email,
		Password: "correct-horse-battery",
	})

	assert.Nil(t, resp)
	assert.EqualError(t, err, "account is deactivated")
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	sessionRepo := &MockSessionRepository{}

	existing := testUser("whatever-password")
	userRepo.On("FindByEmail", mock.Anything, existing.Email).Return(existing, nil)

	svc := newAuthService(userRepo, sessionRepo)

	company := "Pacific Aviation LLC"
	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username:    "anothername",
		Email:       existing.Email,
		Password:    "some-long-password",
		CompanyName: &company,
	})

	assert.Nil(t, resp)
	assert.EqualError(t, err, "email already registered")
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	sessionRepo := &MockSessionRepository{}

	userRepo.On("FindByEmail", mock.Anything, "new@pacificair.example").Return(nil, nil)
	userRepo.On("FindByUsername", mock.Anything, "newoperator").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	svc := newAuthService(userRepo, sessionRepo)

	company := "Pacific Aviation LLC"
	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username:    "newoperator",
		Email:       "new@pacificair.example",
		Password:    "some-long-password",
		CompanyName: &company,
	})

	assert.NoError(t, err)
	assert.Equal(t, "newoperator", resp.Username)
	assert.NotEmpty(t, resp.Token)
	userRepo.AssertExpectations(t)
}
