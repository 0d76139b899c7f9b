package service

import (
	"context"
	"testing"
	"time"

	"foodgram/internal/api/models"
	"foodgram/internal/config"
	"foodgram/internal/middleware/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testConfig())

	mockUserRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Password:  "s3cretpass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	// password must be stored hashed, never plaintext
	assert.NotEqual(t, "s3cretpass", user.Password)
	assert.NoError(t, auth.VerifyPassword(user.Password, "s3cretpass"))
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_UsernameTaken(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testConfig())

	mockUserRepo.On("FindByUsername", mock.Anything, "alice").Return(&models.User{Username: "alice"}, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "s3cretpass",
	})
	assert.ErrorIs(t, err, ErrNameInUse)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testConfig())

	hashed, err := auth.HashPassword("s3cretpass")
	assert.NoError(t, err)
	user := &models.User{
		ID:       "user-1",
		Email:    "alice@example.com",
		Username: "alice",
		Password: string(hashed),
		Role:     "user",
	}

	mockUserRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)
	mockRefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	accessToken, refreshToken, got, err := svc.Login(context.Background(), "alice@example.com", "s3cretpass")
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, "user-1", got.ID)

	// issued access token round-trips through validation
	claims, err := svc.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testConfig())

	hashed, _ := auth.HashPassword("s3cretpass")
	user := &models.User{ID: "user-1", Email: "alice@example.com", Password: string(hashed)}
	mockUserRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	_, _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testConfig())

	mockUserRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("RevokedToken", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockRefreshTokenRepo := new(MockRefreshTokenRepository)
		svc := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testConfig())

		mockRefreshTokenRepo.On("FindByToken", mock.Anything, "tok").Return(&models.RefreshToken{
			ID:        "rt-1",
			UserID:    "user-1",
			Token:     "tok",
			Revoked:   true,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		_, err := svc.RefreshAccessToken(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockRefreshTokenRepo := new(MockRefreshTokenRepository)
		svc := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testConfig())

		mockRefreshTokenRepo.On("FindByToken", mock.Anything, "tok").Return(&models.RefreshToken{
			ID:        "rt-1",
			UserID:    "user-1",
			Token:     "tok",
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)
		mockRefreshTokenRepo.On("Delete", mock.Anything, "rt-1").Return(nil)

		_, err := svc.RefreshAccessToken(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("ValidToken", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockRefreshTokenRepo := new(MockRefreshTokenRepository)
		svc := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testConfig())

		mockRefreshTokenRepo.On("FindByToken", mock.Anything, "tok").Return(&models.RefreshToken{
			ID:        "rt-1",
			UserID:    "user-1",
			Token:     "tok",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		mockUserRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", Username: "alice"}, nil)

		accessToken, err := svc.RefreshAccessToken(context.Background(), "tok")
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), new(MockRefreshTokenRepository), testConfig())

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
