package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/feedwise/feedmix-service/config"
	"github.com/feedwise/feedmix-service/internal/domain/model"
	"github.com/feedwise/feedmix-service/internal/mocks"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:     "test-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
	}
}

func newTestAuthService() (AuthService, *mocks.MockUserRepositoryInterface, *mocks.MockTokenRepositoryInterface) {
	userRepo := new(mocks.MockUserRepositoryInterface)
	tokenRepo := new(mocks.MockTokenRepositoryInterface)
	return NewAuthService(userRepo, tokenRepo, testAuthConfig()), userRepo, tokenRepo
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:       primitive.NewObjectID(),
		Email:    "farmer@example.com",
		Username: "henhouse",
		Password: string(hashed),
		Name:     "Jo Farmer",
		Active:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		svc, userRepo, tokenRepo := newTestAuthService()
		user := activeUser(t, "password123")

		userRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)
		tokenRepo.On("DeleteByUserID", mock.Anything, user.ID, "refresh").Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)

		pair, loggedIn, err := svc.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)
		require.NotNil(t, pair)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, int64(900), pair.ExpiresIn)
		assert.Equal(t, user.Email, loggedIn.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, _ := newTestAuthService()
		user := activeUser(t, "password123")

		userRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)

		_, _, err := svc.Login(context.Background(), user.Email, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, userRepo, _ := newTestAuthService()

		userRepo.On("FindByEmailForAuth", mock.Anything, "nobody@example.com").Return(nil, nil)

		_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		svc, userRepo, _ := newTestAuthService()
		user := activeUser(t, "password123")
		user.Active = false

		userRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)

		_, _, err := svc.Login(context.Background(), user.Email, "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		svc, userRepo, tokenRepo := newTestAuthService()

		userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, "newbie").Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.User).ID = primitive.NewObjectID()
			}).
			Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Token")).Return(nil)

		pair, user, err := svc.Register(context.Background(), "new@example.com", "newbie", "password123", "New Farmer")
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.True(t, user.Active)
		// Password is stored hashed
		assert.NotEqual(t, "password123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, userRepo, _ := newTestAuthService()
		user := activeUser(t, "x")

		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, _, err := svc.Register(context.Background(), user.Email, "other", "password123", "")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, userRepo, _ := newTestAuthService()
		user := activeUser(t, "x")

		userRepo.On("FindByEmail", mock.Anything, "fresh@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, user.Username).Return(user, nil)

		_, _, err := svc.Register(context.Background(), "fresh@example.com", user.Username, "password123", "")
		assert.ErrorIs(t, err, ErrUserExists)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	t.Run("valid access token", func(t *testing.T) {
		svc, userRepo, tokenRepo := newTestAuthService()
		user := activeUser(t, "password123")

		userRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)
		tokenRepo.On("DeleteByUserID", mock.Anything, user.ID, "refresh").Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		pair, _, err := svc.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)

		tokenRepo.On("IsBlacklisted", mock.Anything, pair.AccessToken).Return(false, nil)

		claims, err := svc.ValidateToken(context.Background(), pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _, tokenRepo := newTestAuthService()

		tokenRepo.On("IsBlacklisted", mock.Anything, "garbage").Return(false, nil)

		_, err := svc.ValidateToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("blacklisted token", func(t *testing.T) {
		svc, _, tokenRepo := newTestAuthService()

		tokenRepo.On("IsBlacklisted", mock.Anything, "revoked").Return(true, nil)

		_, err := svc.ValidateToken(context.Background(), "revoked")
		assert.ErrorIs(t, err, ErrTokenBlacklisted)
	})

	t.Run("refresh token rejected as access token", func(t *testing.T) {
		svc, userRepo, tokenRepo := newTestAuthService()
		user := activeUser(t, "password123")

		userRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)
		tokenRepo.On("DeleteByUserID", mock.Anything, user.ID, "refresh").Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		pair, _, err := svc.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)

		tokenRepo.On("IsBlacklisted", mock.Anything, pair.RefreshToken).Return(false, nil)

		_, err = svc.ValidateToken(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful refresh rotates the token", func(t *testing.T) {
		svc, userRepo, tokenRepo := newTestAuthService()
		user := activeUser(t, "password123")

		userRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)
		tokenRepo.On("DeleteByUserID", mock.Anything, user.ID, "refresh").Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		pair, _, err := svc.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)

		stored := &model.Token{
			UserID:    user.ID,
			Token:     pair.RefreshToken,
			Type:      "refresh",
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		tokenRepo.On("FindByToken", mock.Anything, pair.RefreshToken).Return(stored, nil)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		tokenRepo.On("DeleteByToken", mock.Anything, pair.RefreshToken).Return(nil)

		newPair, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, newPair.AccessToken)
		tokenRepo.AssertCalled(t, "DeleteByToken", mock.Anything, pair.RefreshToken)
	})

	t.Run("unknown refresh token", func(t *testing.T) {
		svc, userRepo, tokenRepo := newTestAuthService()
		user := activeUser(t, "password123")

		userRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)
		tokenRepo.On("DeleteByUserID", mock.Anything, user.ID, "refresh").Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		pair, _, err := svc.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)

		tokenRepo.On("FindByToken", mock.Anything, pair.RefreshToken).Return(nil, nil)

		_, err = svc.RefreshToken(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		_, err := svc.RefreshToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("blacklists access and deletes refresh", func(t *testing.T) {
		svc, userRepo, tokenRepo := newTestAuthService()
		user := activeUser(t, "password123")

		userRepo.On("FindByEmailForAuth", mock.Anything, user.Email).Return(user, nil)
		tokenRepo.On("DeleteByUserID", mock.Anything, user.ID, "refresh").Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		pair, _, err := svc.Login(context.Background(), user.Email, "password123")
		require.NoError(t, err)

		tokenRepo.On("DeleteByToken", mock.Anything, pair.RefreshToken).Return(nil)

		err = svc.Logout(context.Background(), pair.AccessToken, pair.RefreshToken)
		assert.NoError(t, err)
		tokenRepo.AssertCalled(t, "DeleteByToken", mock.Anything, pair.RefreshToken)
	})

	t.Run("empty tokens are a no-op", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		err := svc.Logout(context.Background(), "", "")
		assert.NoError(t, err)
	})
}
