package usecase

import (
	"context"
	"testing"
	"time"

	"videvida-booking-api/config"
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/service"
	"videvida-booking-api/internal/store"
	"videvida-booking-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUsecase(t *testing.T) (AuthUsecase, *jwt.JWTService) {
	t.Helper()
	log := quietLogger()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})

	directory := service.NewMockDirectory(store.NewMemoryStore(), log, 0)
	return NewAuthUsecase(log, directory, jwtService, redisClient), jwtService
}

func TestAuthLogin(t *testing.T) {
	uc, jwtService := newAuthUsecase(t)
	ctx := context.Background()

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Email: "medico@email.com", Password: "123456"})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)
	require.NotNil(t, tokens.User)
	assert.Equal(t, entity.RoleMedico, tokens.User.Tipo)
	assert.Equal(t, "/medico", tokens.Redirect)

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "medico", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.TokenType)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	uc, _ := newAuthUsecase(t)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "medico@email.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	uc, _ := newAuthUsecase(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, &dto.RegisterRequest{
		Nome:            "Novo Paciente",
		Email:           "novo@email.com",
		Password:        "senha123",
		ConfirmPassword: "senha123",
		Tipo:            entity.RolePaciente,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolePaciente, user.Tipo)

	_, err = uc.Register(ctx, &dto.RegisterRequest{
		Nome:            "Outro",
		Email:           "novo@email.com",
		Password:        "x",
		ConfirmPassword: "x",
		Tipo:            entity.RolePaciente,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Email: "novo@email.com", Password: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, "/paciente", tokens.Redirect)

	exists, err := uc.CheckEmail(ctx, "novo@email.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAuthRefreshTokenRotates(t *testing.T) {
	uc, _ := newAuthUsecase(t)
	ctx := context.Background()

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Email: "paciente@email.com", Password: "123456"})
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The consumed refresh token is gone.
	_, err = uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthGetCurrentUser(t *testing.T) {
	uc, _ := newAuthUsecase(t)
	ctx := context.Background()

	user, err := uc.GetCurrentUser(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Tipo)

	_, err = uc.GetCurrentUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
