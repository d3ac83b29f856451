package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"videvida-booking-api/config"
	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	middleware  *AuthMiddleware
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})

	return &authFixture{
		middleware:  NewAuthMiddleware(jwtService, redisClient),
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// issueToken mints a stored (non-revoked) access token.
func (f *authFixture) issueToken(t *testing.T, userID string, role entity.Role) string {
	t.Helper()
	token, tokenID, err := f.jwtService.GenerateAccessToken(userID, userID+"@email.com", string(role))
	require.NoError(t, err)

	key := fmt.Sprintf("access_token:%s:%s", userID, tokenID)
	require.NoError(t, f.redisClient.Set(context.Background(), key, "valid", time.Minute).Err())
	return token
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateOrRedirectWithoutToken(t *testing.T) {
	f := newAuthFixture(t)

	called := false
	handler := f.middleware.AuthenticateOrRedirect(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/paciente", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, called)
}

func TestAuthenticateRejectsRevokedToken(t *testing.T) {
	f := newAuthFixture(t)

	token, tokenID, err := f.jwtService.GenerateAccessToken("1", "paciente@email.com", "paciente")
	require.NoError(t, err)
	_ = tokenID // never stored in Redis, so the token counts as revoked

	called := false
	handler := f.middleware.Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateInjectsContext(t *testing.T) {
	f := newAuthFixture(t)
	token := f.issueToken(t, "2", entity.RoleMedico)

	var gotID string
	var gotRole entity.Role
	handler := f.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetUserRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", gotID)
	assert.Equal(t, entity.RoleMedico, gotRole)
}

func TestRequireRolesRedirectsMismatch(t *testing.T) {
	f := newAuthFixture(t)

	tests := []struct {
		name         string
		role         entity.Role
		wantStatus   int
		wantLocation string
		wantCalled   bool
	}{
		{name: "medico on paciente route", role: entity.RoleMedico, wantStatus: http.StatusSeeOther, wantLocation: "/medico"},
		{name: "admin on paciente route", role: entity.RoleAdmin, wantStatus: http.StatusSeeOther, wantLocation: "/admin"},
		{name: "paciente admitted", role: entity.RolePaciente, wantStatus: http.StatusOK, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := f.issueToken(t, "7", tt.role)

			called := false
			handler := f.middleware.Authenticate(RequirePaciente(okHandler(&called)))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/paciente", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestRequireRolesWithoutAuthContext(t *testing.T) {
	called := false
	handler := RequireMedico(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/medico", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
