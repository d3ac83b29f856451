package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/repository/mockstore"
	"videvida-booking-api/internal/service"
	"videvida-booking-api/internal/store"
	"videvida-booking-api/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileGuardFixture(t *testing.T) (*ProfileGuard, usecase.ProfileUsecase) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	kv := store.NewMemoryStore()
	directory := service.NewMockDirectory(kv, log, 0)
	profileUsecase := usecase.NewProfileUsecase(log, mockstore.NewProfileStore(kv, log, 0), directory)
	return NewProfileGuard(profileUsecase), profileUsecase
}

func authedRequest(path, userID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	ctx = context.WithValue(ctx, UserRoleKey, entity.RolePaciente)
	return req.WithContext(ctx)
}

func TestProfileGuardRedirectsIncompleteProfile(t *testing.T) {
	guard, _ := newProfileGuardFixture(t)

	called := false
	handler := guard.Require(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/api/v1/appointments", "1"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile/complete?from=%2Fapi%2Fv1%2Fappointments", rec.Header().Get("Location"))
	assert.False(t, called)
}

func TestProfileGuardAdmitsCompleteProfile(t *testing.T) {
	guard, profileUsecase := newProfileGuardFixture(t)

	str := func(s string) *string { return &s }
	_, err := profileUsecase.UpdateProfile(context.Background(), "1", &dto.UpdateProfileRequest{
		Telefone:       str("(11) 99999-0000"),
		CPF:            str("123.456.789-00"),
		DataNascimento: str("1990-05-10"),
		Endereco: &dto.UpdateAddressRequest{
			CEP:        str("01310-100"),
			Logradouro: str("Av. Paulista"),
			Numero:     str("1000"),
			Bairro:     str("Bela Vista"),
			Cidade:     str("São Paulo"),
			Estado:     str("SP"),
		},
	})
	require.NoError(t, err)

	called := false
	handler := guard.Require(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("/api/v1/appointments", "1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
