package usecase

import (
	"context"
	"strings"
	"testing"

	"videvida-booking-api/internal/catalog"
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/repository/mockstore"
	"videvida-booking-api/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newAppointmentUsecase(t *testing.T) AppointmentUsecase {
	t.Helper()
	log := quietLogger()
	repo := mockstore.NewAppointmentStore(store.NewMemoryStore(), log, 0)
	return NewAppointmentUsecase(log, repo, catalog.New())
}

func bookingRequest() *dto.CreateAppointmentRequest {
	// Consulta Cardiológica lasts 60 minutes and is offered by doctor 1.
	return &dto.CreateAppointmentRequest{
		MedicoID:     "1",
		TratamentoID: "consulta-cardiologica",
		Data:         "2025-07-01",
		HoraInicio:   "09:30",
	}
}

func TestAppointmentCreate(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "paciente-1", bookingRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "agendamento_"))
	assert.Equal(t, "paciente-1", created.PacienteID)
	assert.Equal(t, "10:30", created.HoraFim)
	assert.Equal(t, entity.StatusAgendado, created.Status)
	assert.NotEmpty(t, created.MedicoNome)
	assert.NotEmpty(t, created.TratamentoNome)

	listed, err := uc.ListForUser(ctx, "paciente-1", entity.RolePaciente)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestAppointmentCreateUnknownReferences(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	req := bookingRequest()
	req.MedicoID = "999"
	_, err := uc.Create(ctx, "paciente-1", req)
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	req = bookingRequest()
	req.TratamentoID = "consulta-inexistente"
	_, err = uc.Create(ctx, "paciente-1", req)
	assert.ErrorIs(t, err, ErrTreatmentNotFound)
}

func TestAppointmentCreateAllowsDoubleBooking(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	// Same doctor, same date, same start time from two patients.
	first, err := uc.Create(ctx, "paciente-1", bookingRequest())
	require.NoError(t, err)
	second, err := uc.Create(ctx, "paciente-2", bookingRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.PacienteID, second.PacienteID)

	agenda, err := uc.ListForUser(ctx, "1", entity.RoleMedico)
	require.NoError(t, err)
	assert.Len(t, agenda, 2)
}

func TestAppointmentCancel(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "paciente-1", bookingRequest())
	require.NoError(t, err)

	t.Run("stranger cannot cancel", func(t *testing.T) {
		_, err := uc.Cancel(ctx, "paciente-2", entity.RolePaciente, created.ID)
		assert.ErrorIs(t, err, ErrAppointmentNotOwned)
	})

	t.Run("owner cancels", func(t *testing.T) {
		cancelled, err := uc.Cancel(ctx, "paciente-1", entity.RolePaciente, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelado, cancelled.Status)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		_, err := uc.Cancel(ctx, "paciente-1", entity.RolePaciente, created.ID)
		assert.ErrorIs(t, err, ErrAppointmentCancelled)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.Cancel(ctx, "paciente-1", entity.RolePaciente, "agendamento_0")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestAppointmentConfirm(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "paciente-1", bookingRequest())
	require.NoError(t, err)

	t.Run("paciente cannot confirm", func(t *testing.T) {
		_, err := uc.Confirm(ctx, "paciente-1", entity.RolePaciente, created.ID)
		assert.ErrorIs(t, err, ErrAppointmentNotOwned)
	})

	t.Run("other medico cannot confirm", func(t *testing.T) {
		_, err := uc.Confirm(ctx, "2", entity.RoleMedico, created.ID)
		assert.ErrorIs(t, err, ErrAppointmentNotOwned)
	})

	t.Run("assigned medico confirms", func(t *testing.T) {
		confirmed, err := uc.Confirm(ctx, "1", entity.RoleMedico, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmado, confirmed.Status)
	})

	t.Run("confirming twice fails", func(t *testing.T) {
		_, err := uc.Confirm(ctx, "1", entity.RoleMedico, created.ID)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})
}
