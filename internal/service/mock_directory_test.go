package service

import (
	"context"
	"testing"

	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T) Directory {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewMockDirectory(store.NewMemoryStore(), log, 0)
}

func TestMockDirectoryAuthenticate(t *testing.T) {
	dir := newTestDirectory(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantName string
		wantRole entity.Role
		wantErr  error
	}{
		{name: "default paciente", email: "paciente@email.com", password: "123456", wantName: "João Silva", wantRole: entity.RolePaciente},
		{name: "default medico", email: "medico@email.com", password: "123456", wantName: "Dr. Maria Santos", wantRole: entity.RoleMedico},
		{name: "default admin", email: "admin@email.com", password: "123456", wantName: "Admin Sistema", wantRole: entity.RoleAdmin},
		{name: "wrong password", email: "paciente@email.com", password: "654321", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@email.com", password: "123456", wantErr: ErrInvalidCredentials},
		{name: "email is case sensitive", email: "Paciente@email.com", password: "123456", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := dir.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.wantName, user.FullName)
			assert.Equal(t, tt.wantRole, user.Role)
		})
	}
}

func TestMockDirectoryRegister(t *testing.T) {
	dir := newTestDirectory(t)
	ctx := context.Background()

	user, err := dir.Register(ctx, &RegisterData{
		Email:    "novo@email.com",
		Password: "senha123",
		FullName: "Novo Usuário",
		Role:     entity.RolePaciente,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)

	// Registered users can log in with their exact credentials.
	found, err := dir.Authenticate(ctx, "novo@email.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	exists, err := dir.CheckEmailExists(ctx, "novo@email.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMockDirectoryRegisterDuplicateEmail(t *testing.T) {
	dir := newTestDirectory(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
	}{
		{name: "duplicate of default user", email: "medico@email.com"},
		{name: "duplicate of registered user", email: "novo@email.com"},
	}

	_, err := dir.Register(ctx, &RegisterData{Email: "novo@email.com", Password: "senha123", FullName: "Novo", Role: entity.RolePaciente})
	require.NoError(t, err)

	before, err := dir.Stats(ctx)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dir.Register(ctx, &RegisterData{Email: tt.email, Password: "x", FullName: "X", Role: entity.RolePaciente})
			assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
		})
	}

	// A failed registration leaves the directory unchanged.
	after, err := dir.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMockDirectoryStats(t *testing.T) {
	dir := newTestDirectory(t)
	ctx := context.Background()

	stats, err := dir.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(5), stats.Defaults)
	assert.Equal(t, int64(0), stats.Registered)
	assert.Equal(t, int64(2), stats.Pacientes)
	assert.Equal(t, int64(2), stats.Medicos)
	assert.Equal(t, int64(1), stats.Admins)

	_, err = dir.Register(ctx, &RegisterData{Email: "m3@email.com", Password: "123456", FullName: "Dra. Carla Lima", Role: entity.RoleMedico})
	require.NoError(t, err)

	stats, err = dir.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(1), stats.Registered)
	assert.Equal(t, int64(3), stats.Medicos)
}

func TestMockDirectoryFindByID(t *testing.T) {
	dir := newTestDirectory(t)
	ctx := context.Background()

	user, err := dir.FindByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "medico@email.com", user.Email)

	user, err = dir.FindByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}
