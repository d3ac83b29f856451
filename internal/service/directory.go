package service

import (
	"context"
	"errors"

	"videvida-booking-api/internal/domain/entity"
)

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// RegisterData carries the fields required to create a directory entry.
type RegisterData struct {
	Email    string
	Password string
	FullName string
	Role     entity.Role
}

// DirectoryStats summarizes the user directory for the admin dashboard.
type DirectoryStats struct {
	Total      int64 `json:"total"`
	Defaults   int64 `json:"defaults"`
	Registered int64 `json:"registered"`
	Pacientes  int64 `json:"pacientes"`
	Medicos    int64 `json:"medicos"`
	Admins     int64 `json:"admins"`
}

// Directory is the user-directory backend behind the auth usecase. The
// mock implementation combines a fixed default directory with
// session-registered users; the database implementation is backed by the
// users table and bcrypt.
type Directory interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	// Authenticate returns the user iff the exact credential pair
	// matches, else ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	// Register fails with ErrEmailAlreadyRegistered on a duplicate email
	// and must leave the directory unchanged in that case.
	Register(ctx context.Context, data *RegisterData) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Stats(ctx context.Context) (*DirectoryStats, error)
}
