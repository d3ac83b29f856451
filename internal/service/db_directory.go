package service

import (
	"context"
	"errors"
	"strings"

	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// dbDirectory is the database-mode user directory: users table with
// bcrypt-hashed credentials and a unique email index.
type dbDirectory struct {
	userRepo repository.UserRepository
	log      *logrus.Logger
}

func NewDBDirectory(userRepo repository.UserRepository, log *logrus.Logger) Directory {
	return &dbDirectory{userRepo: userRepo, log: log}
}

func (d *dbDirectory) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	user, err := d.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (d *dbDirectory) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := d.userRepo.FindByEmail(ctx, email)
	if err != nil {
		d.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (d *dbDirectory) Register(ctx context.Context, data *RegisterData) (*entity.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		d.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		ID:       uuid.NewString(),
		Email:    data.Email,
		Password: string(hashedPassword),
		FullName: data.FullName,
		Role:     data.Role,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyRegistered
		}
		d.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return user, nil
}

func (d *dbDirectory) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return d.userRepo.FindByID(ctx, id)
}

func (d *dbDirectory) Stats(ctx context.Context) (*DirectoryStats, error) {
	counts, err := d.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DirectoryStats{
		Pacientes: counts[entity.RolePaciente],
		Medicos:   counts[entity.RoleMedico],
		Admins:    counts[entity.RoleAdmin],
	}
	for _, n := range counts {
		stats.Total += n
	}
	stats.Registered = stats.Total
	return stats, nil
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation
// on the named constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
