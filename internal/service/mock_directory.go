package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/store"

	"github.com/sirupsen/logrus"
)

// mockDirectory reproduces the in-browser mock auth service: a fixed
// default directory that is never persisted, plus session-registered
// users stored under a single blob key. Email comparison is
// case-sensitive and credentials match by exact equality, as in the
// original mock.
type mockDirectory struct {
	kv      store.KV
	log     *logrus.Logger
	latency time.Duration
}

func NewMockDirectory(kv store.KV, log *logrus.Logger, latency time.Duration) Directory {
	return &mockDirectory{kv: kv, log: log, latency: latency}
}

// defaultUsers is the fixed seed directory.
func defaultUsers() []entity.User {
	return []entity.User{
		{ID: "1", Email: "paciente@email.com", Password: "123456", FullName: "João Silva", Role: entity.RolePaciente},
		{ID: "2", Email: "medico@email.com", Password: "123456", FullName: "Dr. Maria Santos", Role: entity.RoleMedico},
		{ID: "3", Email: "admin@email.com", Password: "123456", FullName: "Admin Sistema", Role: entity.RoleAdmin},
		{ID: "4", Email: "paciente2@email.com", Password: "123456", FullName: "Ana Costa", Role: entity.RolePaciente},
		{ID: "5", Email: "medico2@email.com", Password: "123456", FullName: "Dr. Pedro Oliveira", Role: entity.RoleMedico},
	}
}

func (d *mockDirectory) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	if err := wait(ctx, d.latency); err != nil {
		return false, err
	}

	for _, u := range d.allUsers(ctx) {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (d *mockDirectory) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	if err := wait(ctx, d.latency); err != nil {
		return nil, err
	}

	for _, u := range d.allUsers(ctx) {
		if u.Email == email && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (d *mockDirectory) Register(ctx context.Context, data *RegisterData) (*entity.User, error) {
	if err := wait(ctx, d.latency); err != nil {
		return nil, err
	}

	for _, u := range d.allUsers(ctx) {
		if u.Email == data.Email {
			return nil, ErrEmailAlreadyRegistered
		}
	}

	now := time.Now()
	user := entity.User{
		ID:        fmt.Sprintf("%d", now.UnixMilli()),
		Email:     data.Email,
		Password:  data.Password,
		FullName:  data.FullName,
		Role:      data.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	registered := append(d.registeredUsers(ctx), user)
	d.saveRegisteredUsers(ctx, registered)

	d.log.Infof("New user registered: %s (%s)", user.FullName, user.Email)
	return &user, nil
}

func (d *mockDirectory) FindByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range d.allUsers(ctx) {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (d *mockDirectory) Stats(ctx context.Context) (*DirectoryStats, error) {
	if err := wait(ctx, d.latency); err != nil {
		return nil, err
	}

	registered := d.registeredUsers(ctx)
	all := append(defaultUsers(), registered...)

	stats := &DirectoryStats{
		Total:      int64(len(all)),
		Defaults:   int64(len(defaultUsers())),
		Registered: int64(len(registered)),
	}
	for _, u := range all {
		switch u.Role {
		case entity.RolePaciente:
			stats.Pacientes++
		case entity.RoleMedico:
			stats.Medicos++
		case entity.RoleAdmin:
			stats.Admins++
		}
	}
	return stats, nil
}

// allUsers combines the default directory with session-registered users.
func (d *mockDirectory) allUsers(ctx context.Context) []entity.User {
	return append(defaultUsers(), d.registeredUsers(ctx)...)
}

// storedUser is the persisted shape of a session-registered directory
// entry. entity.User hides the password from JSON; the directory blob
// must keep it, matching the original session-storage records.
type storedUser struct {
	ID       string      `json:"id"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Type     entity.Role `json:"type"`
}

func (d *mockDirectory) registeredUsers(ctx context.Context) []entity.User {
	blob, found, err := d.kv.Get(ctx, store.KeyRegisteredUsers)
	if err != nil || !found {
		return nil
	}
	var stored []storedUser
	if err := json.Unmarshal(blob, &stored); err != nil {
		return nil
	}
	users := make([]entity.User, 0, len(stored))
	for _, su := range stored {
		users = append(users, entity.User{
			ID:       su.ID,
			Email:    su.Email,
			Password: su.Password,
			FullName: su.Name,
			Role:     su.Type,
		})
	}
	return users
}

func (d *mockDirectory) saveRegisteredUsers(ctx context.Context, users []entity.User) {
	stored := make([]storedUser, 0, len(users))
	for _, u := range users {
		stored = append(stored, storedUser{
			ID:       u.ID,
			Email:    u.Email,
			Password: u.Password,
			Name:     u.FullName,
			Type:     u.Role,
		})
	}
	blob, err := json.Marshal(stored)
	if err != nil {
		d.log.Warnf("Failed to serialize registered users: %+v", err)
		return
	}
	if err := d.kv.Set(ctx, store.KeyRegisteredUsers, blob); err != nil {
		d.log.Warnf("Failed to persist registered users: %+v", err)
	}
}

// wait simulates the mock service latency.
func wait(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return nil
	}
	select {
	case <-time.After(latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
