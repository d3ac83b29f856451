package mockstore

import (
	"context"
	"encoding/json"
	"time"

	"videvida-booking-api/internal/domain/entity"
	domainRepo "videvida-booking-api/internal/domain/repository"
	"videvida-booking-api/internal/store"

	"github.com/sirupsen/logrus"
)

// appointmentStore keeps the whole appointment collection as one JSON
// array blob. The collection is append-only except for status updates;
// records are never deleted.
type appointmentStore struct {
	kv      store.KV
	log     *logrus.Logger
	latency time.Duration
}

func NewAppointmentStore(kv store.KV, log *logrus.Logger, latency time.Duration) domainRepo.AppointmentRepository {
	return &appointmentStore{kv: kv, log: log, latency: latency}
}

func (s *appointmentStore) Create(ctx context.Context, appointment *entity.Appointment) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	appointments, err := s.loadAll(ctx)
	if err != nil {
		return err
	}
	appointments = append(appointments, *appointment)
	s.saveAll(ctx, appointments)
	return nil
}

func (s *appointmentStore) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	appointments, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, nil
}

func (s *appointmentStore) FindByPacienteID(ctx context.Context, pacienteID string) ([]entity.Appointment, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	appointments, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.Appointment
	for _, a := range appointments {
		if a.PacienteID == pacienteID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *appointmentStore) FindByMedicoID(ctx context.Context, medicoID string) ([]entity.Appointment, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	appointments, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []entity.Appointment
	for _, a := range appointments {
		if a.MedicoID == medicoID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *appointmentStore) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) error {
	appointments, err := s.loadAll(ctx)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			appointments[i].Status = status
			appointments[i].UpdatedAt = time.Now()
			break
		}
	}
	s.saveAll(ctx, appointments)
	return nil
}

func (s *appointmentStore) loadAll(ctx context.Context) ([]entity.Appointment, error) {
	blob, found, err := s.kv.Get(ctx, store.KeyAppointments)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var appointments []entity.Appointment
	if err := json.Unmarshal(blob, &appointments); err != nil {
		s.log.Warnf("Failed to parse stored appointments, starting empty: %+v", err)
		return nil, nil
	}
	return appointments, nil
}

// saveAll persists the full collection. Write failures are logged and
// swallowed: the request that triggered the write still succeeds.
func (s *appointmentStore) saveAll(ctx context.Context, appointments []entity.Appointment) {
	blob, err := json.Marshal(appointments)
	if err != nil {
		s.log.Warnf("Failed to serialize appointments: %+v", err)
		return
	}
	if err := s.kv.Set(ctx, store.KeyAppointments, blob); err != nil {
		s.log.Warnf("Failed to persist appointments: %+v", err)
	}
}
