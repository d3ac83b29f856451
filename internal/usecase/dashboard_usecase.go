package usecase

import (
	"context"
	"sort"
	"time"

	"videvida-booking-api/internal/catalog"
	"videvida-booking-api/internal/converter"
	"videvida-booking-api/internal/delivery/dto"
	"videvida-booking-api/internal/domain/entity"
	"videvida-booking-api/internal/domain/repository"
	"videvida-booking-api/internal/service"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	PacienteDashboard(ctx context.Context, userID string) (*dto.PacienteDashboardResponse, error)
	MedicoDashboard(ctx context.Context, userID string) (*dto.MedicoDashboardResponse, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	directory       service.Directory
	profileUsecase  ProfileUsecase
	catalog         *catalog.Catalog
}

func NewDashboardUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	directory service.Directory,
	profileUsecase ProfileUsecase,
	cat *catalog.Catalog,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		directory:       directory,
		profileUsecase:  profileUsecase,
		catalog:         cat,
	}
}

func (u *dashboardUsecase) PacienteDashboard(ctx context.Context, userID string) (*dto.PacienteDashboardResponse, error) {
	appointments, err := u.appointmentRepo.FindByPacienteID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for paciente %s: %+v", userID, err)
		return nil, err
	}

	validation, err := u.profileUsecase.GetValidation(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	var upcoming []entity.Appointment
	for _, a := range appointments {
		if a.Data >= today && !a.IsCancelado() && !a.IsConcluido() {
			upcoming = append(upcoming, a)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].Data != upcoming[j].Data {
			return upcoming[i].Data < upcoming[j].Data
		}
		return upcoming[i].HoraInicio < upcoming[j].HoraInicio
	})

	return &dto.PacienteDashboardResponse{
		ProximosAgendamentos: converter.AppointmentsToResponse(upcoming, u.catalog),
		TotalAgendamentos:    len(appointments),
		Validation:           *validation,
	}, nil
}

func (u *dashboardUsecase) MedicoDashboard(ctx context.Context, userID string) (*dto.MedicoDashboardResponse, error) {
	appointments, err := u.appointmentRepo.FindByMedicoID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for medico %s: %+v", userID, err)
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	var todays []entity.Appointment
	patients := map[string]struct{}{}
	for _, a := range appointments {
		patients[a.PacienteID] = struct{}{}
		if a.Data == today && !a.IsCancelado() {
			todays = append(todays, a)
		}
	}
	sort.Slice(todays, func(i, j int) bool {
		return todays[i].HoraInicio < todays[j].HoraInicio
	})

	return &dto.MedicoDashboardResponse{
		AgendamentosHoje:  converter.AppointmentsToResponse(todays, u.catalog),
		TotalAgendamentos: len(appointments),
		TotalPacientes:    len(patients),
	}, nil
}

func (u *dashboardUsecase) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	stats, err := u.directory.Stats(ctx)
	if err != nil {
		u.log.Warnf("Failed to load directory stats: %+v", err)
		return nil, err
	}

	// The admin view aggregates across every doctor in the catalog.
	byStatus := map[string]int{}
	total := 0
	for _, doctor := range u.catalog.Doctors() {
		appointments, err := u.appointmentRepo.FindByMedicoID(ctx, doctor.ID)
		if err != nil {
			u.log.Warnf("Failed to load appointments for medico %s: %+v", doctor.ID, err)
			return nil, err
		}
		total += len(appointments)
		for _, a := range appointments {
			byStatus[string(a.Status)]++
		}
	}

	return &dto.AdminDashboardResponse{
		Usuarios: dto.UserStatsResponse{
			Total:       stats.Total,
			Padrao:      stats.Defaults,
			Registrados: stats.Registered,
			Pacientes:   stats.Pacientes,
			Medicos:     stats.Medicos,
			Admins:      stats.Admins,
		},
		TotalMedicos:      len(u.catalog.Doctors()),
		TotalTratamentos:  len(u.catalog.Treatments()),
		TotalAgendamentos: total,
		PorStatus:         byStatus,
	}, nil
}
