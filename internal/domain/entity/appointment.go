package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AppointmentStatus represents the status of an agendamento. The
// non-cancelled statuses form an ordered progression.
type AppointmentStatus string

const (
	StatusAgendado    AppointmentStatus = "agendado"
	StatusConfirmado  AppointmentStatus = "confirmado"
	StatusEmAndamento AppointmentStatus = "em_andamento"
	StatusConcluido   AppointmentStatus = "concluido"
	StatusCancelado   AppointmentStatus = "cancelado"
)

// statusOrder positions the progressing statuses; cancelado sits outside
// the progression.
var statusOrder = map[AppointmentStatus]int{
	StatusAgendado:    0,
	StatusConfirmado:  1,
	StatusEmAndamento: 2,
	StatusConcluido:   3,
}

// Appointment represents a booked agendamento. IDs are timestamp-derived
// strings; HoraFim must equal HoraInicio plus the referenced treatment's
// duration.
type Appointment struct {
	ID           string            `gorm:"type:varchar(64);primaryKey" json:"id"`
	PacienteID   string            `gorm:"type:varchar(64);not null;index" json:"pacienteId"`
	MedicoID     string            `gorm:"type:varchar(64);not null;index" json:"medicoId"`
	TratamentoID string            `gorm:"type:varchar(64);not null" json:"tratamentoId"`
	Data         string            `gorm:"type:varchar(10);not null" json:"data"`       // YYYY-MM-DD
	HoraInicio   string            `gorm:"type:varchar(5);not null" json:"horaInicio"`  // HH:MM
	HoraFim      string            `gorm:"type:varchar(5);not null" json:"horaFim"`     // HH:MM
	Status       AppointmentStatus `gorm:"type:varchar(20);not null;default:'agendado'" json:"status"`
	Observacoes  string            `gorm:"type:text" json:"observacoes,omitempty"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelado checks if the appointment is cancelled.
func (a *Appointment) IsCancelado() bool {
	return a.Status == StatusCancelado
}

// IsConcluido checks if the appointment is completed.
func (a *Appointment) IsConcluido() bool {
	return a.Status == StatusConcluido
}

// CanTransitionTo reports whether the status may move to target: forward
// along the ordered progression, or to cancelado from any non-terminal
// status.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	if a.Status == StatusCancelado || a.Status == StatusConcluido {
		return false
	}
	if target == StatusCancelado {
		return true
	}
	from, okFrom := statusOrder[a.Status]
	to, okTo := statusOrder[target]
	return okFrom && okTo && to == from+1
}

// Confirm moves the appointment to confirmado.
func (a *Appointment) Confirm() {
	a.Status = StatusConfirmado
}

// Cancel moves the appointment to cancelado.
func (a *Appointment) Cancel() {
	a.Status = StatusCancelado
}

// NewAppointmentID derives an id from the given instant, matching the
// historical "agendamento_<unix-ms>" format of stored records.
func NewAppointmentID(now time.Time) string {
	return fmt.Sprintf("agendamento_%d", now.UnixMilli())
}

// CalculateEndTime adds duracaoMinutos to an HH:MM start time using
// minutes-since-midnight arithmetic. Hours are intentionally not wrapped
// past 24: a booking starting 23:45 with a 30 minute duration ends at
// "24:15", preserving the stored-data convention for cross-midnight
// slots. Returns horaInicio unchanged when it is not parseable.
func CalculateEndTime(horaInicio string, duracaoMinutos int) string {
	parts := strings.Split(horaInicio, ":")
	if len(parts) != 2 {
		return horaInicio
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return horaInicio
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return horaInicio
	}

	totalMinutes := hours*60 + minutes + duracaoMinutos
	endHours := totalMinutes / 60
	endMinutes := totalMinutes % 60

	return fmt.Sprintf("%02d:%02d", endHours, endMinutes)
}
