package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateEndTime(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
	}{
		{"exact hour", "09:00", 60, "10:00"},
		{"partial hour", "14:00", 45, "14:45"},
		{"minute rollover", "10:30", 45, "11:15"},
		{"zero duration", "08:15", 0, "08:15"},
		{"multi hour", "08:00", 150, "10:30"},
		// Hours are not wrapped past 24 for cross-midnight slots.
		{"no day rollover", "23:45", 30, "24:15"},
		{"unparseable start", "soon", 30, "soon"},
		{"missing minutes", "09", 30, "09"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateEndTime(tt.start, tt.minutes))
		})
	}
}

func TestNewAppointmentID(t *testing.T) {
	now := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "agendamento_1750240800000", NewAppointmentID(now))
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusAgendado, StatusConfirmado, true},
		{StatusConfirmado, StatusEmAndamento, true},
		{StatusEmAndamento, StatusConcluido, true},
		{StatusAgendado, StatusEmAndamento, false},
		{StatusAgendado, StatusConcluido, false},
		{StatusConfirmado, StatusAgendado, false},
		{StatusAgendado, StatusCancelado, true},
		{StatusConfirmado, StatusCancelado, true},
		{StatusEmAndamento, StatusCancelado, true},
		{StatusConcluido, StatusCancelado, false},
		{StatusCancelado, StatusConfirmado, false},
		{StatusCancelado, StatusCancelado, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.allowed, a.CanTransitionTo(tt.to))
		})
	}
}
