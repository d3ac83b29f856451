package dto

// PacienteDashboardResponse backs the patient landing page.
type PacienteDashboardResponse struct {
	ProximosAgendamentos []AppointmentResponse     `json:"proximosAgendamentos"`
	TotalAgendamentos    int                       `json:"totalAgendamentos"`
	Validation           ProfileValidationResponse `json:"validation"`
}

// MedicoDashboardResponse backs the doctor landing page.
type MedicoDashboardResponse struct {
	AgendamentosHoje  []AppointmentResponse `json:"agendamentosHoje"`
	TotalAgendamentos int                   `json:"totalAgendamentos"`
	TotalPacientes    int                   `json:"totalPacientes"`
}

// AdminDashboardResponse backs the admin landing page.
type AdminDashboardResponse struct {
	Usuarios          UserStatsResponse `json:"usuarios"`
	TotalMedicos      int               `json:"totalMedicos"`
	TotalTratamentos  int               `json:"totalTratamentos"`
	TotalAgendamentos int               `json:"totalAgendamentos"`
	PorStatus         map[string]int    `json:"porStatus"`
}

type UserStatsResponse struct {
	Total       int64 `json:"total"`
	Padrao      int64 `json:"padrao"`
	Registrados int64 `json:"registrados"`
	Pacientes   int64 `json:"pacientes"`
	Medicos     int64 `json:"medicos"`
	Admins      int64 `json:"admins"`
}
