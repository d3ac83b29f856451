package entity

// Role represents a user category in the system. A user's role is fixed
// at registration and governs which routes admit it.
type Role string

const (
	RolePaciente Role = "paciente"
	RoleMedico   Role = "medico"
	RoleAdmin    Role = "admin"
)

// Client-side route paths used as guard redirect targets.
const (
	RouteLogin           = "/login"
	RoutePaciente        = "/paciente"
	RouteMedico          = "/medico"
	RouteAdmin           = "/admin"
	RouteProfileComplete = "/profile/complete"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePaciente, RoleMedico, RoleAdmin:
		return true
	}
	return false
}

// DefaultRouteFor returns the dashboard path a user of the given role is
// sent to when a guard denies access to a route. Every redirect decision
// in the delivery layer goes through this mapping.
func DefaultRouteFor(role Role) string {
	switch role {
	case RoleAdmin:
		return RouteAdmin
	case RoleMedico:
		return RouteMedico
	default:
		return RoutePaciente
	}
}
