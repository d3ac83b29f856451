package http

import (
	"net/http"

	"videvida-booking-api/internal/delivery/http/handler"
	"videvida-booking-api/internal/delivery/http/middleware"
	"videvida-booking-api/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	catalogHandler     *handler.CatalogHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	authMiddleware     *middleware.AuthMiddleware
	profileGuard       *middleware.ProfileGuard
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	catalogHandler *handler.CatalogHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	profileGuard *middleware.ProfileGuard,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		catalogHandler:     catalogHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		authMiddleware:     authMiddleware,
		profileGuard:       profileGuard,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/check-email", r.authHandler.CheckEmail).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Catalog (public reads)
	api.HandleFunc("/doctors", r.catalogHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.catalogHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/treatments", r.catalogHandler.GetTreatments).Methods(http.MethodGet)
	api.HandleFunc("/treatments/{id}", r.catalogHandler.GetTreatment).Methods(http.MethodGet)

	// Profile (any authenticated role)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.UpdateProfile).Methods(http.MethodPut)
	profile.HandleFunc("/validation", r.profileHandler.GetValidation).Methods(http.MethodGet)

	// Role dashboards (page-shaped: unauthenticated callers are sent to
	// the login route, wrong roles to their own landing route)
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.AuthenticateOrRedirect)
	dashboard.Handle("/paciente", middleware.RequirePaciente(http.HandlerFunc(r.dashboardHandler.PacienteDashboard))).Methods(http.MethodGet)
	dashboard.Handle("/medico", middleware.RequireMedico(http.HandlerFunc(r.dashboardHandler.MedicoDashboard))).Methods(http.MethodGet)
	dashboard.Handle("/admin", middleware.RequireAdmin(http.HandlerFunc(r.dashboardHandler.AdminDashboard))).Methods(http.MethodGet)

	// Appointments. Listing and booking are paciente pages behind the
	// profile completeness guard; cancel and confirm also admit the
	// assigned medico and admins, ownership is checked in the usecase.
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.AuthenticateOrRedirect)
	appointments.Handle("", r.guardedPaciente(http.HandlerFunc(r.appointmentHandler.ListAppointments))).Methods(http.MethodGet)
	appointments.Handle("", r.guardedPaciente(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)
	statusRoles := middleware.RequireRoles(entity.RolePaciente, entity.RoleMedico, entity.RoleAdmin)
	appointments.Handle("/{id}/cancel", statusRoles(http.HandlerFunc(r.appointmentHandler.CancelAppointment))).Methods(http.MethodPost)
	appointments.Handle("/{id}/confirm", statusRoles(http.HandlerFunc(r.appointmentHandler.ConfirmAppointment))).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// guardedPaciente stacks the paciente role guard and the profile
// completeness guard in front of the appointment pages.
func (r *Router) guardedPaciente(next http.Handler) http.Handler {
	return middleware.RequirePaciente(r.profileGuard.Require(next))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
