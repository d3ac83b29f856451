package handler

import (
	"net/http"

	"videvida-booking-api/internal/catalog"
	"videvida-booking-api/internal/converter"
	"videvida-booking-api/pkg/response"

	"github.com/gorilla/mux"
)

// CatalogHandler serves the static doctor and treatment directories the
// booking flow searches over.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetDoctors lists doctors, optionally filtered
// @Summary List doctors
// @Description Filter with especialidade (case-insensitive substring) or tratamentoId
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *CatalogHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	doctors := h.catalog.Doctors()
	if especialidade := query.Get("especialidade"); especialidade != "" {
		doctors = h.catalog.DoctorsBySpecialty(especialidade)
	} else if tratamentoID := query.Get("tratamentoId"); tratamentoID != "" {
		doctors = h.catalog.DoctorsByTreatment(tratamentoID)
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", converter.DoctorsToResponse(doctors))
}

// GetDoctor returns one doctor by id
// @Summary Get doctor
// @Tags Catalog
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *CatalogHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor := h.catalog.DoctorByID(mux.Vars(r)["id"])
	if doctor == nil {
		response.NotFound(w, "Doctor not found")
		return
	}
	response.Success(w, http.StatusOK, "Doctor retrieved successfully", converter.DoctorToResponse(doctor))
}

// GetTreatments lists treatments, optionally filtered
// @Summary List treatments
// @Description Filter with especialidade (case-insensitive substring) or medicoId
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /treatments [get]
func (h *CatalogHandler) GetTreatments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	treatments := h.catalog.Treatments()
	if especialidade := query.Get("especialidade"); especialidade != "" {
		treatments = h.catalog.TreatmentsBySpecialty(especialidade)
	} else if medicoID := query.Get("medicoId"); medicoID != "" {
		treatments = h.catalog.TreatmentsByDoctor(medicoID)
	}

	response.Success(w, http.StatusOK, "Treatments retrieved successfully", converter.TreatmentsToResponse(treatments))
}

// GetTreatment returns one treatment by id
// @Summary Get treatment
// @Tags Catalog
// @Produce json
// @Param id path string true "Treatment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /treatments/{id} [get]
func (h *CatalogHandler) GetTreatment(w http.ResponseWriter, r *http.Request) {
	treatment := h.catalog.TreatmentByID(mux.Vars(r)["id"])
	if treatment == nil {
		response.NotFound(w, "Treatment not found")
		return
	}
	response.Success(w, http.StatusOK, "Treatment retrieved successfully", converter.TreatmentToResponse(treatment))
}
