package health

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/praana/praana-care/internal/domain/patient"
)

// PatientSource is the read-side of the patient domain the analytics
// endpoints need.
type PatientSource interface {
	GetPatient(ctx context.Context, id string) (*patient.Patient, error)
}

type Handler struct {
	patients PatientSource
}

func NewHandler(patients PatientSource) *Handler {
	return &Handler{patients: patients}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/recommendations/:patientId", h.GetRecommendations)
	api.GET("/health-summary/:patientId", h.GetHealthSummary)
}

type recommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

// GetRecommendations handles GET /recommendations/:patientId.
func (h *Handler) GetRecommendations(c echo.Context) error {
	p, err := h.patients.GetPatient(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
	}
	return c.JSON(http.StatusOK, recommendationsResponse{Recommendations: DeriveRecommendations(p)})
}

// GetHealthSummary handles GET /health-summary/:patientId.
func (h *Handler) GetHealthSummary(c echo.Context) error {
	p, err := h.patients.GetPatient(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
	}
	return c.JSON(http.StatusOK, Summarize(p))
}
