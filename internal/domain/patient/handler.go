package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AlertFunc derives threshold alerts from a single vital reading. The
// concrete implementation lives in the health domain and is injected at
// wiring time to keep this package free of analytics concerns.
type AlertFunc func(v Vital) []string

type Handler struct {
	svc    *Service
	alerts AlertFunc
}

func NewHandler(svc *Service, alerts AlertFunc) *Handler {
	return &Handler{svc: svc, alerts: alerts}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:userId", h.GetPatientByUser)
	api.PUT("/patients/:patientId", h.UpdatePatient)
	api.POST("/vitals", h.RecordVital)
	api.GET("/vitals/:patientId", h.ListVitals)
	api.POST("/consultations", h.ScheduleConsultation)
	api.GET("/consultations/:patientId", h.ListConsultations)
	api.PUT("/consultations/:consultationId", h.UpdateConsultation)
}

// GetPatientByUser handles GET /patients/:userId. The path parameter is the
// owning user's id, not the patient id.
func (h *Handler) GetPatientByUser(c echo.Context) error {
	p, err := h.svc.GetPatientByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// ListPatients handles GET /patients.
func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, patients)
}

// UpdatePatient handles PUT /patients/:patientId.
func (h *Handler) UpdatePatient(c echo.Context) error {
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	p, err := h.svc.UpdatePatient(c.Request().Context(), c.Param("patientId"), patch)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
	}
	return c.JSON(http.StatusOK, p)
}

type recordVitalRequest struct {
	PatientID     string  `json:"patientId"`
	HeartRate     float64 `json:"heartRate"`
	BloodPressure string  `json:"bloodPressure"`
	Temperature   float64 `json:"temperature"`
	StressLevel   float64 `json:"stressLevel"`
	SleepHours    float64 `json:"sleepHours"`
}

type recordVitalResponse struct {
	Vital  *Vital   `json:"vital"`
	Alerts []string `json:"alerts"`
}

// RecordVital handles POST /vitals. The response carries the stored vital
// together with any threshold alerts it triggered.
func (h *Handler) RecordVital(c echo.Context) error {
	var req recordVitalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	v, err := h.svc.RecordVital(c.Request().Context(), req.PatientID, Vital{
		HeartRate:     req.HeartRate,
		BloodPressure: req.BloodPressure,
		Temperature:   req.Temperature,
		StressLevel:   req.StressLevel,
		SleepHours:    req.SleepHours,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Patient not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, recordVitalResponse{Vital: v, Alerts: h.alerts(*v)})
}

// ListVitals handles GET /vitals/:patientId.
func (h *Handler) ListVitals(c echo.Context) error {
	vitals, err := h.svc.ListVitals(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, vitals)
}

type scheduleConsultationRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

// ScheduleConsultation handles POST /consultations.
func (h *Handler) ScheduleConsultation(c echo.Context) error {
	var req scheduleConsultationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	created, err := h.svc.ScheduleConsultation(c.Request().Context(), Consultation{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Notes:     req.Notes,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, created)
}

// ListConsultations handles GET /consultations/:patientId.
func (h *Handler) ListConsultations(c echo.Context) error {
	consultations, err := h.svc.ListConsultations(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, consultations)
}

// UpdateConsultation handles PUT /consultations/:consultationId. Status
// overwrites are accepted as-is; there is no transition validation.
func (h *Handler) UpdateConsultation(c echo.Context) error {
	var patch ConsultationPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	updated, err := h.svc.UpdateConsultation(c.Request().Context(), c.Param("consultationId"), patch)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Consultation not found"})
	}
	return c.JSON(http.StatusOK, updated)
}
