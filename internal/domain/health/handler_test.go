package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/praana/praana-care/internal/domain/patient"
)

type stubPatientSource struct {
	patient *patient.Patient
	err     error
}

func (s *stubPatientSource) GetPatient(context.Context, string) (*patient.Patient, error) {
	return s.patient, s.err
}

func TestHandler_GetRecommendations(t *testing.T) {
	h := NewHandler(&stubPatientSource{patient: &patient.Patient{
		ID:        "p1",
		RiskLevel: patient.RiskHigh,
	}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("p1")

	if err := h.GetRecommendations(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got recommendationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got.Recommendations) != 2 {
		t.Errorf("expected 2 recommendations, got %v", got.Recommendations)
	}
}

func TestHandler_GetRecommendationsEmptyListIsNotNull(t *testing.T) {
	h := NewHandler(&stubPatientSource{patient: &patient.Patient{
		ID:        "p1",
		RiskLevel: patient.RiskLow,
	}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("p1")

	if err := h.GetRecommendations(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]json.RawMessage
	json.Unmarshal(rec.Body.Bytes(), &raw)
	if string(raw["recommendations"]) != "[]" {
		t.Errorf("expected empty array, got %s", raw["recommendations"])
	}
}

func TestHandler_GetHealthSummary(t *testing.T) {
	h := NewHandler(&stubPatientSource{patient: &patient.Patient{
		ID:        "p1",
		RiskLevel: patient.RiskMedium,
		Vitals: []patient.Vital{
			{HeartRate: 72, StressLevel: 40, SleepHours: 7},
		},
		Consultations: []patient.Consultation{{ID: "c1"}},
	}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("p1")

	if err := h.GetHealthSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.PatientID != "p1" || got.TotalConsultations != 1 {
		t.Errorf("unexpected summary: %+v", got)
	}
	if got.AvgHeartRate == nil || *got.AvgHeartRate != 72 {
		t.Errorf("expected avg heart rate 72, got %v", got.AvgHeartRate)
	}
}

func TestHandler_GetHealthSummaryNoVitalsOmitsAverages(t *testing.T) {
	h := NewHandler(&stubPatientSource{patient: &patient.Patient{
		ID:        "p1",
		RiskLevel: patient.RiskLow,
	}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("p1")

	if err := h.GetHealthSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]json.RawMessage
	json.Unmarshal(rec.Body.Bytes(), &raw)
	for _, key := range []string{"avgHeartRate", "avgStress", "avgSleep", "lastVitalUpdate"} {
		if _, ok := raw[key]; ok {
			t.Errorf("expected %s to be omitted when there are no vitals", key)
		}
	}
	if string(raw["totalConsultations"]) != "0" {
		t.Errorf("expected totalConsultations 0, got %s", raw["totalConsultations"])
	}
}

func TestHandler_PatientNotFound(t *testing.T) {
	h := NewHandler(&stubPatientSource{err: patient.ErrNotFound})

	e := echo.New()
	for _, fn := range []echo.HandlerFunc{h.GetRecommendations, h.GetHealthSummary} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("patientId")
		c.SetParamValues("missing")

		if err := fn(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
		var body map[string]string
		json.Unmarshal(rec.Body.Bytes(), &body)
		if body["error"] != "Patient not found" {
			t.Errorf("unexpected error message: %q", body["error"])
		}
	}
}
