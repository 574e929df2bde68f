// Package client is a thin Go gateway to the Praana Care REST API. Each
// method maps to one endpoint, posts or fetches JSON, and returns the
// parsed body unmodified. API-level failures are carried in the Error field
// of the decoded response, never as a Go error; the error return is
// reserved for transport and decoding problems. No retries, timeouts, or
// caching are applied beyond what the injected http.Client does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3001").
// httpClient may be nil, in which case http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http:    httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// -- Wire types --

type User struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	AdditionalData *Patient `json:"additionalData,omitempty"`
}

type Patient struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Age           int            `json:"age"`
	Gender        string         `json:"gender"`
	Department    string         `json:"department"`
	RiskLevel     string         `json:"riskLevel"`
	Vitals        []Vital        `json:"vitals"`
	Consultations []Consultation `json:"consultations"`
	Error         string         `json:"error,omitempty"`
}

type Vital struct {
	ID            string  `json:"id"`
	PatientID     string  `json:"patientId"`
	Timestamp     string  `json:"timestamp"`
	HeartRate     float64 `json:"heartRate"`
	BloodPressure string  `json:"bloodPressure"`
	Temperature   float64 `json:"temperature"`
	StressLevel   float64 `json:"stressLevel"`
	SleepHours    float64 `json:"sleepHours"`
}

type Consultation struct {
	ID              string   `json:"id"`
	PatientID       string   `json:"patientId"`
	DoctorID        string   `json:"doctorId"`
	Date            string   `json:"date"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
	Recommendations []string `json:"recommendations"`
	Error           string   `json:"error,omitempty"`
}

type AIAction struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

type LoginResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RedirectPath string `json:"redirectPath"`
	Error        string `json:"error,omitempty"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

type VitalResponse struct {
	Vital  *Vital   `json:"vital"`
	Alerts []string `json:"alerts"`
	Error  string   `json:"error,omitempty"`
}

type ChatResponse struct {
	Message   string `json:"message"`
	ActionID  string `json:"actionId"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
	Error           string   `json:"error,omitempty"`
}

type HealthSummary struct {
	PatientID          string   `json:"patientId"`
	RiskLevel          string   `json:"riskLevel"`
	AvgHeartRate       *int     `json:"avgHeartRate,omitempty"`
	AvgStress          *int     `json:"avgStress,omitempty"`
	AvgSleep           *float64 `json:"avgSleep,omitempty"`
	TotalConsultations int      `json:"totalConsultations"`
	LastVitalUpdate    *string  `json:"lastVitalUpdate,omitempty"`
	Error              string   `json:"error,omitempty"`
}

// -- Auth --

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	out := &LoginResponse{}
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, out)
	return out, err
}

func (c *Client) Register(ctx context.Context, email, password, name, role string) (*RegisterResponse, error) {
	out := &RegisterResponse{}
	err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"role":     role,
	}, out)
	return out, err
}

// -- Patients --

func (c *Client) GetPatient(ctx context.Context, userID string) (*Patient, error) {
	out := &Patient{}
	err := c.do(ctx, http.MethodGet, "/patients/"+userID, nil, out)
	return out, err
}

func (c *Client) ListPatients(ctx context.Context) ([]Patient, error) {
	var out []Patient
	err := c.do(ctx, http.MethodGet, "/patients", nil, &out)
	return out, err
}

func (c *Client) UpdatePatient(ctx context.Context, patientID string, fields map[string]any) (*Patient, error) {
	out := &Patient{}
	err := c.do(ctx, http.MethodPut, "/patients/"+patientID, fields, out)
	return out, err
}

// -- Vitals --

func (c *Client) AddVital(ctx context.Context, patientID string, vital Vital) (*VitalResponse, error) {
	out := &VitalResponse{}
	err := c.do(ctx, http.MethodPost, "/vitals", map[string]any{
		"patientId":     patientID,
		"heartRate":     vital.HeartRate,
		"bloodPressure": vital.BloodPressure,
		"temperature":   vital.Temperature,
		"stressLevel":   vital.StressLevel,
		"sleepHours":    vital.SleepHours,
	}, out)
	return out, err
}

func (c *Client) GetVitals(ctx context.Context, patientID string) ([]Vital, error) {
	var out []Vital
	err := c.do(ctx, http.MethodGet, "/vitals/"+patientID, nil, &out)
	return out, err
}

// -- Consultations --

func (c *Client) ScheduleConsultation(ctx context.Context, patientID, doctorID, date, notes string) (*Consultation, error) {
	out := &Consultation{}
	err := c.do(ctx, http.MethodPost, "/consultations", map[string]string{
		"patientId": patientID,
		"doctorId":  doctorID,
		"date":      date,
		"notes":     notes,
	}, out)
	return out, err
}

func (c *Client) GetConsultations(ctx context.Context, patientID string) ([]Consultation, error) {
	var out []Consultation
	err := c.do(ctx, http.MethodGet, "/consultations/"+patientID, nil, &out)
	return out, err
}

func (c *Client) UpdateConsultation(ctx context.Context, consultationID string, fields map[string]any) (*Consultation, error) {
	out := &Consultation{}
	err := c.do(ctx, http.MethodPut, "/consultations/"+consultationID, fields, out)
	return out, err
}

// -- Assistant --

func (c *Client) Chat(ctx context.Context, patientID, message string) (*ChatResponse, error) {
	out := &ChatResponse{}
	err := c.do(ctx, http.MethodPost, "/ai/chat", map[string]string{
		"patientId": patientID,
		"message":   message,
	}, out)
	return out, err
}

func (c *Client) GetAIActions(ctx context.Context, patientID string) ([]AIAction, error) {
	var out []AIAction
	err := c.do(ctx, http.MethodGet, "/ai/actions/"+patientID, nil, &out)
	return out, err
}

// -- Analytics --

func (c *Client) GetRecommendations(ctx context.Context, patientID string) (*RecommendationsResponse, error) {
	out := &RecommendationsResponse{}
	err := c.do(ctx, http.MethodGet, "/recommendations/"+patientID, nil, out)
	return out, err
}

func (c *Client) GetHealthSummary(ctx context.Context, patientID string) (*HealthSummary, error) {
	out := &HealthSummary{}
	err := c.do(ctx, http.MethodGet, "/health-summary/"+patientID, nil, out)
	return out, err
}
