package patient

import (
	"context"
	"fmt"
)

// Service wraps the patient repository with request-level validation.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateProfile(ctx context.Context, userID string) (*Patient, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	return s.repo.CreateProfile(ctx, userID)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetPatientByUserID(ctx context.Context, userID string) (*Patient, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdatePatient(ctx context.Context, id string, patch Patch) (*Patient, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) RecordVital(ctx context.Context, patientID string, v Vital) (*Vital, error) {
	if patientID == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	return s.repo.AppendVital(ctx, patientID, v)
}

func (s *Service) ListVitals(ctx context.Context, patientID string) ([]Vital, error) {
	return s.repo.ListVitalsByPatient(ctx, patientID)
}

func (s *Service) ScheduleConsultation(ctx context.Context, c Consultation) (*Consultation, error) {
	if c.PatientID == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	return s.repo.CreateConsultation(ctx, c)
}

func (s *Service) ListConsultations(ctx context.Context, patientID string) ([]Consultation, error) {
	return s.repo.ListConsultationsByPatient(ctx, patientID)
}

func (s *Service) UpdateConsultation(ctx context.Context, id string, patch ConsultationPatch) (*Consultation, error) {
	return s.repo.UpdateConsultation(ctx, id, patch)
}
