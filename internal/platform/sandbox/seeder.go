// Package sandbox generates the synthetic demo dataset: three well-known
// accounts (doctor, patient, employer), one populated patient profile, and
// a week of synthetic vitals. Values are reproducible when a fixed random
// seed is configured.
package sandbox

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/praana/praana-care/internal/domain/identity"
	"github.com/praana/praana-care/internal/domain/patient"
)

// Demo account credentials. Plaintext on purpose: the platform's auth is a
// demo contract, not a security boundary.
const (
	DoctorEmail   = "dr.smith@praana.com"
	PatientEmail  = "john@example.com"
	EmployerEmail = "hr@company.com"
	DemoPassword  = "password123"
)

const vitalsPerPatient = 7

// Result reports what the seeder created.
type Result struct {
	DoctorUserID   string `json:"doctorUserId"`
	PatientUserID  string `json:"patientUserId"`
	EmployerUserID string `json:"employerUserId"`
	PatientID      string `json:"patientId"`
	VitalCount     int    `json:"vitalCount"`
}

// Seeder populates the identity and patient stores with demo data.
type Seeder struct {
	identity *identity.Service
	patients *patient.Service
}

func NewSeeder(identitySvc *identity.Service, patientSvc *patient.Service) *Seeder {
	return &Seeder{identity: identitySvc, patients: patientSvc}
}

// Seed creates the demo accounts, the demo patient profile, and one week of
// synthetic vitals. randSeed zero means non-reproducible values.
func (s *Seeder) Seed(ctx context.Context, randSeed int64) (*Result, error) {
	if randSeed != 0 {
		gofakeit.Seed(randSeed)
	}

	doctor, err := s.identity.Register(ctx, DoctorEmail, DemoPassword, "Dr. Smith", identity.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("seed doctor: %w", err)
	}
	patientUser, err := s.identity.Register(ctx, PatientEmail, DemoPassword, "John Doe", identity.RolePatient)
	if err != nil {
		return nil, fmt.Errorf("seed patient user: %w", err)
	}
	employer, err := s.identity.Register(ctx, EmployerEmail, DemoPassword, "HR Manager", identity.RoleEmployer)
	if err != nil {
		return nil, fmt.Errorf("seed employer: %w", err)
	}

	profile, err := s.patients.GetPatientByUserID(ctx, patientUser.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve seeded profile: %w", err)
	}

	age := 35
	gender := "Male"
	department := "Engineering"
	risk := patient.RiskMedium
	if _, err := s.patients.UpdatePatient(ctx, profile.ID, patient.Patch{
		Age:        &age,
		Gender:     &gender,
		Department: &department,
		RiskLevel:  &risk,
	}); err != nil {
		return nil, fmt.Errorf("seed profile fields: %w", err)
	}

	// One reading per day for the past week, oldest first so insertion
	// order matches chronology.
	now := time.Now().UTC()
	for i := vitalsPerPatient - 1; i >= 0; i-- {
		v := patient.Vital{
			Timestamp:     now.Add(-time.Duration(i) * 24 * time.Hour),
			HeartRate:     gofakeit.Float64Range(72, 92),
			BloodPressure: fmt.Sprintf("%d/%d", gofakeit.Number(120, 130), gofakeit.Number(80, 90)),
			Temperature:   gofakeit.Float64Range(36.5, 37.5),
			StressLevel:   gofakeit.Float64Range(0, 100),
			SleepHours:    gofakeit.Float64Range(6, 9),
		}
		if _, err := s.patients.RecordVital(ctx, profile.ID, v); err != nil {
			return nil, fmt.Errorf("seed vital: %w", err)
		}
	}

	return &Result{
		DoctorUserID:   doctor.ID,
		PatientUserID:  patientUser.ID,
		EmployerUserID: employer.ID,
		PatientID:      profile.ID,
		VitalCount:     vitalsPerPatient,
	}, nil
}
