package sandbox

import (
	"context"
	"testing"

	"github.com/praana/praana-care/internal/domain/identity"
	"github.com/praana/praana-care/internal/domain/patient"
)

func newTestSeeder() (*Seeder, *identity.Service, *patient.Service) {
	patientSvc := patient.NewService(patient.NewMemRepo())
	identitySvc := identity.NewService(identity.NewMemRepo(), patientSvc)
	return NewSeeder(identitySvc, patientSvc), identitySvc, patientSvc
}

func TestSeeder_Seed(t *testing.T) {
	seeder, identitySvc, patientSvc := newTestSeeder()

	result, err := seeder.Seed(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DoctorUserID == "" || result.PatientUserID == "" || result.EmployerUserID == "" {
		t.Errorf("expected all three demo accounts, got %+v", result)
	}
	if result.VitalCount != 7 {
		t.Errorf("expected 7 seeded vitals, got %d", result.VitalCount)
	}

	// All three demo accounts can log in with the shared password.
	for _, email := range []string{DoctorEmail, PatientEmail, EmployerEmail} {
		if _, _, err := identitySvc.Login(context.Background(), email, DemoPassword); err != nil {
			t.Errorf("login %s: %v", email, err)
		}
	}

	p, err := patientSvc.GetPatientByUserID(context.Background(), result.PatientUserID)
	if err != nil {
		t.Fatalf("expected seeded patient profile: %v", err)
	}
	if p.ID != result.PatientID {
		t.Errorf("result patient id mismatch: %s vs %s", p.ID, result.PatientID)
	}
	if p.Age != 35 || p.Department != "Engineering" || p.RiskLevel != patient.RiskMedium {
		t.Errorf("unexpected seeded profile: %+v", p)
	}

	vitals, _ := patientSvc.ListVitals(context.Background(), p.ID)
	if len(vitals) != 7 {
		t.Fatalf("expected 7 vitals, got %d", len(vitals))
	}
	for i := 1; i < len(vitals); i++ {
		if vitals[i].Timestamp.Before(vitals[i-1].Timestamp) {
			t.Errorf("expected vitals oldest first, got %v after %v", vitals[i].Timestamp, vitals[i-1].Timestamp)
		}
	}
	for i, v := range vitals {
		if v.HeartRate < 72 || v.HeartRate > 92 {
			t.Errorf("vital %d: heart rate %v outside seed range", i, v.HeartRate)
		}
		if v.SleepHours < 6 || v.SleepHours > 9 {
			t.Errorf("vital %d: sleep hours %v outside seed range", i, v.SleepHours)
		}
	}
}

func TestSeeder_SeedTwiceFails(t *testing.T) {
	seeder, _, _ := newTestSeeder()

	if _, err := seeder.Seed(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := seeder.Seed(context.Background(), 1); err == nil {
		t.Error("expected duplicate seed to fail on existing accounts")
	}
}
