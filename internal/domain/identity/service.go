package identity

import (
	"context"
	"fmt"

	"github.com/praana/praana-care/internal/domain/patient"
)

// PatientProfiles is the slice of the patient domain the identity service
// needs: creating an empty profile at registration and resolving the
// profile attached to a patient-role account at login.
type PatientProfiles interface {
	CreateProfile(ctx context.Context, userID string) (*patient.Patient, error)
	GetPatientByUserID(ctx context.Context, userID string) (*patient.Patient, error)
}

type Service struct {
	users    UserRepository
	profiles PatientProfiles
}

func NewService(users UserRepository, profiles PatientProfiles) *Service {
	return &Service{users: users, profiles: profiles}
}

var validRoles = map[string]bool{
	RolePatient: true, RoleDoctor: true, RoleEmployer: true,
}

// Register creates a user and, for patient-role accounts, an empty patient
// profile owned by it.
func (s *Service) Register(ctx context.Context, email, password, name, role string) (*User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if !validRoles[role] {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	u := &User{Email: email, Password: password, Name: name, Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if role == RolePatient {
		if _, err := s.profiles.CreateProfile(ctx, u.ID); err != nil {
			return nil, fmt.Errorf("create patient profile: %w", err)
		}
	}
	return u, nil
}

// Login resolves a user by exact email+password match. For patient-role
// accounts the owned profile is returned alongside the user; for other
// roles the profile is nil.
func (s *Service) Login(ctx context.Context, email, password string) (*User, *patient.Patient, error) {
	u, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	var profile *patient.Patient
	if u.Role == RolePatient {
		// A missing profile is not a login failure; the account simply has
		// no attached data yet.
		profile, _ = s.profiles.GetPatientByUserID(ctx, u.ID)
	}
	return u, profile, nil
}

// GetUser resolves a user by id, used by the token identity middleware.
func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.users.GetByID(ctx, id)
}
