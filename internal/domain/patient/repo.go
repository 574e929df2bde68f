package patient

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no patient matches the lookup key.
	ErrNotFound = errors.New("patient not found")
	// ErrConsultationNotFound is returned when no consultation matches the id.
	ErrConsultationNotFound = errors.New("consultation not found")
)

// Repository is the storage contract for patient profiles and their owned
// vital and consultation sequences.
type Repository interface {
	CreateProfile(ctx context.Context, userID string) (*Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	GetByUserID(ctx context.Context, userID string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Update(ctx context.Context, id string, patch Patch) (*Patient, error)

	// AppendVital assigns the vital's id and timestamp and appends it to the
	// global sequence and the owning patient's sequence in one atomic step.
	AppendVital(ctx context.Context, patientID string, v Vital) (*Vital, error)
	ListVitalsByPatient(ctx context.Context, patientID string) ([]Vital, error)

	CreateConsultation(ctx context.Context, c Consultation) (*Consultation, error)
	ListConsultationsByPatient(ctx context.Context, patientID string) ([]Consultation, error)
	UpdateConsultation(ctx context.Context, id string, patch ConsultationPatch) (*Consultation, error)
}
