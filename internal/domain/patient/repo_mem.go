package patient

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemRepo is the in-process store backing the patient domain. A single
// RWMutex guards every sequence, so the dual append of a vital (global list
// plus the owning patient's list) is never observable half-applied.
type MemRepo struct {
	mu            sync.RWMutex
	patients      map[string]*Patient
	order         []string // preserve insertion order
	vitals        []Vital
	consultations []Consultation
}

// NewMemRepo creates an empty in-memory patient store.
func NewMemRepo() *MemRepo {
	return &MemRepo{
		patients: make(map[string]*Patient),
	}
}

func (r *MemRepo) CreateProfile(_ context.Context, userID string) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &Patient{
		ID:            uuid.New().String(),
		UserID:        userID,
		RiskLevel:     RiskLow,
		Vitals:        []Vital{},
		Consultations: []Consultation{},
	}
	r.patients[p.ID] = p
	r.order = append(r.order, p.ID)
	return copyPatient(p), nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyPatient(p), nil
}

func (r *MemRepo) GetByUserID(_ context.Context, userID string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.patients[id]; p.UserID == userID {
			return copyPatient(p), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Patient, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, copyPatient(r.patients[id]))
	}
	return out, nil
}

func (r *MemRepo) Update(_ context.Context, id string, patch Patch) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Department != nil {
		p.Department = *patch.Department
	}
	if patch.RiskLevel != nil {
		p.RiskLevel = *patch.RiskLevel
	}
	return copyPatient(p), nil
}

func (r *MemRepo) AppendVital(_ context.Context, patientID string, v Vital) (*Vital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[patientID]
	if !ok {
		return nil, ErrNotFound
	}
	v.ID = uuid.New().String()
	v.PatientID = patientID
	// Seeded readings arrive backdated; everything else gets the server clock.
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now().UTC()
	}

	r.vitals = append(r.vitals, v)
	p.Vitals = append(p.Vitals, v)

	stored := v
	return &stored, nil
}

func (r *MemRepo) ListVitalsByPatient(_ context.Context, patientID string) ([]Vital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Vital{}
	for _, v := range r.vitals {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *MemRepo) CreateConsultation(_ context.Context, c Consultation) (*Consultation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.New().String()
	c.Status = StatusScheduled
	c.Recommendations = []string{}

	r.consultations = append(r.consultations, c)
	// A consultation referencing an unknown patient is still recorded in the
	// global sequence; only the per-patient append is skipped.
	if p, ok := r.patients[c.PatientID]; ok {
		p.Consultations = append(p.Consultations, c)
	}

	stored := c
	return &stored, nil
}

func (r *MemRepo) ListConsultationsByPatient(_ context.Context, patientID string) ([]Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Consultation{}
	for _, c := range r.consultations {
		if c.PatientID == patientID {
			out = append(out, copyConsultation(c))
		}
	}
	return out, nil
}

func (r *MemRepo) UpdateConsultation(_ context.Context, id string, patch ConsultationPatch) (*Consultation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.consultations {
		if r.consultations[i].ID != id {
			continue
		}
		applyConsultationPatch(&r.consultations[i], patch)
		updated := copyConsultation(r.consultations[i])

		// Keep the owning patient's embedded copy in sync.
		if p, ok := r.patients[updated.PatientID]; ok {
			for j := range p.Consultations {
				if p.Consultations[j].ID == id {
					p.Consultations[j] = copyConsultation(updated)
					break
				}
			}
		}
		result := copyConsultation(updated)
		return &result, nil
	}
	return nil, ErrConsultationNotFound
}

func applyConsultationPatch(c *Consultation, patch ConsultationPatch) {
	if patch.DoctorID != nil {
		c.DoctorID = *patch.DoctorID
	}
	if patch.Date != nil {
		c.Date = *patch.Date
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.Recommendations != nil {
		c.Recommendations = append([]string{}, (*patch.Recommendations)...)
	}
}

// copyPatient returns a deep copy so callers never alias store-owned slices.
func copyPatient(p *Patient) *Patient {
	cp := *p
	cp.Vitals = append([]Vital{}, p.Vitals...)
	cp.Consultations = make([]Consultation, 0, len(p.Consultations))
	for _, c := range p.Consultations {
		cp.Consultations = append(cp.Consultations, copyConsultation(c))
	}
	return &cp
}

func copyConsultation(c Consultation) Consultation {
	cp := c
	cp.Recommendations = append([]string{}, c.Recommendations...)
	return cp
}
