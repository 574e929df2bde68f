package patient

import "time"

// Risk levels assignable to a patient profile.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Consultation statuses. Transitions are not validated; a cancelled
// consultation may be rescheduled by overwriting the status.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Patient is an occupational-health profile owned by a user account.
// UserID is a soft reference: it is written once at registration and never
// validated against the user store afterwards.
type Patient struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Age           int            `json:"age"`
	Gender        string         `json:"gender"`
	Department    string         `json:"department"`
	RiskLevel     string         `json:"riskLevel"`
	Vitals        []Vital        `json:"vitals"`
	Consultations []Consultation `json:"consultations"`
}

// Vital is one immutable physiological reading. Vitals are append-only and
// chronological by insertion.
type Vital struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patientId"`
	Timestamp     time.Time `json:"timestamp"`
	HeartRate     float64   `json:"heartRate"`
	BloodPressure string    `json:"bloodPressure"`
	Temperature   float64   `json:"temperature"`
	StressLevel   float64   `json:"stressLevel"`
	SleepHours    float64   `json:"sleepHours"`
}

// Consultation is a scheduled interaction between a patient and a doctor.
// DoctorID is a soft reference, like Patient.UserID.
type Consultation struct {
	ID              string   `json:"id"`
	PatientID       string   `json:"patientId"`
	DoctorID        string   `json:"doctorId"`
	Date            string   `json:"date"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
	Recommendations []string `json:"recommendations"`
}

// Patch enumerates the mutable patient fields. Nil fields are retained;
// unknown JSON keys are dropped at decode time instead of being stored.
type Patch struct {
	Age        *int    `json:"age"`
	Gender     *string `json:"gender"`
	Department *string `json:"department"`
	RiskLevel  *string `json:"riskLevel"`
}

// ConsultationPatch enumerates the mutable consultation fields.
type ConsultationPatch struct {
	DoctorID        *string   `json:"doctorId"`
	Date            *string   `json:"date"`
	Status          *string   `json:"status"`
	Notes           *string   `json:"notes"`
	Recommendations *[]string `json:"recommendations"`
}
