// Package health computes derived health signals (threshold alerts,
// recommendations, and rolling summaries) from already-fetched patient
// data. Every function here is pure; storage stays in the patient domain.
package health

import (
	"math"
	"time"

	"github.com/praana/praana-care/internal/domain/patient"
)

// Alert thresholds. Strict inequalities, not configurable.
const (
	heartRateAlertAbove = 100.0
	stressAlertAbove    = 80.0
	sleepAlertBelow     = 6.0
)

// Alert messages, emitted in fixed check order.
const (
	AlertHighHeartRate     = "High heart rate detected"
	AlertHighStress        = "High stress level"
	AlertInsufficientSleep = "Insufficient sleep"
)

// summaryWindow is the number of most recent vitals a summary averages over.
const summaryWindow = 7

// DeriveAlerts returns the threshold alerts triggered by a single reading.
// Several alerts may fire at once; the order is heart rate, stress, sleep.
func DeriveAlerts(v patient.Vital) []string {
	alerts := []string{}
	if v.HeartRate > heartRateAlertAbove {
		alerts = append(alerts, AlertHighHeartRate)
	}
	if v.StressLevel > stressAlertAbove {
		alerts = append(alerts, AlertHighStress)
	}
	if v.SleepHours < sleepAlertBelow {
		alerts = append(alerts, AlertInsufficientSleep)
	}
	return alerts
}

// DeriveRecommendations produces guidance for a patient: risk-level driven
// entries first, then entries derived from the most recent vital, if any.
func DeriveRecommendations(p *patient.Patient) []string {
	recommendations := []string{}

	if p.RiskLevel == patient.RiskHigh {
		recommendations = append(recommendations,
			"Schedule urgent consultation with doctor",
			"Increase health monitoring frequency",
		)
	}

	if len(p.Vitals) > 0 {
		latest := p.Vitals[len(p.Vitals)-1]
		if latest.StressLevel > stressAlertAbove {
			recommendations = append(recommendations, "Practice stress management techniques")
		}
		if latest.SleepHours < sleepAlertBelow {
			recommendations = append(recommendations, "Improve sleep hygiene")
		}
	}

	return recommendations
}

// Summary is a rolling aggregate over a patient's recent vitals. When the
// patient has no vitals the averages and LastVitalUpdate are nil rather
// than NaN, and are omitted from the JSON encoding.
type Summary struct {
	PatientID          string     `json:"patientId"`
	RiskLevel          string     `json:"riskLevel"`
	AvgHeartRate       *int       `json:"avgHeartRate,omitempty"`
	AvgStress          *int       `json:"avgStress,omitempty"`
	AvgSleep           *float64   `json:"avgSleep,omitempty"`
	TotalConsultations int        `json:"totalConsultations"`
	LastVitalUpdate    *time.Time `json:"lastVitalUpdate,omitempty"`
}

// Summarize aggregates the last seven (or fewer) vitals of a patient.
// Averages are arithmetic means: heart rate and stress rounded to the
// nearest integer, sleep hours to one decimal.
func Summarize(p *patient.Patient) Summary {
	s := Summary{
		PatientID:          p.ID,
		RiskLevel:          p.RiskLevel,
		TotalConsultations: len(p.Consultations),
	}

	window := p.Vitals
	if len(window) > summaryWindow {
		window = window[len(window)-summaryWindow:]
	}
	if len(window) == 0 {
		return s
	}

	var sumHeartRate, sumStress, sumSleep float64
	for _, v := range window {
		sumHeartRate += v.HeartRate
		sumStress += v.StressLevel
		sumSleep += v.SleepHours
	}
	n := float64(len(window))

	avgHeartRate := int(math.Round(sumHeartRate / n))
	avgStress := int(math.Round(sumStress / n))
	avgSleep := math.Round(sumSleep/n*10) / 10
	last := window[len(window)-1].Timestamp

	s.AvgHeartRate = &avgHeartRate
	s.AvgStress = &avgStress
	s.AvgSleep = &avgSleep
	s.LastVitalUpdate = &last
	return s
}
