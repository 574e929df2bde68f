// Package assistant implements the scripted health chat. Replies come from
// a keyword classifier, not a model; every exchange is logged as an action
// so dashboards can show chat history per patient.
package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Action is the append-only log record of one chat exchange.
type Action struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patientId"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// Responder produces a reply to a patient message. The script engine below
// is the only implementation today; a real inference backend can be swapped
// in behind this interface without touching the rest of the system.
type Responder interface {
	Respond(ctx context.Context, message string) string
}

// Chat reply scripts, matched case-insensitively in priority order. The
// first matching keyword wins; a message mentioning both stress and sleep
// gets the stress script.
const (
	stressScript   = "I notice you mentioned stress. Try these techniques: deep breathing exercises, 10-minute meditation, or a short walk. Would you like specific guidance?"
	sleepScript    = "Sleep is crucial for health. Aim for 7-9 hours. Try maintaining a consistent sleep schedule and avoiding screens 1 hour before bed."
	exerciseScript = "Great! Regular exercise improves both physical and mental health. Aim for 150 minutes of moderate activity per week. What type of exercise do you prefer?"
	deferralScript = "Thank you for sharing. Based on your vitals and health data, I recommend consulting with your doctor for personalized advice."
)

// ScriptResponder classifies messages by keyword and returns a fixed script.
type ScriptResponder struct{}

func (ScriptResponder) Respond(_ context.Context, message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "stress"):
		return stressScript
	case strings.Contains(lower, "sleep"):
		return sleepScript
	case strings.Contains(lower, "exercise"):
		return exerciseScript
	default:
		return deferralScript
	}
}

const defaultMaxActions = 1000

// Engine pairs a Responder with the action log.
type Engine struct {
	responder  Responder
	mu         sync.RWMutex
	actions    []Action
	maxActions int
}

func NewEngine(responder Responder) *Engine {
	return &Engine{
		responder:  responder,
		maxActions: defaultMaxActions,
	}
}

// Chat produces a reply for the message and records the exchange.
func (e *Engine) Chat(ctx context.Context, patientID, message string) (string, Action) {
	reply := e.responder.Respond(ctx, message)

	action := Action{
		ID:        uuid.New().String(),
		PatientID: patientID,
		Action:    "Chat: " + message,
		Timestamp: time.Now().UTC(),
		Status:    StatusCompleted,
	}

	e.mu.Lock()
	if len(e.actions) >= e.maxActions {
		// Ring buffer: remove oldest
		e.actions = e.actions[1:]
	}
	e.actions = append(e.actions, action)
	e.mu.Unlock()

	return reply, action
}

// ListActions returns the logged exchanges for a patient in insertion order.
func (e *Engine) ListActions(patientID string) []Action {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := []Action{}
	for _, a := range e.actions {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result
}
