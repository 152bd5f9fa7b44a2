package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the kinds of events this service emits
type EventType string

const (
	EventResultsCalculated  EventType = "results.calculated"
	EventResultsInvalidated EventType = "results.invalidated"
)

const (
	EventSource  = "sat-results-service"
	EventVersion = "1.0"
)

// Event is the envelope shared by every published event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// ResultsCalculatedEvent is emitted after a full report is computed for an attempt.
type ResultsCalculatedEvent struct {
	AttemptID            string    `json:"attempt_id"`
	UserID               string    `json:"user_id"`
	TotalScore           int       `json:"total_score"`
	EvidenceBasedReading int       `json:"evidence_based_reading"`
	MathScore            int       `json:"math_score"`
	AccuracyRate         float64   `json:"accuracy_rate"`
	ScoreImprovement     *int      `json:"score_improvement,omitempty"`
	WeaknessAreas        []string  `json:"weakness_areas"`
	CalculatedAt         time.Time `json:"calculated_at"`
}

// ResultsInvalidatedEvent is emitted when a cached report is dropped.
type ResultsInvalidatedEvent struct {
	AttemptID     string    `json:"attempt_id"`
	InvalidatedAt time.Time `json:"invalidated_at"`
}

// NewEvent wraps data in an envelope with a fresh ID and timestamp.
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		ID:        GenerateEventID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    EventSource,
		Version:   EventVersion,
		Data:      data,
	}
}

func GenerateEventID() string {
	return uuid.NewString()
}
