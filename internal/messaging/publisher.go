package messaging

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// EventType names an activity event; it is also the subject suffix
type EventType string

const (
	EventUserCreated          EventType = "user.created"
	EventVaultCreated         EventType = "vault.created"
	EventVaultUpdated         EventType = "vault.updated"
	EventVaultDeleted         EventType = "vault.deleted"
	EventPaymentCreated       EventType = "payment.created"
	EventPaymentUpdated       EventType = "payment.updated"
	EventPaymentStatusChanged EventType = "payment.status_changed"
	EventPaymentExecuted      EventType = "payment.executed"
	EventPaymentDeleted       EventType = "payment.deleted"
)

// Event is an activity notification. Data never carries signatures or credentials.
type Event struct {
	ID         string                 `json:"id"`
	Type       EventType              `json:"type"`
	OwnerID    string                 `json:"owner_id"`
	SubjectID  string                 `json:"subject_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// NewEvent creates an event with a time-ordered ULID
func NewEvent(eventType EventType, ownerID, subjectID string, occurredAt time.Time, data map[string]interface{}) *Event {
	return &Event{
		ID:         ulid.MustNewDefault(occurredAt).String(),
		Type:       eventType,
		OwnerID:    ownerID,
		SubjectID:  subjectID,
		OccurredAt: occurredAt.UTC(),
		Data:       data,
	}
}

// Publisher publishes activity events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Publish enqueues an event; delivery is best effort
	Publish(ctx context.Context, event *Event) error
	// Close flushes pending events and closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that discards every event
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, *Event) error { return nil }

func (noopPublisher) Close() {}
