package events

import (
	"errors"
	"fmt"
	"time"
)

// EventEnvelope is the common envelope for all events, typed by payload.
type EventEnvelope[T any] struct {
	EventName     string    `json:"eventName"`
	EventVersion  int       `json:"eventVersion"`
	EventID       string    `json:"eventId"`
	CorrelationID string    `json:"correlationId,omitempty"`
	CausationID   string    `json:"causationId,omitempty"`
	Producer      string    `json:"producer"`
	PartitionKey  string    `json:"partitionKey"`
	OccurredAt    time.Time `json:"occurredAt"`
	Schema        string    `json:"schema"`
	Payload       T         `json:"payload"`
}

// Validate checks the event identity and that every field a consumer routes
// or deduplicates on is present. All problems are reported together.
func (e EventEnvelope[T]) Validate(expectedName string, expectedVersion int) error {
	var errs []error
	if e.EventName != expectedName {
		errs = append(errs, fmt.Errorf("unexpected eventName: %s", e.EventName))
	}
	if e.EventVersion != expectedVersion {
		errs = append(errs, fmt.Errorf("unexpected eventVersion: %d", e.EventVersion))
	}
	for _, f := range []struct{ name, value string }{
		{"eventId", e.EventID},
		{"partitionKey", e.PartitionKey},
		{"producer", e.Producer},
		{"schema", e.Schema},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("missing %s", f.name))
		}
	}
	if e.OccurredAt.IsZero() {
		errs = append(errs, errors.New("missing occurredAt"))
	}
	return errors.Join(errs...)
}
