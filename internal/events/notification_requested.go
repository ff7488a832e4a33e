package events

import "time"

const (
	EventTypeNotificationRequested = "NotificationRequested"
	notificationRequestedSchema    = "contracts/events/notification/NotificationRequested.v1.payload.schema.json"
)

type NotificationChannel string

const (
	NotificationEmail NotificationChannel = "email"
	NotificationSMS   NotificationChannel = "sms"
)

// NotificationRequested asks a delivery worker to send one message.
type NotificationRequested struct {
	Channel     NotificationChannel `json:"channel"`
	To          string              `json:"to"`
	Subject     string              `json:"subject,omitempty"`
	Body        string              `json:"body"`
	RequestedAt time.Time           `json:"requestedAt"`
}

type NotificationRequestedEvent = EventEnvelope[NotificationRequested]

func routingKeyFor(c NotificationChannel) string {
	if c == NotificationSMS {
		return SMSNotificationRoutingKey
	}
	return EmailNotificationRoutingKey
}
