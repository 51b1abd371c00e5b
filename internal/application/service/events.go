package service

import "context"

const (
	EventTypeCreated = "created"
	EventTypeUpdated = "updated"
	EventTypeDeleted = "deleted"
)

type ContentEvent struct {
	EventType  string `json:"event_type"`
	Resource   string `json:"resource"`
	ResourceID string `json:"resource_id"`
}

type MediaEvent struct {
	EventType string `json:"event_type"`
	PublicID  string `json:"public_id"`
	URL       string `json:"url,omitempty"`
}

type EventPublisher interface {
	PublishContentEvent(ctx context.Context, payload ContentEvent) error
	PublishMediaEvent(ctx context.Context, payload MediaEvent) error
}
