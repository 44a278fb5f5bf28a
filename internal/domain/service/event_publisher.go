package service

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CatalogEventType names a catalog mutation.
type CatalogEventType string

const (
	CatalogEventServiceCreated CatalogEventType = "service.created"
	CatalogEventServiceUpdated CatalogEventType = "service.updated"
	CatalogEventServiceDeleted CatalogEventType = "service.deleted"
)

// CatalogEvent represents a listing change to be processed by the catalog worker
type CatalogEvent struct {
	RequestID      string           `json:"request_id,omitempty"` // For distributed tracing
	Type           CatalogEventType `json:"type"`
	ServiceID      string           `json:"service_id"`
	SubCategoryID  string           `json:"sub_category_id,omitempty"`
	ServiceName    string           `json:"service_name,omitempty"`
	Status         string           `json:"status,omitempty"`
	PreviousStatus string           `json:"previous_status,omitempty"`
	Thumbnail      string           `json:"thumbnail,omitempty"`
	Unpriced       bool             `json:"unpriced,omitempty"`
}

// BecamePublished reports whether the event moved a listing into the Published state.
func (e *CatalogEvent) BecamePublished() bool {
	if e.Type == CatalogEventServiceDeleted {
		return false
	}

	published := string(entity.ServiceStatusPublished)

	return e.Status == published && e.PreviousStatus != published
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog event for async processing
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
