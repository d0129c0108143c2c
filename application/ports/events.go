package ports

import (
	"context"

	"catalog-api/domain/events"
)

// EventPublisher publishes catalog events to the event bus. Publishing is
// best-effort: a failed publish never fails the originating request.
type EventPublisher interface {
	Publish(ctx context.Context, event events.CatalogEvent) error
}
