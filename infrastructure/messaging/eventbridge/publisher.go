// Package eventbridge publishes catalog events to an EventBridge bus.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"catalog-api/domain/events"
	apperrors "catalog-api/pkg/errors"
)

const eventSource = "catalog-api"

// Publisher sends catalog events to one event bus
type Publisher struct {
	client  *awseventbridge.Client
	busName string
	logger  *zap.Logger
}

// NewPublisher creates an EventBridge publisher for the given bus
func NewPublisher(client *awseventbridge.Client, busName string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

// Publish sends one event, using its event type as the detail type
func (p *Publisher) Publish(ctx context.Context, event events.CatalogEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return apperrors.NewInternalError("failed to encode event").WithCause(err)
	}

	out, err := p.client.PutEvents(ctx, &awseventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.busName),
				Source:       aws.String(eventSource),
				DetailType:   aws.String(event.EventType()),
				Detail:       aws.String(string(detail)),
			},
		},
	})
	if err != nil {
		return apperrors.NewDatabaseError("put_events", err)
	}
	if out.FailedEntryCount > 0 {
		return apperrors.NewDatabaseError("put_events",
			fmt.Errorf("%d event entries failed", out.FailedEntryCount))
	}

	p.logger.Debug("event published",
		zap.String("event_type", event.EventType()),
		zap.String("event_bus", p.busName))
	return nil
}

// NoopPublisher discards events. It stands in when no event bus is
// configured.
type NoopPublisher struct{}

// Publish discards the event
func (NoopPublisher) Publish(context.Context, events.CatalogEvent) error {
	return nil
}
