// Package services holds the application services orchestrating the entity
// repositories: input trimming, page-size clamping, stock adjustment rules
// and best-effort event publishing.
package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/domain/events"
	"catalog-api/pkg/common"
)

// Pagination carries the page-size policy applied to listing operations
type Pagination struct {
	DefaultLimit int32
	MaxLimit     int32
}

// DefaultPagination is used when no policy is configured
var DefaultPagination = Pagination{DefaultLimit: 50, MaxLimit: 100}

// Clamp resolves a requested page size against the policy: zero or negative
// falls back to the default, anything above the cap is reduced to it.
func (p Pagination) Clamp(limit int32) int32 {
	if p.DefaultLimit <= 0 {
		p = DefaultPagination
	}
	if limit <= 0 {
		return p.DefaultLimit
	}
	if limit > p.MaxLimit {
		return p.MaxLimit
	}
	return limit
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// toListResult converts a query page into the listing response shape
func toListResult(page ports.QueryPage) common.ListResult {
	items := make([]map[string]interface{}, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, item)
	}
	return common.NewListResult(items, page.NextToken)
}

// publish sends a catalog event without letting a publish failure propagate
// into the originating request
func publish(ctx context.Context, publisher ports.EventPublisher, logger *zap.Logger, event events.CatalogEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("event publish failed",
			zap.String("event_type", event.EventType()),
			zap.Error(err))
	}
}
