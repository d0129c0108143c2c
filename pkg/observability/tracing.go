package observability

import (
	"context"
	"fmt"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer wraps X-Ray subsegment creation around storage calls
type Tracer struct {
	serviceName string
}

// NewTracer creates a new tracer instance
func NewTracer(serviceName string) *Tracer {
	return &Tracer{serviceName: serviceName}
}

// TraceCall wraps a storage call in a subsegment named after the operation.
// Outside of a sampled request the wrapped function runs untraced.
func (t *Tracer) TraceCall(ctx context.Context, operation string, fn func(context.Context) error) error {
	if t == nil || xray.GetSegment(ctx) == nil {
		return fn(ctx)
	}

	return xray.Capture(ctx, fmt.Sprintf("%s.%s", t.serviceName, operation), func(ctx context.Context) error {
		return fn(ctx)
	})
}

// AddAnnotation adds an indexed annotation to the current segment
func (t *Tracer) AddAnnotation(ctx context.Context, key, value string) {
	if seg := xray.GetSegment(ctx); seg != nil {
		seg.AddAnnotation(key, value)
	}
}
