package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metrics records storage-call latency and errors as CloudWatch metrics.
// Recording is best-effort and never fails the instrumented call.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
	logger    *zap.Logger
}

// NewMetrics creates a metrics recorder publishing under the given namespace
func NewMetrics(namespace string, client *cloudwatch.Client, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// RecordStoreCall records one storage operation: its duration and whether it
// failed
func (m *Metrics) RecordStoreCall(ctx context.Context, operation string, duration time.Duration, callErr error) {
	if m == nil || m.client == nil {
		return
	}

	dims := []types.Dimension{
		{Name: aws.String("Operation"), Value: aws.String(operation)},
	}

	data := []types.MetricDatum{
		{
			MetricName: aws.String("StoreCallDuration"),
			Dimensions: dims,
			Unit:       types.StandardUnitMilliseconds,
			Value:      aws.Float64(float64(duration.Milliseconds())),
		},
	}

	if callErr != nil {
		data = append(data, types.MetricDatum{
			MetricName: aws.String("StoreCallErrors"),
			Dimensions: dims,
			Unit:       types.StandardUnitCount,
			Value:      aws.Float64(1),
		})
	}

	putCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	_, err := m.client.PutMetricData(putCtx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: data,
	})
	if err != nil {
		m.logger.Debug("Failed to publish store metrics",
			zap.Error(err),
			zap.String("operation", operation),
		)
	}
}
