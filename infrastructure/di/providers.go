package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/application/services"
	"catalog-api/infrastructure/config"
	"catalog-api/infrastructure/messaging/eventbridge"
	"catalog-api/infrastructure/persistence/dynamodb"
	"catalog-api/infrastructure/persistence/repositories"
	apperrors "catalog-api/pkg/errors"
	"catalog-api/pkg/observability"
)

const metricsNamespace = "CatalogAPI"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client, pointing it at the local
// endpoint when one is configured
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates the CloudWatch metrics recorder, or nil when
// metrics are disabled
func ProvideMetrics(cfg *config.Config, client *awscloudwatch.Client, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewMetrics(metricsNamespace, client, logger)
}

// ProvideTracer creates the X-Ray tracer, or nil when tracing is disabled
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer("catalog-api")
}

// ProvideStorage creates the single-table storage client
func ProvideStorage(
	client *awsdynamodb.Client,
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
) ports.Storage {
	store := dynamodb.NewStore(client, cfg.DynamoDBTable, logger)
	if metrics != nil {
		store = store.WithMetrics(metrics)
	}
	if tracer != nil {
		store = store.WithTracer(tracer)
	}
	return store
}

// ProvideBrandRepository creates the brand repository
func ProvideBrandRepository(storage ports.Storage, logger *zap.Logger) ports.BrandRepository {
	return repositories.NewBrandRepository(storage, logger)
}

// ProvideCategoryRepository creates the category repository
func ProvideCategoryRepository(storage ports.Storage, logger *zap.Logger) ports.CategoryRepository {
	return repositories.NewCategoryRepository(storage, logger)
}

// ProvideProductRepository creates the product repository
func ProvideProductRepository(
	storage ports.Storage,
	brands ports.BrandRepository,
	categories ports.CategoryRepository,
	logger *zap.Logger,
) ports.ProductRepository {
	return repositories.NewProductRepository(storage, brands, categories, logger)
}

// ProvideEventPublisher creates the catalog event publisher. Publishing is
// disabled when no event bus is configured.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NoopPublisher{}
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvidePagination creates the page-size policy
func ProvidePagination(cfg *config.Config) services.Pagination {
	return services.Pagination{
		DefaultLimit: cfg.DefaultPageSize,
		MaxLimit:     cfg.MaxPageSize,
	}
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *apperrors.ErrorHandler {
	return apperrors.NewErrorHandler(logger, cfg.IsDevelopment())
}
