//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"catalog-api/application/services"
	"catalog-api/infrastructure/config"
	"catalog-api/interfaces/http/rest"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideMetrics,
	ProvideTracer,
	ProvideStorage,
	ProvideBrandRepository,
	ProvideCategoryRepository,
	ProvideProductRepository,
	ProvideEventPublisher,
	ProvidePagination,
	ProvideErrorHandler,
	services.NewBrandService,
	services.NewCategoryService,
	services.NewProductService,
	rest.NewRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
