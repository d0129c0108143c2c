// Package di wires the application together. wire.go holds the provider
// set; wire_gen.go is generated with `wire ./infrastructure/di`.
package di

import (
	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/application/services"
	"catalog-api/infrastructure/config"
	"catalog-api/interfaces/http/rest"
	apperrors "catalog-api/pkg/errors"
	"catalog-api/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	Storage         ports.Storage
	BrandRepo       ports.BrandRepository
	CategoryRepo    ports.CategoryRepository
	ProductRepo     ports.ProductRepository
	EventPublisher  ports.EventPublisher
	Metrics         *observability.Metrics
	Tracer          *observability.Tracer
	ErrorHandler    *apperrors.ErrorHandler
	BrandService    *services.BrandService
	CategoryService *services.CategoryService
	ProductService  *services.ProductService
	Router          *rest.Router
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
