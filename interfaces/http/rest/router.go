// Package rest wires the chi router: middleware stack, CORS, health
// endpoints and the /api/v1 catalog routes.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"catalog-api/application/services"
	"catalog-api/infrastructure/config"
	"catalog-api/interfaces/http/rest/handlers"
	"catalog-api/interfaces/http/rest/middleware"
	apperrors "catalog-api/pkg/errors"
)

// Router creates and configures the HTTP router
type Router struct {
	brands       *services.BrandService
	categories   *services.CategoryService
	products     *services.ProductService
	errorHandler *apperrors.ErrorHandler
	cfg          *config.Config
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	brands *services.BrandService,
	categories *services.CategoryService,
	products *services.ProductService,
	errorHandler *apperrors.ErrorHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		brands:       brands,
		categories:   categories,
		products:     products,
		errorHandler: errorHandler,
		cfg:          cfg,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(rt.errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			brandHandler := handlers.NewBrandHandler(rt.brands, rt.errorHandler, rt.logger)
			r.Post("/", brandHandler.Create)
			r.Get("/", brandHandler.List)
			r.Get("/{brandID}", brandHandler.Get)
			r.Put("/{brandID}", brandHandler.Update)
			r.Delete("/{brandID}", brandHandler.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			categoryHandler := handlers.NewCategoryHandler(rt.categories, rt.errorHandler, rt.logger)
			r.Post("/", categoryHandler.Create)
			r.Get("/", categoryHandler.List)
			r.Get("/{categoryID}", categoryHandler.Get)
			r.Put("/{categoryID}", categoryHandler.Update)
			r.Delete("/{categoryID}", categoryHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			productHandler := handlers.NewProductHandler(rt.products, rt.errorHandler, rt.logger)
			r.Post("/", productHandler.Create)
			r.Get("/", productHandler.List)
			r.Get("/by-brand/{brandID}", productHandler.ListByBrand)
			r.Get("/by-category/{categoryID}", productHandler.ListByCategory)
			r.Get("/{productID}", productHandler.Get)
			r.Put("/{productID}", productHandler.Update)
			r.Patch("/{productID}/stock", productHandler.UpdateStock)
			r.Delete("/{productID}", productHandler.Delete)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
