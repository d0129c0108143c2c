package services

import (
	"context"

	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/domain/catalog"
	"catalog-api/domain/events"
	"catalog-api/pkg/common"
	apperrors "catalog-api/pkg/errors"
)

// ProductService orchestrates product operations and emits catalog events
// for downstream consumers. Event publishing is best-effort and never fails
// the originating request.
type ProductService struct {
	repo       ports.ProductRepository
	publisher  ports.EventPublisher
	pagination Pagination
	logger     *zap.Logger
}

// NewProductService creates the product application service
func NewProductService(repo ports.ProductRepository, publisher ports.EventPublisher, pagination Pagination, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:       repo,
		publisher:  publisher,
		pagination: pagination,
		logger:     logger,
	}
}

// Create trims and stores a new product
func (s *ProductService) Create(ctx context.Context, input ports.NewProductInput) (ports.Item, error) {
	input.Name = trim(input.Name)
	input.Description = trim(input.Description)

	item, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	productID, _ := item["product_id"].(string)
	publish(ctx, s.publisher, s.logger,
		events.NewProductCreated(productID, input.BrandID, input.CategoryID, input.Price))
	return item, nil
}

// Get returns a product by id
func (s *ProductService) Get(ctx context.Context, id string) (ports.Item, error) {
	if err := catalog.ValidateEntityID("Product", id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id string, fields catalog.UpdateProductFields) (ports.Item, error) {
	if err := catalog.ValidateEntityID("Product", id); err != nil {
		return nil, err
	}
	fields.Name = trimPtr(fields.Name)
	fields.Description = trimPtr(fields.Description)

	item, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if fields.StockQuantity != nil {
		publish(ctx, s.publisher, s.logger, events.NewStockChanged(id, *fields.StockQuantity))
	}
	return item, nil
}

// UpdateStock sets a product's stock quantity to an absolute value
func (s *ProductService) UpdateStock(ctx context.Context, id string, quantity int) (ports.Item, error) {
	if err := catalog.ValidateEntityID("Product", id); err != nil {
		return nil, err
	}
	if err := catalog.ValidateStockQuantity(quantity); err != nil {
		return nil, err
	}

	item, err := s.repo.Update(ctx, id, catalog.UpdateProductFields{StockQuantity: &quantity})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.NewStockChanged(id, quantity))
	return item, nil
}

// AdjustStock changes a product's stock quantity by a signed delta, reading
// the current quantity first. The read and the write are separate store
// calls, so concurrent adjustments can lose updates.
func (s *ProductService) AdjustStock(ctx context.Context, id string, delta int) (ports.Item, error) {
	if err := catalog.ValidateEntityID("Product", id); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	quantity := stockQuantity(current) + delta
	if quantity < 0 {
		return nil, apperrors.NewValidationError("Stock quantity cannot be negative after adjustment")
	}
	if err := catalog.ValidateStockQuantity(quantity); err != nil {
		return nil, err
	}

	item, err := s.repo.Update(ctx, id, catalog.UpdateProductFields{StockQuantity: &quantity})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.NewStockChanged(id, quantity))
	return item, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := catalog.ValidateEntityID("Product", id); err != nil {
		return err
	}
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError("Product not found")
	}

	publish(ctx, s.publisher, s.logger, events.NewProductDeleted(id))
	return nil
}

// List returns one page of products ordered by name
func (s *ProductService) List(ctx context.Context, params common.ListParams) (common.ListResult, error) {
	page, err := s.repo.List(ctx, s.pagination.Clamp(params.Limit), params.NextToken)
	if err != nil {
		return common.ListResult{}, err
	}
	return toListResult(page), nil
}

// ListByBrand returns one page of a brand's products
func (s *ProductService) ListByBrand(ctx context.Context, brandID string, params common.ListParams) (common.ListResult, error) {
	if err := catalog.ValidateEntityID("Brand", brandID); err != nil {
		return common.ListResult{}, err
	}
	page, err := s.repo.ListByBrand(ctx, brandID, s.pagination.Clamp(params.Limit), params.NextToken)
	if err != nil {
		return common.ListResult{}, err
	}
	return toListResult(page), nil
}

// ListByCategory returns one page of a category's products
func (s *ProductService) ListByCategory(ctx context.Context, categoryID string, params common.ListParams) (common.ListResult, error) {
	if err := catalog.ValidateEntityID("Category", categoryID); err != nil {
		return common.ListResult{}, err
	}
	page, err := s.repo.ListByCategory(ctx, categoryID, s.pagination.Clamp(params.Limit), params.NextToken)
	if err != nil {
		return common.ListResult{}, err
	}
	return toListResult(page), nil
}

// stockQuantity reads the current stock attribute off a product item
func stockQuantity(item ports.Item) int {
	switch v := item["stock_quantity"].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
