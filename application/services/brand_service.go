package services

import (
	"context"

	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/domain/catalog"
	"catalog-api/pkg/common"
	apperrors "catalog-api/pkg/errors"
)

// BrandService orchestrates brand operations
type BrandService struct {
	repo       ports.BrandRepository
	pagination Pagination
	logger     *zap.Logger
}

// NewBrandService creates the brand application service
func NewBrandService(repo ports.BrandRepository, pagination Pagination, logger *zap.Logger) *BrandService {
	return &BrandService{
		repo:       repo,
		pagination: pagination,
		logger:     logger,
	}
}

// Create trims and stores a new brand
func (s *BrandService) Create(ctx context.Context, name, description, website string) (ports.Item, error) {
	return s.repo.Create(ctx, trim(name), trim(description), trim(website))
}

// Get returns a brand by id
func (s *BrandService) Get(ctx context.Context, id string) (ports.Item, error) {
	if err := catalog.ValidateEntityID("Brand", id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Update applies a partial update to a brand
func (s *BrandService) Update(ctx context.Context, id string, fields catalog.UpdateBrandFields) (ports.Item, error) {
	if err := catalog.ValidateEntityID("Brand", id); err != nil {
		return nil, err
	}
	fields.Name = trimPtr(fields.Name)
	fields.Description = trimPtr(fields.Description)
	fields.Website = trimPtr(fields.Website)
	return s.repo.Update(ctx, id, fields)
}

// Delete removes a brand
func (s *BrandService) Delete(ctx context.Context, id string) error {
	if err := catalog.ValidateEntityID("Brand", id); err != nil {
		return err
	}
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError("Brand not found")
	}
	return nil
}

// List returns one page of brands ordered by name
func (s *BrandService) List(ctx context.Context, params common.ListParams) (common.ListResult, error) {
	page, err := s.repo.List(ctx, s.pagination.Clamp(params.Limit), params.NextToken)
	if err != nil {
		return common.ListResult{}, err
	}
	return toListResult(page), nil
}
