package services

import (
	"context"

	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/domain/catalog"
	"catalog-api/pkg/common"
	apperrors "catalog-api/pkg/errors"
)

// CategoryService orchestrates category operations
type CategoryService struct {
	repo       ports.CategoryRepository
	pagination Pagination
	logger     *zap.Logger
}

// NewCategoryService creates the category application service
func NewCategoryService(repo ports.CategoryRepository, pagination Pagination, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:       repo,
		pagination: pagination,
		logger:     logger,
	}
}

// Create trims and stores a new category
func (s *CategoryService) Create(ctx context.Context, name, description string) (ports.Item, error) {
	return s.repo.Create(ctx, trim(name), trim(description))
}

// Get returns a category by id
func (s *CategoryService) Get(ctx context.Context, id string) (ports.Item, error) {
	if err := catalog.ValidateEntityID("Category", id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Update applies a partial update to a category
func (s *CategoryService) Update(ctx context.Context, id string, fields catalog.UpdateCategoryFields) (ports.Item, error) {
	if err := catalog.ValidateEntityID("Category", id); err != nil {
		return nil, err
	}
	fields.Name = trimPtr(fields.Name)
	fields.Description = trimPtr(fields.Description)
	return s.repo.Update(ctx, id, fields)
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := catalog.ValidateEntityID("Category", id); err != nil {
		return err
	}
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError("Category not found")
	}
	return nil
}

// List returns one page of categories ordered by name
func (s *CategoryService) List(ctx context.Context, params common.ListParams) (common.ListResult, error) {
	page, err := s.repo.List(ctx, s.pagination.Clamp(params.Limit), params.NextToken)
	if err != nil {
		return common.ListResult{}, err
	}
	return toListResult(page), nil
}
