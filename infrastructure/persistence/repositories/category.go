package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/domain/catalog"
	"catalog-api/infrastructure/persistence/schema"
	apperrors "catalog-api/pkg/errors"
	"catalog-api/pkg/utils"
)

// CategoryRepository persists category entities
type CategoryRepository struct {
	store  ports.Storage
	logger *zap.Logger
}

// NewCategoryRepository creates a category repository over the given store
func NewCategoryRepository(store ports.Storage, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		store:  store,
		logger: logger,
	}
}

// Create validates and stores a new category, enforcing case-insensitive
// name uniqueness across categories
func (r *CategoryRepository) Create(ctx context.Context, name, description string) (ports.Item, error) {
	if err := catalog.ValidateCategoryName(name); err != nil {
		return nil, err
	}
	if err := catalog.ValidateCategoryDescription(description); err != nil {
		return nil, err
	}

	exists, err := nameExists(ctx, r.store, schema.CategoryListPartition, name, "category_id", "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("Category with name '%s' already exists", name))
	}

	categoryID := uuid.NewString()
	item := schema.NewCategoryItem(categoryID, name, description, utils.NowUTC())

	if err := r.store.Put(ctx, item, ports.PutOptions{IfNotExists: true}); err != nil {
		return nil, err
	}

	r.logger.Info("category created", zap.String("category_id", categoryID), zap.String("name", name))
	return item, nil
}

// Get returns a category by id
func (r *CategoryRepository) Get(ctx context.Context, id string) (ports.Item, error) {
	key := schema.CategoryKey(id)
	item, err := r.store.Get(ctx, key.PK, key.SK)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFoundError("Category not found")
	}
	return item, nil
}

// Update applies a partial update to a category
func (r *CategoryRepository) Update(ctx context.Context, id string, fields catalog.UpdateCategoryFields) (ports.Item, error) {
	if fields.IsEmpty() {
		return nil, apperrors.NewValidationError("No fields to update")
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	set := map[string]interface{}{
		"updated_at": utils.FormatTimestamp(utils.NowUTC()),
	}
	if fields.Name != nil {
		exists, err := nameExists(ctx, r.store, schema.CategoryListPartition, *fields.Name, "category_id", id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Category with name '%s' already exists", *fields.Name))
		}
		set["name"] = *fields.Name
		set[schema.GSI3SKField] = schema.UpperName(*fields.Name)
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}

	key := schema.CategoryKey(id)
	item, err := r.store.Update(ctx, key.PK, key.SK, ports.UpdateSpec{Set: set, IfExists: true})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("Category not found")
		}
		return nil, err
	}

	r.logger.Info("category updated", zap.String("category_id", id))
	return item, nil
}

// Delete removes a category, reporting whether it existed
func (r *CategoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	key := schema.CategoryKey(id)
	deleted, err := r.store.Delete(ctx, key.PK, key.SK)
	if err != nil {
		return false, err
	}
	if deleted == nil {
		return false, nil
	}

	r.logger.Info("category deleted", zap.String("category_id", id))
	return true, nil
}

// Exists reports category presence
func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	key := schema.CategoryKey(id)
	return r.store.Exists(ctx, key.PK, key.SK)
}

// List returns one page of categories ordered by name
func (r *CategoryRepository) List(ctx context.Context, limit int32, nextToken string) (ports.QueryPage, error) {
	return r.store.QueryIndex(ctx, schema.GSI3Keys(schema.CategoryListPartition).Query(limit, nextToken))
}
