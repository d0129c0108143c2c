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

// BrandRepository persists brand entities
type BrandRepository struct {
	store  ports.Storage
	logger *zap.Logger
}

// NewBrandRepository creates a brand repository over the given store
func NewBrandRepository(store ports.Storage, logger *zap.Logger) *BrandRepository {
	return &BrandRepository{
		store:  store,
		logger: logger,
	}
}

// Create validates and stores a new brand, enforcing case-insensitive name
// uniqueness across brands
func (r *BrandRepository) Create(ctx context.Context, name, description, website string) (ports.Item, error) {
	if err := catalog.ValidateBrandName(name); err != nil {
		return nil, err
	}
	if err := catalog.ValidateBrandDescription(description); err != nil {
		return nil, err
	}
	if website != "" {
		if err := catalog.ValidateWebsite(website); err != nil {
			return nil, err
		}
	}

	exists, err := nameExists(ctx, r.store, schema.BrandListPartition, name, "brand_id", "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("Brand with name '%s' already exists", name))
	}

	brandID := uuid.NewString()
	item := schema.NewBrandItem(brandID, name, description, website, utils.NowUTC())

	if err := r.store.Put(ctx, item, ports.PutOptions{IfNotExists: true}); err != nil {
		return nil, err
	}

	r.logger.Info("brand created", zap.String("brand_id", brandID), zap.String("name", name))
	return item, nil
}

// Get returns a brand by id
func (r *BrandRepository) Get(ctx context.Context, id string) (ports.Item, error) {
	key := schema.BrandKey(id)
	item, err := r.store.Get(ctx, key.PK, key.SK)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFoundError("Brand not found")
	}
	return item, nil
}

// Update applies a partial update to a brand. A name change re-checks
// uniqueness against the other brands and rewrites the list sort key.
func (r *BrandRepository) Update(ctx context.Context, id string, fields catalog.UpdateBrandFields) (ports.Item, error) {
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
		exists, err := nameExists(ctx, r.store, schema.BrandListPartition, *fields.Name, "brand_id", id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Brand with name '%s' already exists", *fields.Name))
		}
		set["name"] = *fields.Name
		set[schema.GSI3SKField] = schema.UpperName(*fields.Name)
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Website != nil {
		set["website"] = *fields.Website
	}

	key := schema.BrandKey(id)
	item, err := r.store.Update(ctx, key.PK, key.SK, ports.UpdateSpec{Set: set, IfExists: true})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("Brand not found")
		}
		return nil, err
	}

	r.logger.Info("brand updated", zap.String("brand_id", id))
	return item, nil
}

// Delete removes a brand, reporting whether it existed
func (r *BrandRepository) Delete(ctx context.Context, id string) (bool, error) {
	key := schema.BrandKey(id)
	deleted, err := r.store.Delete(ctx, key.PK, key.SK)
	if err != nil {
		return false, err
	}
	if deleted == nil {
		return false, nil
	}

	r.logger.Info("brand deleted", zap.String("brand_id", id))
	return true, nil
}

// Exists reports brand presence
func (r *BrandRepository) Exists(ctx context.Context, id string) (bool, error) {
	key := schema.BrandKey(id)
	return r.store.Exists(ctx, key.PK, key.SK)
}

// List returns one page of brands ordered by name
func (r *BrandRepository) List(ctx context.Context, limit int32, nextToken string) (ports.QueryPage, error) {
	return r.store.QueryIndex(ctx, schema.GSI3Keys(schema.BrandListPartition).Query(limit, nextToken))
}
