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

// ProductRepository persists product entities. Every product is stored as
// two items: the detail item under PRODUCT#{id} and a list-projection item
// under PRODUCT_LIST#{id} whose GSI-3 keys drive the name-ordered catalog
// listing. The two writes are sequential, not transactional: a failure
// between them leaves the projection stale until the next write.
type ProductRepository struct {
	store      ports.Storage
	brands     ports.BrandRepository
	categories ports.CategoryRepository
	logger     *zap.Logger
}

// NewProductRepository creates a product repository over the given store.
// Brand and category repositories back the referential checks.
func NewProductRepository(store ports.Storage, brands ports.BrandRepository, categories ports.CategoryRepository, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		store:      store,
		brands:     brands,
		categories: categories,
		logger:     logger,
	}
}

// Create validates and stores a new product: referential checks on brand
// and category, then the detail item and its list projection. Product names
// are not unique: two products may share a name.
func (r *ProductRepository) Create(ctx context.Context, input ports.NewProductInput) (ports.Item, error) {
	if err := r.validateNewProduct(input); err != nil {
		return nil, err
	}

	if err := r.ensureBrandExists(ctx, input.BrandID); err != nil {
		return nil, err
	}
	if err := r.ensureCategoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	productID := uuid.NewString()
	now := utils.NowUTC()
	detail := schema.NewProductItem(productID, input, now)
	projection := schema.NewProductListItem(productID, input, now)

	if err := r.store.Put(ctx, detail, ports.PutOptions{IfNotExists: true}); err != nil {
		return nil, err
	}
	if err := r.store.Put(ctx, projection, ports.PutOptions{IfNotExists: true}); err != nil {
		r.logger.Error("product list projection write failed after detail write",
			zap.String("product_id", productID), zap.Error(err))
		return nil, err
	}

	r.logger.Info("product created", zap.String("product_id", productID), zap.String("name", input.Name))
	return detail, nil
}

func (r *ProductRepository) validateNewProduct(input ports.NewProductInput) error {
	if err := catalog.ValidateProductName(input.Name); err != nil {
		return err
	}
	if err := catalog.ValidateEntityID("Brand", input.BrandID); err != nil {
		return err
	}
	if err := catalog.ValidateEntityID("Category", input.CategoryID); err != nil {
		return err
	}
	if err := catalog.ValidatePrice(input.Price); err != nil {
		return err
	}
	if input.Description != "" {
		if err := catalog.ValidateProductDescription(input.Description); err != nil {
			return err
		}
	}
	if err := catalog.ValidateStockQuantity(input.StockQuantity); err != nil {
		return err
	}
	return catalog.ValidateImages(input.Images)
}

func (r *ProductRepository) ensureBrandExists(ctx context.Context, brandID string) error {
	exists, err := r.brands.Exists(ctx, brandID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("Brand with id '%s' does not exist", brandID))
	}
	return nil
}

func (r *ProductRepository) ensureCategoryExists(ctx context.Context, categoryID string) error {
	exists, err := r.categories.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("Category with id '%s' does not exist", categoryID))
	}
	return nil
}

// Get returns a product detail item by id
func (r *ProductRepository) Get(ctx context.Context, id string) (ports.Item, error) {
	key := schema.ProductKey(id)
	item, err := r.store.Get(ctx, key.PK, key.SK)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFoundError("Product not found")
	}
	return item, nil
}

// Update applies a partial update to both product items. The detail item is
// updated conditionally; the projection mirrors the listing fields but its
// GSI-3 partition stays pinned to PRODUCT_LIST, so a category change only
// moves the detail item.
func (r *ProductRepository) Update(ctx context.Context, id string, fields catalog.UpdateProductFields) (ports.Item, error) {
	if fields.IsEmpty() {
		return nil, apperrors.NewValidationError("No fields to update")
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	if fields.BrandID != nil {
		if err := r.ensureBrandExists(ctx, *fields.BrandID); err != nil {
			return nil, err
		}
	}
	if fields.CategoryID != nil {
		if err := r.ensureCategoryExists(ctx, *fields.CategoryID); err != nil {
			return nil, err
		}
	}
	ts := utils.FormatTimestamp(utils.NowUTC())
	detailSet := map[string]interface{}{"updated_at": ts}
	projectionSet := map[string]interface{}{"updated_at": ts}

	if fields.Name != nil {
		detailSet["name"] = *fields.Name
		projectionSet["name"] = *fields.Name
		projectionSet[schema.GSI3SKField] = schema.UpperName(*fields.Name)
	}
	if fields.BrandID != nil {
		detailSet["brand_id"] = *fields.BrandID
	}
	if fields.CategoryID != nil {
		detailSet["category_id"] = *fields.CategoryID
		detailSet[schema.GSI3PKField] = schema.CategoryPartition(*fields.CategoryID)
	}
	if fields.Price != nil {
		detailSet["price"] = *fields.Price
		projectionSet["price"] = *fields.Price
	}
	if fields.Description != nil {
		detailSet["description"] = *fields.Description
		projectionSet["description"] = *fields.Description
	}
	if fields.StockQuantity != nil {
		detailSet["stock_quantity"] = *fields.StockQuantity
		projectionSet["stock_quantity"] = *fields.StockQuantity
	}
	if fields.Images != nil {
		images := toInterfaceValues(*fields.Images)
		detailSet["images"] = images
		projectionSet["images"] = images
	}

	detailKey := schema.ProductKey(id)
	detail, err := r.store.Update(ctx, detailKey.PK, detailKey.SK, ports.UpdateSpec{Set: detailSet, IfExists: true})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("Product not found")
		}
		return nil, err
	}

	projectionKey := schema.ProductListKey(id)
	_, err = r.store.Update(ctx, projectionKey.PK, projectionKey.SK, ports.UpdateSpec{Set: projectionSet, IfExists: true})
	if apperrors.IsNotFound(err) {
		// The projection was lost in an earlier partial write. Rebuild it
		// whole from the updated detail item.
		r.logger.Warn("product list projection missing, rebuilding", zap.String("product_id", id))
		err = r.store.Put(ctx, schema.ProductListItemFromDetail(detail), ports.PutOptions{})
	}
	if err != nil {
		r.logger.Error("product list projection update failed after detail update",
			zap.String("product_id", id), zap.Error(err))
		return nil, err
	}

	r.logger.Info("product updated", zap.String("product_id", id))
	return detail, nil
}

// Delete removes both product items, reporting whether the detail item
// existed
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	detailKey := schema.ProductKey(id)
	deleted, err := r.store.Delete(ctx, detailKey.PK, detailKey.SK)
	if err != nil {
		return false, err
	}
	if deleted == nil {
		return false, nil
	}

	projectionKey := schema.ProductListKey(id)
	if _, err := r.store.Delete(ctx, projectionKey.PK, projectionKey.SK); err != nil {
		r.logger.Error("product list projection delete failed after detail delete",
			zap.String("product_id", id), zap.Error(err))
		return false, err
	}

	r.logger.Info("product deleted", zap.String("product_id", id))
	return true, nil
}

// Exists reports product presence via the detail item
func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	key := schema.ProductKey(id)
	return r.store.Exists(ctx, key.PK, key.SK)
}

// List returns one page of products ordered by name. The page comes from
// the PRODUCT_LIST projection; each entry is hydrated into its full detail
// item, falling back to the projection when the detail item is missing.
func (r *ProductRepository) List(ctx context.Context, limit int32, nextToken string) (ports.QueryPage, error) {
	page, err := r.store.QueryIndex(ctx, schema.GSI3Keys(schema.ProductListPartition).Query(limit, nextToken))
	if err != nil {
		return ports.QueryPage{}, err
	}
	if len(page.Items) == 0 {
		return page, nil
	}

	keys := make([]ports.Key, 0, len(page.Items))
	for _, item := range page.Items {
		if id, _ := item["product_id"].(string); id != "" {
			keys = append(keys, schema.ProductKey(id))
		}
	}
	details, err := r.store.BatchGet(ctx, keys)
	if err != nil {
		return ports.QueryPage{}, err
	}

	byID := make(map[string]ports.Item, len(details))
	for _, item := range details {
		if id, _ := item["product_id"].(string); id != "" {
			byID[id] = item
		}
	}

	// preserve the projection's name order
	hydrated := make([]ports.Item, 0, len(page.Items))
	for _, item := range page.Items {
		id, _ := item["product_id"].(string)
		if detail, ok := byID[id]; ok {
			hydrated = append(hydrated, detail)
		} else {
			hydrated = append(hydrated, item)
		}
	}
	return ports.QueryPage{Items: hydrated, NextToken: page.NextToken}, nil
}

// ListByBrand returns one page of a brand's products via GSI-2
func (r *ProductRepository) ListByBrand(ctx context.Context, brandID string, limit int32, nextToken string) (ports.QueryPage, error) {
	return r.store.QueryIndex(ctx, schema.ProductsByBrandKeys(brandID).Query(limit, nextToken))
}

// ListByCategory returns one page of a category's products via the GSI-3
// category partition
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID string, limit int32, nextToken string) (ports.QueryPage, error) {
	return r.store.QueryIndex(ctx, schema.GSI3Keys(schema.CategoryPartition(categoryID)).Query(limit, nextToken))
}

func toInterfaceValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
