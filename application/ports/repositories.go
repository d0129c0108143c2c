package ports

import (
	"context"

	"catalog-api/domain/catalog"
)

// BrandRepository is the brand entity module boundary
type BrandRepository interface {
	Create(ctx context.Context, name, description, website string) (Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, id string, fields catalog.UpdateBrandFields) (Item, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit int32, nextToken string) (QueryPage, error)
}

// CategoryRepository is the category entity module boundary
type CategoryRepository interface {
	Create(ctx context.Context, name, description string) (Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, id string, fields catalog.UpdateCategoryFields) (Item, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit int32, nextToken string) (QueryPage, error)
}

// NewProductInput carries the fields accepted when creating a product
type NewProductInput struct {
	Name          string
	BrandID       string
	CategoryID    string
	Price         float64
	Description   string
	StockQuantity int
	Images        []string
}

// ProductRepository is the product entity module boundary
type ProductRepository interface {
	Create(ctx context.Context, input NewProductInput) (Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, id string, fields catalog.UpdateProductFields) (Item, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit int32, nextToken string) (QueryPage, error)
	ListByBrand(ctx context.Context, brandID string, limit int32, nextToken string) (QueryPage, error)
	ListByCategory(ctx context.Context, categoryID string, limit int32, nextToken string) (QueryPage, error)
}
