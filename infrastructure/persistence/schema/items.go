package schema

import (
	"strings"
	"time"

	"catalog-api/application/ports"
	"catalog-api/pkg/utils"
)

// Entity type attribute values
const (
	EntityTypeBrand       = "brand"
	EntityTypeCategory    = "category"
	EntityTypeProduct     = "product"
	EntityTypeProductList = "product_list"
)

// UpperName returns the denormalized GSI-3 sort value for name-ordered
// listings
func UpperName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NewBrandItem assembles the full attribute map for a brand, including the
// GSI-3 list-partition fields
func NewBrandItem(brandID, name, description, website string, now time.Time) ports.Item {
	ts := utils.FormatTimestamp(now)

	item := ports.Item{
		PKField:       BrandKey(brandID).PK,
		SKField:       BrandKey(brandID).SK,
		GSI3PKField:   BrandListPartition,
		GSI3SKField:   UpperName(name),
		"entity_type": EntityTypeBrand,
		"brand_id":    brandID,
		"name":        name,
		"description": description,
		"created_at":  ts,
		"updated_at":  ts,
	}

	if website != "" {
		item["website"] = website
	}

	return item
}

// NewCategoryItem assembles the full attribute map for a category
func NewCategoryItem(categoryID, name, description string, now time.Time) ports.Item {
	ts := utils.FormatTimestamp(now)

	return ports.Item{
		PKField:       CategoryKey(categoryID).PK,
		SKField:       CategoryKey(categoryID).SK,
		GSI3PKField:   CategoryListPartition,
		GSI3SKField:   UpperName(name),
		"entity_type": EntityTypeCategory,
		"category_id": categoryID,
		"name":        name,
		"description": description,
		"created_at":  ts,
		"updated_at":  ts,
	}
}

// NewProductItem assembles the full attribute map for a product detail item.
// brand_id and product_id double as the GSI-2 key fields; GSI-3 groups the
// product under its category partition.
func NewProductItem(productID string, input ports.NewProductInput, now time.Time) ports.Item {
	ts := utils.FormatTimestamp(now)

	item := ports.Item{
		PKField:          ProductKey(productID).PK,
		SKField:          ProductKey(productID).SK,
		GSI3PKField:      CategoryPartition(input.CategoryID),
		GSI3SKField:      productID,
		"entity_type":    EntityTypeProduct,
		"product_id":     productID,
		"brand_id":       input.BrandID,
		"category_id":    input.CategoryID,
		"name":           input.Name,
		"price":          input.Price,
		"stock_quantity": input.StockQuantity,
		"created_at":     ts,
		"updated_at":     ts,
	}

	if input.Description != "" {
		item["description"] = input.Description
	}
	if len(input.Images) > 0 {
		item["images"] = toInterfaceSlice(input.Images)
	}

	return item
}

// NewProductListItem assembles the list-projection counterpart of a product
// detail item. Its GSI-3 partition is pinned to PRODUCT_LIST and its sort
// key is the upper-cased name, which is what makes the sorted full-catalog
// listing possible without scanning.
func NewProductListItem(productID string, input ports.NewProductInput, now time.Time) ports.Item {
	ts := utils.FormatTimestamp(now)

	item := ports.Item{
		PKField:          ProductListKey(productID).PK,
		SKField:          ProductListKey(productID).SK,
		GSI3PKField:      ProductListPartition,
		GSI3SKField:      UpperName(input.Name),
		"entity_type":    EntityTypeProductList,
		"product_id":     productID,
		"name":           input.Name,
		"price":          input.Price,
		"stock_quantity": input.StockQuantity,
		"created_at":     ts,
		"updated_at":     ts,
	}

	if input.Description != "" {
		item["description"] = input.Description
	}
	if len(input.Images) > 0 {
		item["images"] = toInterfaceSlice(input.Images)
	}

	return item
}

// ProductListItemFromDetail rebuilds the full list projection from a detail
// item. Used to restore a projection that went missing after a partial
// dual-item write.
func ProductListItemFromDetail(detail ports.Item) ports.Item {
	productID, _ := detail["product_id"].(string)
	name, _ := detail["name"].(string)

	item := ports.Item{
		PKField:          ProductListKey(productID).PK,
		SKField:          ProductListKey(productID).SK,
		GSI3PKField:      ProductListPartition,
		GSI3SKField:      UpperName(name),
		"entity_type":    EntityTypeProductList,
		"product_id":     productID,
		"name":           name,
		"price":          detail["price"],
		"stock_quantity": detail["stock_quantity"],
		"created_at":     detail["created_at"],
		"updated_at":     detail["updated_at"],
	}

	if description, ok := detail["description"]; ok {
		item["description"] = description
	}
	if images, ok := detail["images"]; ok {
		item["images"] = images
	}

	return item
}

func toInterfaceSlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
