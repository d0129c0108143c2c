// Package schema owns the single-table key scheme: key construction for
// every entity type, the secondary-index descriptors behind each access
// pattern, and the item builders that apply the denormalized index fields.
//
// Access patterns served by the table:
//
//	get entity by id          GetItem   PK=TYPE#{id}, SK=TYPE#{id}
//	list brands by name       GSI-3     GSI3PK=BRAND_LIST, sorted by GSI3SK
//	list categories by name   GSI-3     GSI3PK=CATEGORY_LIST, sorted by GSI3SK
//	list products by name     GSI-3     GSI3PK=PRODUCT_LIST (projection items)
//	products by brand         GSI-2     brand_id={id}
//	products by category      GSI-3     GSI3PK=CATEGORY#{id}
//	inverted point lookup     GSI-1     SK={value}
package schema

import (
	"fmt"

	"catalog-api/application/ports"
)

// Primary key field names
const (
	PKField = "PK"
	SKField = "SK"
)

// Secondary index names and key fields. GSI-1 is the inverted index
// (partition key SK, sort key PK); GSI-2 serves products-by-brand; GSI-3 is
// the flexible index whose key attributes are set per entity.
const (
	GSI1Name = "GSI-1"
	GSI1PK   = SKField
	GSI1SK   = PKField

	GSI2Name = "GSI-2"
	GSI2PK   = "brand_id"
	GSI2SK   = "product_id"

	GSI3Name    = "GSI-3"
	GSI3PKField = "GSI3PK"
	GSI3SKField = "GSI3SK"
)

// Entity type prefixes
const (
	BrandPrefix       = "BRAND"
	CategoryPrefix    = "CATEGORY"
	ProductPrefix     = "PRODUCT"
	ProductListPrefix = "PRODUCT_LIST"
)

// GSI-3 list partitions
const (
	BrandListPartition    = "BRAND_LIST"
	CategoryListPartition = "CATEGORY_LIST"
	ProductListPartition  = "PRODUCT_LIST"
)

// entityKey builds the primary key pair for an entity. PK and SK are always
// equal: the table uses the key purely as a type+id discriminator.
func entityKey(prefix, id string) ports.Key {
	k := fmt.Sprintf("%s#%s", prefix, id)
	return ports.Key{PK: k, SK: k}
}

// BrandKey returns the primary key of a brand item
func BrandKey(brandID string) ports.Key {
	return entityKey(BrandPrefix, brandID)
}

// CategoryKey returns the primary key of a category item
func CategoryKey(categoryID string) ports.Key {
	return entityKey(CategoryPrefix, categoryID)
}

// ProductKey returns the primary key of a product detail item
func ProductKey(productID string) ports.Key {
	return entityKey(ProductPrefix, productID)
}

// ProductListKey returns the primary key of a product list-projection item
func ProductListKey(productID string) ports.Key {
	return entityKey(ProductListPrefix, productID)
}

// CategoryPartition returns the GSI-3 partition value grouping the products
// of one category
func CategoryPartition(categoryID string) string {
	return fmt.Sprintf("%s#%s", CategoryPrefix, categoryID)
}

// IndexKeys describes how to address a secondary index for one access
// pattern
type IndexKeys struct {
	Name    string
	PKField string
	SKField string
	PKValue string
}

// InvertedKeys addresses GSI-1 for a point lookup by sort key value
func InvertedKeys(sortKey string) IndexKeys {
	return IndexKeys{
		Name:    GSI1Name,
		PKField: GSI1PK,
		SKField: GSI1SK,
		PKValue: sortKey,
	}
}

// ProductsByBrandKeys addresses GSI-2 for the products of one brand
func ProductsByBrandKeys(brandID string) IndexKeys {
	return IndexKeys{
		Name:    GSI2Name,
		PKField: GSI2PK,
		SKField: GSI2SK,
		PKValue: brandID,
	}
}

// GSI3Keys addresses the flexible GSI-3 for any of its partitions:
// BRAND_LIST, CATEGORY_LIST, PRODUCT_LIST or CATEGORY#{id}
func GSI3Keys(partition string) IndexKeys {
	return IndexKeys{
		Name:    GSI3Name,
		PKField: GSI3PKField,
		SKField: GSI3SKField,
		PKValue: partition,
	}
}

// Query builds an index query for this access pattern
func (k IndexKeys) Query(limit int32, nextToken string) ports.IndexQuery {
	return ports.IndexQuery{
		IndexName: k.Name,
		PKField:   k.PKField,
		PKValue:   k.PKValue,
		SKField:   k.SKField,
		Limit:     limit,
		NextToken: nextToken,
	}
}
