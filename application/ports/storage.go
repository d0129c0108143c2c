package ports

import "context"

// Item is the attribute map of a single table item. Numeric attribute
// values are int64 when integral and float64 otherwise, so monetary values
// never render as "7.0" style artifacts in JSON.
type Item = map[string]interface{}

// Key identifies a single item in the table
type Key struct {
	PK string
	SK string
}

// PutOptions controls conditional puts
type PutOptions struct {
	// IfNotExists makes the put fail with a duplicate error when an item
	// with the same primary key already exists.
	IfNotExists bool
}

// UpdateSpec describes a partial item update
type UpdateSpec struct {
	// Set maps attribute names to their new values.
	Set map[string]interface{}

	// IfExists makes the update fail with a not-found error when the item
	// is absent, instead of upserting.
	IfExists bool
}

// IndexQuery describes a paginated query against a secondary index
type IndexQuery struct {
	IndexName string
	PKField   string
	PKValue   string

	// Optional begins_with condition on the index sort key
	SKField  string
	SKPrefix string

	Limit     int32
	NextToken string
}

// QueryPage is one page of query results. NextToken is an opaque
// continuation cursor, empty on the last page.
type QueryPage struct {
	Items     []Item
	NextToken string
}

// Storage is the single-table storage client boundary. Implementations
// translate failures into the application error taxonomy: conditional-check
// failures become duplicate (put) or not-found (update/delete) errors, and
// any other store failure becomes a database error.
type Storage interface {
	// Get returns the item, or nil when absent
	Get(ctx context.Context, pk, sk string) (Item, error)

	// Put writes a full item
	Put(ctx context.Context, item Item, opts PutOptions) error

	// Update applies a partial update and returns the full updated item
	Update(ctx context.Context, pk, sk string, spec UpdateSpec) (Item, error)

	// Delete removes an item and returns the deleted item, or nil when absent
	Delete(ctx context.Context, pk, sk string) (Item, error)

	// Exists reports item presence using a minimal-projection read
	Exists(ctx context.Context, pk, sk string) (bool, error)

	// QueryIndex runs a paginated query against a secondary index
	QueryIndex(ctx context.Context, query IndexQuery) (QueryPage, error)

	// BatchGet fetches multiple items; absent keys are silently skipped
	BatchGet(ctx context.Context, keys []Key) ([]Item, error)

	// BatchWrite puts and deletes multiple items in batched calls
	BatchWrite(ctx context.Context, puts []Item, deletes []Key) error
}
