// Package repositories implements the entity modules over the single-table
// storage client: key construction and index selection via the schema
// package, case-insensitive name uniqueness, and referential checks for
// product foreign keys.
package repositories

import (
	"context"

	"catalog-api/application/ports"
	"catalog-api/infrastructure/persistence/schema"
)

// uniquenessScanLimit caps the list-partition page inspected by the name
// uniqueness check.
const uniquenessScanLimit = 100

// nameExists reports whether another entity in the given GSI-3 list
// partition already carries the same name, compared case-insensitively via
// the upper-cased sort key. excludeID skips the entity being updated.
//
// The check reads a single index page and is not atomic with the write that
// follows it, so concurrent creates with the same name can both pass.
func nameExists(ctx context.Context, store ports.Storage, partition, name, idField, excludeID string) (bool, error) {
	page, err := store.QueryIndex(ctx, schema.GSI3Keys(partition).Query(uniquenessScanLimit, ""))
	if err != nil {
		return false, err
	}

	target := schema.UpperName(name)
	for _, item := range page.Items {
		sortKey, _ := item[schema.GSI3SKField].(string)
		if sortKey != target {
			continue
		}
		if excludeID != "" {
			if id, _ := item[idField].(string); id == excludeID {
				continue
			}
		}
		return true, nil
	}
	return false, nil
}
