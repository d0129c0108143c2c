package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-api/application/ports"
	apperrors "catalog-api/pkg/errors"
)

func TestStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.Put(ctx, ports.Item{
		"PK":             "BRAND#1",
		"SK":             "BRAND#1",
		"name":           "Acme",
		"stock_quantity": 7,
		"price":          19.99,
	}, ports.PutOptions{})
	require.NoError(t, err)

	item, err := store.Get(ctx, "BRAND#1", "BRAND#1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Acme", item["name"])
	assert.Equal(t, int64(7), item["stock_quantity"])
	assert.Equal(t, 19.99, item["price"])
}

func TestStoreGetAbsent(t *testing.T) {
	item, err := NewStore().Get(context.Background(), "BRAND#missing", "BRAND#missing")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestStorePutIfNotExists(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	item := ports.Item{"PK": "BRAND#1", "SK": "BRAND#1", "name": "Acme"}

	require.NoError(t, store.Put(ctx, item, ports.PutOptions{IfNotExists: true}))

	err := store.Put(ctx, item, ports.PutOptions{IfNotExists: true})
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicate(err))
}

func TestStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Put(ctx, ports.Item{
		"PK": "BRAND#1", "SK": "BRAND#1", "name": "Acme", "website": "https://acme.example",
	}, ports.PutOptions{}))

	updated, err := store.Update(ctx, "BRAND#1", "BRAND#1", ports.UpdateSpec{
		Set:      map[string]interface{}{"name": "Acme Corp"},
		IfExists: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated["name"])
	assert.Equal(t, "https://acme.example", updated["website"])
}

func TestStoreUpdateAbsentIfExists(t *testing.T) {
	_, err := NewStore().Update(context.Background(), "BRAND#missing", "BRAND#missing", ports.UpdateSpec{
		Set:      map[string]interface{}{"name": "x"},
		IfExists: true,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Put(ctx, ports.Item{"PK": "BRAND#1", "SK": "BRAND#1", "name": "Acme"}, ports.PutOptions{}))

	deleted, err := store.Delete(ctx, "BRAND#1", "BRAND#1")
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Acme", deleted["name"])

	deleted, err = store.Delete(ctx, "BRAND#1", "BRAND#1")
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestStoreQueryIndex(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	names := []string{"Cherry", "Apple", "Banana", "Date"}
	for i, name := range names {
		require.NoError(t, store.Put(ctx, ports.Item{
			"PK":     fmt.Sprintf("BRAND#%d", i),
			"SK":     fmt.Sprintf("BRAND#%d", i),
			"GSI3PK": "BRAND_LIST",
			"GSI3SK": name,
			"name":   name,
		}, ports.PutOptions{}))
	}
	// item in a different partition must not match
	require.NoError(t, store.Put(ctx, ports.Item{
		"PK": "CATEGORY#x", "SK": "CATEGORY#x", "GSI3PK": "CATEGORY_LIST", "GSI3SK": "Apple",
	}, ports.PutOptions{}))

	t.Run("ordered by sort key", func(t *testing.T) {
		page, err := store.QueryIndex(ctx, ports.IndexQuery{
			IndexName: "GSI-3", PKField: "GSI3PK", PKValue: "BRAND_LIST", SKField: "GSI3SK",
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 4)
		assert.Empty(t, page.NextToken)

		got := make([]string, 0, 4)
		for _, item := range page.Items {
			got = append(got, item["name"].(string))
		}
		assert.Equal(t, []string{"Apple", "Banana", "Cherry", "Date"}, got)
	})

	t.Run("pagination resumes after the last item", func(t *testing.T) {
		first, err := store.QueryIndex(ctx, ports.IndexQuery{
			IndexName: "GSI-3", PKField: "GSI3PK", PKValue: "BRAND_LIST", SKField: "GSI3SK", Limit: 3,
		})
		require.NoError(t, err)
		require.Len(t, first.Items, 3)
		require.NotEmpty(t, first.NextToken)

		second, err := store.QueryIndex(ctx, ports.IndexQuery{
			IndexName: "GSI-3", PKField: "GSI3PK", PKValue: "BRAND_LIST", SKField: "GSI3SK",
			Limit: 3, NextToken: first.NextToken,
		})
		require.NoError(t, err)
		require.Len(t, second.Items, 1)
		assert.Equal(t, "Date", second.Items[0]["name"])
		assert.Empty(t, second.NextToken)
	})

	t.Run("sort key prefix", func(t *testing.T) {
		page, err := store.QueryIndex(ctx, ports.IndexQuery{
			IndexName: "GSI-3", PKField: "GSI3PK", PKValue: "BRAND_LIST", SKField: "GSI3SK", SKPrefix: "B",
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Banana", page.Items[0]["name"])
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := store.QueryIndex(ctx, ports.IndexQuery{
			IndexName: "GSI-3", PKField: "GSI3PK", PKValue: "BRAND_LIST", SKField: "GSI3SK",
			NextToken: "garbage!!!",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestStoreBatchOperations(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	puts := []ports.Item{
		{"PK": "PRODUCT#1", "SK": "PRODUCT#1", "name": "One"},
		{"PK": "PRODUCT#2", "SK": "PRODUCT#2", "name": "Two"},
	}
	require.NoError(t, store.BatchWrite(ctx, puts, nil))
	assert.Equal(t, 2, store.Len())

	items, err := store.BatchGet(ctx, []ports.Key{
		{PK: "PRODUCT#1", SK: "PRODUCT#1"},
		{PK: "PRODUCT#missing", SK: "PRODUCT#missing"},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "One", items[0]["name"])

	require.NoError(t, store.BatchWrite(ctx, nil, []ports.Key{
		{PK: "PRODUCT#1", SK: "PRODUCT#1"},
		{PK: "PRODUCT#2", SK: "PRODUCT#2"},
	}))
	assert.Equal(t, 0, store.Len())
}

func TestStoreCopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	src := ports.Item{"PK": "PRODUCT#1", "SK": "PRODUCT#1", "images": []interface{}{"https://img.example/a.png"}}
	require.NoError(t, store.Put(ctx, src, ports.PutOptions{}))
	src["PK"] = "mutated"

	item, err := store.Get(ctx, "PRODUCT#1", "PRODUCT#1")
	require.NoError(t, err)
	require.NotNil(t, item)

	item["name"] = "mutated"
	again, err := store.Get(ctx, "PRODUCT#1", "PRODUCT#1")
	require.NoError(t, err)
	_, tainted := again["name"]
	assert.False(t, tainted)
}
