// Package memory provides an in-memory ports.Storage implementation for
// tests and local development. It mirrors the DynamoDB store's observable
// behavior: the same error taxonomy for conditional failures, index queries
// ordered by sort key, and integral numbers surfaced as int64.
package memory

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"sync"

	"catalog-api/application/ports"
	apperrors "catalog-api/pkg/errors"
)

// Store is a thread-safe in-memory single-table store.
type Store struct {
	mu    sync.RWMutex
	items map[string]ports.Item
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{items: make(map[string]ports.Item)}
}

func storageKey(pk, sk string) string {
	return pk + "\x00" + sk
}

// Get returns the item, or nil when absent
func (s *Store) Get(_ context.Context, pk, sk string) (ports.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[storageKey(pk, sk)]
	if !ok {
		return nil, nil
	}
	return copyItem(item), nil
}

// Put writes a full item, optionally failing when the key already exists
func (s *Store) Put(_ context.Context, item ports.Item, opts ports.PutOptions) error {
	pk, _ := item["PK"].(string)
	sk, _ := item["SK"].(string)
	if pk == "" || sk == "" {
		return apperrors.NewValidationError("Item is missing its primary key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := storageKey(pk, sk)
	if opts.IfNotExists {
		if _, exists := s.items[key]; exists {
			return apperrors.NewDuplicateError("Item already exists")
		}
	}
	s.items[key] = copyItem(item)
	return nil
}

// Update applies a partial update and returns the full updated item
func (s *Store) Update(_ context.Context, pk, sk string, spec ports.UpdateSpec) (ports.Item, error) {
	if len(spec.Set) == 0 {
		return nil, apperrors.NewValidationError("No fields to update")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := storageKey(pk, sk)
	item, exists := s.items[key]
	if !exists {
		if spec.IfExists {
			return nil, apperrors.NewNotFoundError("Item not found")
		}
		item = ports.Item{"PK": pk, "SK": sk}
		s.items[key] = item
	}
	for name, value := range spec.Set {
		item[name] = copyValue(value)
	}
	return copyItem(item), nil
}

// Delete removes an item and returns the deleted item, or nil when absent
func (s *Store) Delete(_ context.Context, pk, sk string) (ports.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storageKey(pk, sk)
	item, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	delete(s.items, key)
	return item, nil
}

// Exists reports item presence
func (s *Store) Exists(_ context.Context, pk, sk string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[storageKey(pk, sk)]
	return ok, nil
}

// QueryIndex scans for items matching the index partition, ordered by the
// index sort key, with the same opaque-token pagination as the real store.
func (s *Store) QueryIndex(_ context.Context, query ports.IndexQuery) (ports.QueryPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type match struct {
		sortKey string
		item    ports.Item
	}
	var matches []match
	for _, item := range s.items {
		pkValue, _ := item[query.PKField].(string)
		if pkValue != query.PKValue {
			continue
		}
		// sparse index semantics: items missing a key attribute are not indexed
		skValue, hasSK := item[query.SKField].(string)
		if query.SKField != "" && !hasSK {
			continue
		}
		if query.SKPrefix != "" && !strings.HasPrefix(skValue, query.SKPrefix) {
			continue
		}
		matches = append(matches, match{sortKey: skValue, item: item})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].sortKey != matches[j].sortKey {
			return matches[i].sortKey < matches[j].sortKey
		}
		pi, _ := matches[i].item["PK"].(string)
		pj, _ := matches[j].item["PK"].(string)
		return pi < pj
	})

	start := 0
	if query.NextToken != "" {
		afterPK, err := decodeMemoryToken(query.NextToken)
		if err != nil {
			return ports.QueryPage{}, err
		}
		for i, m := range matches {
			pk, _ := m.item["PK"].(string)
			if pk == afterPK {
				start = i + 1
				break
			}
		}
	}

	end := len(matches)
	if query.Limit > 0 && start+int(query.Limit) < end {
		end = start + int(query.Limit)
	}

	items := make([]ports.Item, 0, end-start)
	for _, m := range matches[start:end] {
		items = append(items, copyItem(m.item))
	}

	var nextToken string
	if end < len(matches) {
		lastPK, _ := matches[end-1].item["PK"].(string)
		nextToken = encodeMemoryToken(lastPK)
	}
	return ports.QueryPage{Items: items, NextToken: nextToken}, nil
}

// BatchGet fetches multiple items; absent keys are silently skipped
func (s *Store) BatchGet(_ context.Context, keys []ports.Key) ([]ports.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []ports.Item
	for _, k := range keys {
		if item, ok := s.items[storageKey(k.PK, k.SK)]; ok {
			items = append(items, copyItem(item))
		}
	}
	return items, nil
}

// BatchWrite puts and deletes multiple items
func (s *Store) BatchWrite(ctx context.Context, puts []ports.Item, deletes []ports.Key) error {
	for _, item := range puts {
		if err := s.Put(ctx, item, ports.PutOptions{}); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range deletes {
		delete(s.items, storageKey(k.PK, k.SK))
	}
	return nil
}

// Len reports the number of stored items, for test assertions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func encodeMemoryToken(lastPK string) string {
	data, _ := json.Marshal(map[string]string{"PK": lastPK})
	return base64.StdEncoding.EncodeToString(data)
}

func decodeMemoryToken(token string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", apperrors.NewValidationError("Invalid pagination token")
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", apperrors.NewValidationError("Invalid pagination token")
	}
	return raw["PK"], nil
}

func copyItem(item ports.Item) ports.Item {
	out := make(ports.Item, len(item))
	for k, v := range item {
		out[k] = copyValue(v)
	}
	return out
}

// copyValue deep-copies a value, widening integers to int64 and collapsing
// integral floats, matching how items read back from the table look.
func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return copyItem(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			out[i] = copyValue(elem)
		}
		return out
	case []string:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			out[i] = elem
		}
		return out
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < float64(int64(1)<<53) {
			return int64(val)
		}
		return val
	default:
		return v
	}
}
