package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/domain/catalog"
	"catalog-api/pkg/common"
)

func TestPaginationClamp(t *testing.T) {
	p := Pagination{DefaultLimit: 50, MaxLimit: 100}

	cases := []struct {
		name     string
		limit    int32
		expected int32
	}{
		{"zero falls back to default", 0, 50},
		{"negative falls back to default", -5, 50},
		{"in range passes through", 25, 25},
		{"at cap passes through", 100, 100},
		{"above cap is reduced", 500, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.Clamp(tc.limit))
		})
	}

	t.Run("zero policy uses built-in defaults", func(t *testing.T) {
		var unset Pagination
		assert.Equal(t, int32(50), unset.Clamp(0))
		assert.Equal(t, int32(100), unset.Clamp(500))
	})
}

// limitRecorder records the limit each List call receives
type limitRecorder struct {
	lastLimit int32
}

func (r *limitRecorder) Create(context.Context, string, string, string) (ports.Item, error) {
	return nil, nil
}
func (r *limitRecorder) Get(context.Context, string) (ports.Item, error)   { return nil, nil }
func (r *limitRecorder) Delete(context.Context, string) (bool, error)      { return false, nil }
func (r *limitRecorder) Exists(context.Context, string) (bool, error)      { return false, nil }
func (r *limitRecorder) Update(context.Context, string, catalog.UpdateBrandFields) (ports.Item, error) {
	return nil, nil
}
func (r *limitRecorder) List(_ context.Context, limit int32, _ string) (ports.QueryPage, error) {
	r.lastLimit = limit
	return ports.QueryPage{}, nil
}

func TestBrandServiceAppliesPagePolicy(t *testing.T) {
	ctx := context.Background()
	repo := &limitRecorder{}
	svc := NewBrandService(repo, Pagination{DefaultLimit: 50, MaxLimit: 100}, zap.NewNop())

	result, err := svc.List(ctx, common.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int32(50), repo.lastLimit)
	assert.NotNil(t, result.Items)
	assert.Nil(t, result.NextToken)

	_, err = svc.List(ctx, common.ListParams{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, int32(100), repo.lastLimit)
}
