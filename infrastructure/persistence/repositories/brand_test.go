package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-api/domain/catalog"
	"catalog-api/infrastructure/persistence/memory"
	apperrors "catalog-api/pkg/errors"
)

func newBrandRepo() *BrandRepository {
	return NewBrandRepository(memory.NewStore(), zap.NewNop())
}

func TestBrandCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newBrandRepo()

	created, err := repo.Create(ctx, "Acme Tools", "Hand tools and workshop supplies", "https://acme.example")
	require.NoError(t, err)

	brandID := created["brand_id"].(string)
	require.NotEmpty(t, brandID)
	assert.Equal(t, "Acme Tools", created["name"])
	assert.Equal(t, "ACME TOOLS", created["GSI3SK"])
	assert.Equal(t, "BRAND_LIST", created["GSI3PK"])
	assert.Equal(t, created["created_at"], created["updated_at"])

	got, err := repo.Get(ctx, brandID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Tools", got["name"])
	assert.Equal(t, "https://acme.example", got["website"])
}

func TestBrandCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := newBrandRepo()

	cases := []struct {
		name        string
		brandName   string
		description string
		website     string
	}{
		{"name too short", "A", "A valid description here", ""},
		{"name with invalid characters", "Acme @ Tools", "A valid description here", ""},
		{"description too short", "Acme Tools", "too short", ""},
		{"missing description", "Acme Tools", "", ""},
		{"bad website scheme", "Acme Tools", "A valid description here", "ftp://acme.example"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tc.brandName, tc.description, tc.website)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestBrandNameUniquenessIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := newBrandRepo()

	_, err := repo.Create(ctx, "Acme Tools", "Hand tools and workshop supplies", "")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "ACME tools", "Another description entirely here", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicate(err))
}

func TestBrandGetAbsent(t *testing.T) {
	_, err := newBrandRepo().Get(context.Background(), "11111111-1111-4111-8111-111111111111")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBrandUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newBrandRepo()

	created, err := repo.Create(ctx, "Acme Tools", "Hand tools and workshop supplies", "")
	require.NoError(t, err)
	brandID := created["brand_id"].(string)

	newName := "Acme Hardware"
	updated, err := repo.Update(ctx, brandID, catalog.UpdateBrandFields{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Acme Hardware", updated["name"])
	assert.Equal(t, "ACME HARDWARE", updated["GSI3SK"])

	t.Run("renaming to own name is allowed", func(t *testing.T) {
		sameName := "Acme Hardware"
		_, err := repo.Update(ctx, brandID, catalog.UpdateBrandFields{Name: &sameName})
		require.NoError(t, err)
	})

	t.Run("renaming to another brand's name conflicts", func(t *testing.T) {
		_, err := repo.Create(ctx, "Widget Works", "Widgets of every size and shape", "")
		require.NoError(t, err)

		taken := "widget works"
		_, err = repo.Update(ctx, brandID, catalog.UpdateBrandFields{Name: &taken})
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicate(err))
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, err := repo.Update(ctx, brandID, catalog.UpdateBrandFields{})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("absent brand", func(t *testing.T) {
		name := "Ghost Brand"
		_, err := repo.Update(ctx, "22222222-2222-4222-8222-222222222222", catalog.UpdateBrandFields{Name: &name})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestBrandDelete(t *testing.T) {
	ctx := context.Background()
	repo := newBrandRepo()

	created, err := repo.Create(ctx, "Acme Tools", "Hand tools and workshop supplies", "")
	require.NoError(t, err)
	brandID := created["brand_id"].(string)

	found, err := repo.Delete(ctx, brandID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(ctx, brandID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBrandList(t *testing.T) {
	ctx := context.Background()
	repo := newBrandRepo()

	for _, name := range []string{"Zeta Gear", "Acme Tools", "Mid Range"} {
		_, err := repo.Create(ctx, name, "A perfectly valid description", "")
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 0, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	names := make([]string, 0, 3)
	for _, item := range page.Items {
		names = append(names, item["name"].(string))
	}
	assert.Equal(t, []string{"Acme Tools", "Mid Range", "Zeta Gear"}, names)

	t.Run("paginates with a continuation token", func(t *testing.T) {
		first, err := repo.List(ctx, 2, "")
		require.NoError(t, err)
		require.Len(t, first.Items, 2)
		require.NotEmpty(t, first.NextToken)

		second, err := repo.List(ctx, 2, first.NextToken)
		require.NoError(t, err)
		require.Len(t, second.Items, 1)
		assert.Equal(t, "Zeta Gear", second.Items[0]["name"])
		assert.Empty(t, second.NextToken)
	})
}
