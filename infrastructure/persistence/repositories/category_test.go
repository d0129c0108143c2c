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

func newCategoryRepo() *CategoryRepository {
	return NewCategoryRepository(memory.NewStore(), zap.NewNop())
}

func TestCategoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newCategoryRepo()

	created, err := repo.Create(ctx, "Power Tools", "Drills, saws and other powered equipment")
	require.NoError(t, err)

	categoryID := created["category_id"].(string)
	assert.Equal(t, "CATEGORY_LIST", created["GSI3PK"])
	assert.Equal(t, "POWER TOOLS", created["GSI3SK"])

	got, err := repo.Get(ctx, categoryID)
	require.NoError(t, err)
	assert.Equal(t, "Power Tools", got["name"])
}

func TestCategoryDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := newCategoryRepo()

	_, err := repo.Create(ctx, "Power Tools", "Drills, saws and other powered equipment")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "power tools", "A different description altogether")
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicate(err))
}

func TestCategoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newCategoryRepo()

	created, err := repo.Create(ctx, "Power Tools", "Drills, saws and other powered equipment")
	require.NoError(t, err)
	categoryID := created["category_id"].(string)

	desc := "Powered workshop equipment of all kinds"
	updated, err := repo.Update(ctx, categoryID, catalog.UpdateCategoryFields{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated["description"])

	found, err := repo.Delete(ctx, categoryID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = repo.Get(ctx, categoryID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCategoryList(t *testing.T) {
	ctx := context.Background()
	repo := newCategoryRepo()

	for _, name := range []string{"Storage", "Abrasives", "Fasteners"} {
		_, err := repo.Create(ctx, name, "A perfectly valid description")
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 0, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Abrasives", page.Items[0]["name"])
	assert.Equal(t, "Fasteners", page.Items[1]["name"])
	assert.Equal(t, "Storage", page.Items[2]["name"])
}
