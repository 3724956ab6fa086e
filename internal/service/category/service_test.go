package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service/category"
)

func TestCategoryService(t *testing.T) {
	repos := repository.NewRepositories()
	svc := category.NewService(repos.Category)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateCategoryInput{
		Name:        "Electronics",
		Description: "Phones, laptops, tablets",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	t.Run("duplicate name rejected case-insensitively", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateCategoryInput{
			Name:        "electronics",
			Description: "dup",
		})
		assert.ErrorIs(t, err, category.ErrCategoryExists)
	})

	t.Run("list", func(t *testing.T) {
		categories, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 1)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID))
		assert.ErrorIs(t, svc.Delete(ctx, created.ID), category.ErrCategoryNotFound)
	})
}
