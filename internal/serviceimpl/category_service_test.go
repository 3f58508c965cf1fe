package serviceimpl_test

import (
	"context"
	"testing"

	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	c := seedCatalogue(t, store)

	colors, err := store.Categories.ListCategories(ctx, request.CategoryColor)
	require.NoError(t, err)
	require.Len(t, colors, 2)
	assert.Equal(t, "red", colors[0].Name)
	assert.Equal(t, c.colors["red"], colors[0].Seq)

	_, err = store.Categories.CreateCategory(ctx, request.CategoryColor, request.CreateCategoryRequest{Name: "red"})
	assertKind(t, err, service.KindConstraintViolation)

	_, err = store.Categories.ListCategories(ctx, request.CategoryKind("flavour"))
	assertKind(t, err, service.KindValidation)

	createProduct(t, store, c, "Trail Boot", "Nike", "black", "boots")
	assertKind(t, store.Categories.DeleteCategory(ctx, request.CategoryColor, c.colors["black"]), service.KindConstraintViolation)

	require.NoError(t, store.Categories.DeleteCategory(ctx, request.CategoryColor, c.colors["red"]))
	assertKind(t, store.Categories.DeleteCategory(ctx, request.CategoryColor, c.colors["red"]), service.KindNotFound)

	sizes, err := store.Categories.ListCategories(ctx, request.CategorySize)
	require.NoError(t, err)
	assert.Len(t, sizes, 1)
}
