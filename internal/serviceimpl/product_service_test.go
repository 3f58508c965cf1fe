package serviceimpl_test

import (
	"context"
	"testing"

	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/response"
	"github.com/PayRam/go-storefront/service"
	"github.com/PayRam/go-storefront/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productNames(products []response.ProductView) []string {
	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}
	return names
}

func TestProductViewCarriesCategoryNames(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	c := seedCatalogue(t, store)

	product := createProduct(t, store, c, "Air Run Shoe", "Nike", "red", "sneakers")
	assert.False(t, product.Date.IsZero(), "date defaults to now")

	view, err := store.Products.GetProduct(ctx, product.Seq)
	require.NoError(t, err)
	assert.Equal(t, "Air Run Shoe", view.Name)
	assert.Equal(t, "red", view.Color)
	assert.Equal(t, "270", view.Size)
	assert.Equal(t, "unisex", view.Gender)
	assert.Equal(t, "Nike", view.Maker)
	assert.Equal(t, "sneakers", view.Kind)
	assert.Equal(t, 129000, view.Price)

	views, total, err := store.Products.ListProducts(ctx, request.PaginationConditions{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []string{"Air Run Shoe"}, productNames(views))
}

func TestSearchProducts(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	c := seedCatalogue(t, store)

	createProduct(t, store, c, "Air Run Shoe", "Nike", "red", "sneakers")
	createProduct(t, store, c, "Trail Boot", "Nike", "black", "boots")
	createProduct(t, store, c, "Run Fast", "Adidas", "red", "sneakers")

	testCases := []struct {
		name     string
		req      request.ProductSearchRequest
		expected []string
	}{
		{
			name:     "no filters",
			req:      request.ProductSearchRequest{},
			expected: []string{"Air Run Shoe", "Trail Boot", "Run Fast"},
		},
		{
			name:     "blank filters are ignored",
			req:      request.ProductSearchRequest{Maker: utils.StringPtr(" "), Keywords: utils.StringPtr("\t"), Color: utils.StringPtr("")},
			expected: []string{"Air Run Shoe", "Trail Boot", "Run Fast"},
		},
		{
			name:     "maker, keywords and color",
			req:      request.ProductSearchRequest{Maker: utils.StringPtr("Nike"), Keywords: utils.StringPtr("shoe run"), Color: utils.StringPtr("red")},
			expected: []string{"Air Run Shoe"},
		},
		{
			name:     "any keyword matches",
			req:      request.ProductSearchRequest{Keywords: utils.StringPtr("boot fast")},
			expected: []string{"Trail Boot", "Run Fast"},
		},
		{
			name:     "color only",
			req:      request.ProductSearchRequest{Color: utils.StringPtr("red")},
			expected: []string{"Air Run Shoe", "Run Fast"},
		},
		{
			name:     "kind only",
			req:      request.ProductSearchRequest{Kind: utils.StringPtr("boots")},
			expected: []string{"Trail Boot"},
		},
		{
			name:     "no match",
			req:      request.ProductSearchRequest{Maker: utils.StringPtr("Puma")},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products, total, err := store.Products.SearchProducts(ctx, tc.req)
			require.NoError(t, err)
			assert.EqualValues(t, len(tc.expected), total)
			assert.Equal(t, tc.expected, productNames(products))
		})
	}
}

func TestSearchProductsTreatsInputAsData(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	c := seedCatalogue(t, store)
	createProduct(t, store, c, "Air Run Shoe", "Nike", "red", "sneakers")

	products, _, err := store.Products.SearchProducts(ctx, request.ProductSearchRequest{
		Maker:    utils.StringPtr("x' OR '1'='1"),
		Keywords: utils.StringPtr("'; DROP TABLE product; --"),
	})
	require.NoError(t, err)
	assert.Empty(t, products)

	_, total, err := store.Products.ListProducts(ctx, request.PaginationConditions{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestSearchProductsPagination(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	c := seedCatalogue(t, store)

	for _, name := range []string{"Run 1", "Run 2", "Run 3"} {
		createProduct(t, store, c, name, "Nike", "red", "sneakers")
	}

	products, total, err := store.Products.SearchProducts(ctx, request.ProductSearchRequest{
		Keywords:             utils.StringPtr("run"),
		PaginationConditions: request.PaginationConditions{Limit: utils.IntPtr(2), Order: utils.StringPtr("desc")},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"Run 3", "Run 2"}, productNames(products))
}

func TestUpdateProduct(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	c := seedCatalogue(t, store)
	product := createProduct(t, store, c, "Air Run Shoe", "Nike", "red", "sneakers")

	stock := 3
	updated, err := store.Products.UpdateProduct(ctx, product.Seq, request.UpdateProductRequest{
		Stock:    &stock,
		ColorSeq: utils.UintPtr(c.colors["black"]),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)

	view, err := store.Products.GetProduct(ctx, product.Seq)
	require.NoError(t, err)
	assert.Equal(t, "black", view.Color)

	_, err = store.Products.UpdateProduct(ctx, product.Seq, request.UpdateProductRequest{MakerSeq: utils.UintPtr(999)})
	assertKind(t, err, service.KindConstraintViolation)

	negative := -1
	_, err = store.Products.UpdateProduct(ctx, product.Seq, request.UpdateProductRequest{Price: &negative})
	assertKind(t, err, service.KindValidation)

	require.NoError(t, store.Products.DeleteProduct(ctx, product.Seq))
	assertKind(t, store.Products.DeleteProduct(ctx, product.Seq), service.KindNotFound)
}
