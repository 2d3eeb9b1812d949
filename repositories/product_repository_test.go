package repositories

import (
	"coffee-shop/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProductFilterQuery_Defaults(t *testing.T) {
	query, args := buildProductFilterQuery(models.ProductFilter{})

	assert.True(t, strings.HasSuffix(query, "WHERE is_active = true ORDER BY created_at DESC"), query)
	assert.Empty(t, args)
}

func TestBuildProductFilterQuery_AllConstraints(t *testing.T) {
	query, args := buildProductFilterQuery(models.ProductFilter{
		Search:    "  latte ",
		Category:  "Coffee",
		Type:      models.ProductTypeFlashSale,
		SortPrice: "desc",
		MinPrice:  10000,
		MaxPrice:  40000,
	})

	assert.Contains(t, query, "LOWER(name) LIKE LOWER($1)")
	assert.Contains(t, query, "LOWER(name) = LOWER($2)")
	assert.Contains(t, query, "price >= $3")
	assert.Contains(t, query, "price <= $4")
	assert.Contains(t, query, "is_flash_sale = true")
	assert.True(t, strings.HasSuffix(query, "ORDER BY price DESC"), query)
	assert.Equal(t, []any{"%latte%", "Coffee", int64(10000), int64(40000)}, args)
}

func TestBuildProductFilterQuery_FavoriteCategory(t *testing.T) {
	query, args := buildProductFilterQuery(models.ProductFilter{Category: "Favorite", Type: models.ProductTypeBuy1Get1})

	assert.Contains(t, query, "is_favorite = true")
	assert.Contains(t, query, "is_buy1get1 = true")
	assert.NotContains(t, query, "categories")
	assert.Empty(t, args)
}

func TestBuildProductFilterQuery_NameSortWins(t *testing.T) {
	query, _ := buildProductFilterQuery(models.ProductFilter{SortName: "asc", SortPrice: "desc"})

	assert.True(t, strings.HasSuffix(query, "ORDER BY name ASC"), query)
	assert.NotContains(t, query, "price DESC")
}

func TestBuildProductFilterQuery_UserInputNeverInlined(t *testing.T) {
	evil := "'; DROP TABLE products; --"
	query, args := buildProductFilterQuery(models.ProductFilter{Search: evil, Category: evil})

	assert.NotContains(t, query, "DROP TABLE")
	assert.Len(t, args, 2)
}
