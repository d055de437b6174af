package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllOrdersByName(t *testing.T) {
	db := freshDB(t)
	seedCategory(t, db, "Shoes", "shoes")
	seedCategory(t, db, "Accessories", "accessories")
	seedCategory(t, db, "Hats", "hats")

	repo := NewCategoryRepository(db)

	categories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Accessories", categories[0].Name)
	assert.Equal(t, "Hats", categories[1].Name)
	assert.Equal(t, "Shoes", categories[2].Name)
}

func TestGetAllWithProductCount(t *testing.T) {
	db := freshDB(t)
	shoes := seedCategory(t, db, "Shoes", "shoes")
	hats := seedCategory(t, db, "Hats", "hats")
	seedProductFull(t, db, shoes, productSeed{name: "Running Shoe"})
	seedProductFull(t, db, shoes, productSeed{name: "Trail Shoe"})

	repo := NewCategoryRepository(db)

	rows, err := repo.GetAllWithProductCount(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Name] = row.ProductCount
	}
	assert.Equal(t, int64(2), counts[shoes.Name])
	assert.Equal(t, int64(0), counts[hats.Name])
}

func TestCategoryGetBySlugNotFound(t *testing.T) {
	db := freshDB(t)
	repo := NewCategoryRepository(db)

	_, err := repo.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
