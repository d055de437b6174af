package repositories

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/models/migrations"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)
	testDB.Exec("PRAGMA foreign_keys = ON")

	if err := migrations.AutoMigrate(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	os.Exit(m.Run())
}

func freshDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDB.Exec("DELETE FROM product_clicks")
	testDB.Exec("DELETE FROM products")
	testDB.Exec("DELETE FROM categories")
	testDB.Exec("DELETE FROM users")
	return testDB
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

type productSeed struct {
	name        string
	description string
	keywords    string
	createdAt   time.Time
}

func seedProductFull(t *testing.T, db *gorm.DB, category *models.Category, seed productSeed) *models.Product {
	t.Helper()
	if seed.createdAt.IsZero() {
		seed.createdAt = time.Now()
	}
	product := &models.Product{
		ID:            uuid.NewString(),
		CategoryID:    category.ID,
		Name:          seed.name,
		Slug:          seed.name + "-" + uuid.NewString()[:6],
		Description:   seed.description,
		Keywords:      seed.keywords,
		Price:         decimal.NewFromInt(100000),
		AffiliateLink: "https://example-store.uz/item/1",
		CreatedAt:     seed.createdAt,
		UpdatedAt:     seed.createdAt,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}
