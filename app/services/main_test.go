package services

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
	// A single connection keeps every test on the same in-memory database
	// and keeps the foreign_keys pragma in effect.
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)
	testDB.Exec("PRAGMA foreign_keys = ON")

	if err := migrations.AutoMigrate(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	os.Exit(m.Run())
}

// freshDB empties all tables so each test starts from a clean slate.
func freshDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDB.Exec("DELETE FROM product_clicks")
	testDB.Exec("DELETE FROM products")
	testDB.Exec("DELETE FROM categories")
	testDB.Exec("DELETE FROM users")
	return testDB
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      name + "-" + uuid.NewString()[:6],
		CreatedAt: time.Now(),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, category *models.Category, name string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:            uuid.NewString(),
		CategoryID:    category.ID,
		Name:          name,
		Slug:          name + "-" + uuid.NewString()[:6],
		Description:   "test description",
		Price:         decimal.NewFromInt(125000),
		AffiliateLink: "https://example-store.uz/item/42",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}
