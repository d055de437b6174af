package services

import (
	"strings"
	"testing"

	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplySEODefaultsTitle(t *testing.T) {
	product := &models.Product{
		Name:  "Blue Hat",
		Price: decimal.NewFromInt(50000),
	}

	ApplySEODefaults(product)

	assert.Equal(t, "Blue Hat - Arzon narxda xarid qiling", product.MetaTitle)
}

func TestApplySEODefaultsDescription(t *testing.T) {
	product := &models.Product{
		Name:        "Blue Hat",
		Description: "<p>Issiq va <b>yumshoq</b> bosh kiyim</p>",
		Price:       decimal.NewFromFloat(125000.50),
	}

	ApplySEODefaults(product)

	assert.Equal(t, "Issiq va yumshoq bosh kiyim. Narxi: 125000.50 so'm.", product.MetaDescription)
}

func TestApplySEODefaultsTruncatesDescription(t *testing.T) {
	product := &models.Product{
		Name:        "Blue Hat",
		Description: strings.Repeat("a", 200),
		Price:       decimal.NewFromInt(100),
	}

	ApplySEODefaults(product)

	assert.Equal(t, strings.Repeat("a", 150)+". Narxi: 100.00 so'm.", product.MetaDescription)
}

func TestApplySEODefaultsKeepsExistingFields(t *testing.T) {
	product := &models.Product{
		Name:            "Blue Hat",
		Description:     "something new",
		Price:           decimal.NewFromInt(100),
		MetaTitle:       "Custom title",
		MetaDescription: "Custom description",
	}

	ApplySEODefaults(product)

	assert.Equal(t, "Custom title", product.MetaTitle)
	assert.Equal(t, "Custom description", product.MetaDescription)
}

func TestApplySEODefaultsNotRecomputedAfterRename(t *testing.T) {
	product := &models.Product{
		Name:  "Blue Hat",
		Price: decimal.NewFromInt(100),
	}
	ApplySEODefaults(product)

	// Editing the name later must not change the already-set fields.
	product.Name = "Green Hat"
	ApplySEODefaults(product)

	assert.Equal(t, "Blue Hat - Arzon narxda xarid qiling", product.MetaTitle)
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Great hat", StripTags("<p>Great <b>hat</b></p>"))
	assert.Equal(t, "plain", StripTags("plain"))
	assert.Equal(t, "", StripTags("<br/>"))
}
