package fakers

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/services"
	"github.com/shopspring/decimal"
)

func ProductFaker(category *models.Category) *models.Product {
	name := faker.Name()

	product := &models.Product{
		ID:            uuid.NewString(),
		CategoryID:    category.ID,
		Name:          name,
		Slug:          slug.Make(name + "-" + uuid.NewString()[:6]),
		Image:         "/images/products/default.jpg",
		Description:   faker.Paragraph(),
		Price:         decimal.NewFromFloat(fakePrice()),
		AffiliateLink: faker.URL(),
		Keywords:      faker.Word() + ", " + faker.Word() + ", " + faker.Word(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	services.ApplySEODefaults(product)

	return product
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(6)+2), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
