package fakers

import (
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/ibrohimdev/arzon-market/app/models"
)

func CategoryFaker() *models.Category {
	name := faker.Word() + " " + faker.Word()

	return &models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        slug.Make(name + "-" + uuid.NewString()[:6]),
		Icon:        "/images/categories/default.png",
		Description: faker.Sentence(),
		CreatedAt:   time.Now(),
	}
}
