package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ibrohimdev/arzon-market/app/db/fakers"
	"github.com/ibrohimdev/arzon-market/app/helpers"
	"github.com/ibrohimdev/arzon-market/app/models"
	"gorm.io/gorm"
)

const (
	categoryCount        = 4
	productsPerCategory  = 6
	defaultAdminEmail    = "admin@arzon-market.uz"
	defaultAdminPassword = "admin123"
)

func DBSeed(db *gorm.DB) error {
	admin := &models.User{
		ID:        uuid.NewString(),
		FirstName: "Admin",
		Email:     defaultAdminEmail,
		Password:  helpers.HashPassword(defaultAdminPassword),
		Role:      "admin",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin user %s (password: %s)", defaultAdminEmail, defaultAdminPassword)

	for i := 0; i < categoryCount; i++ {
		category := fakers.CategoryFaker()
		if err := db.Create(category).Error; err != nil {
			return err
		}

		for j := 0; j < productsPerCategory; j++ {
			product := fakers.ProductFaker(category)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
