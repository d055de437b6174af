package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/repositories"
)

// CatalogService owns the create/update/delete paths for categories and
// products. Slug assignment and SEO defaulting happen here, as explicit
// pre-insert steps, so neither is hidden inside a model save hook.
type CatalogService interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id string) error
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type catalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCatalogService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogService) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	assigned, err := AssignSlug(ctx, category.Name, s.categoryRepo.SlugExists)
	if err != nil {
		return err
	}
	category.Slug = assigned

	err = s.categoryRepo.Create(ctx, category)
	if repositories.IsDuplicateKey(err) {
		// Concurrent create picked the same slug first. Regenerate against
		// the fresh table state and retry once.
		log.Printf("CreateCategory: slug %q lost a create race, regenerating", category.Slug)
		assigned, slugErr := AssignSlug(ctx, category.Name, s.categoryRepo.SlugExists)
		if slugErr != nil {
			return slugErr
		}
		category.Slug = assigned
		err = s.categoryRepo.Create(ctx, category)
	}
	if err != nil {
		return fmt.Errorf("failed to create category %q: %w", category.Name, err)
	}
	return nil
}

// UpdateCategory persists edits. The slug is assigned once at creation and
// stays fixed even when the name changes.
func (s *catalogService) UpdateCategory(ctx context.Context, category *models.Category) error {
	return s.categoryRepo.Update(ctx, category)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	assigned, err := AssignSlug(ctx, product.Name, s.productRepo.SlugExists)
	if err != nil {
		return err
	}
	product.Slug = assigned
	ApplySEODefaults(product)

	err = s.productRepo.Create(ctx, product)
	if repositories.IsDuplicateKey(err) {
		log.Printf("CreateProduct: slug %q lost a create race, regenerating", product.Slug)
		assigned, slugErr := AssignSlug(ctx, product.Name, s.productRepo.SlugExists)
		if slugErr != nil {
			return slugErr
		}
		product.Slug = assigned
		err = s.productRepo.Create(ctx, product)
	}
	if err != nil {
		return fmt.Errorf("failed to create product %q: %w", product.Name, err)
	}
	return nil
}

// UpdateProduct persists edits without re-running slug assignment or SEO
// defaulting: both run exactly once, at creation.
func (s *catalogService) UpdateProduct(ctx context.Context, product *models.Product) error {
	return s.productRepo.Update(ctx, product)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
