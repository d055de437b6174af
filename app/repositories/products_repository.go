package repositories

import (
	"context"
	"strings"

	"github.com/ibrohimdev/arzon-market/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetLatest(ctx context.Context, limit int) ([]models.Product, error)
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	GetByCategorySlugPaginated(ctx context.Context, slug string, limit, offset int) ([]models.Product, int64, error)
	GetRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]models.Product, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

// Update writes the product's own columns only. Associations are omitted
// so a Category struct preloaded by GetByID cannot overwrite an edited
// category_id during save.
func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (p *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetLatest(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetByCategorySlugPaginated(ctx context.Context, slug string, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	base := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("c.slug = ?", slug)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("c.slug = ?", slug).
		Preload("Category").
		Order("products.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// SearchPaginated matches the keyword as a case-insensitive substring of
// name, description or keywords. A blank keyword matches nothing rather
// than everything.
func (p *productRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.Product, int64, error) {
	if strings.TrimSpace(keyword) == "" {
		return []models.Product{}, 0, nil
	}

	var products []models.Product
	var total int64
	searchKeyword := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
	condition := "LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(keywords) LIKE ?"

	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where(condition, searchKeyword, searchKeyword, searchKeyword).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Category").
		Where(condition, searchKeyword, searchKeyword, searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// IncrementViews bumps the view counter atomically in SQL. UpdateColumn
// skips hooks and leaves updated_at untouched.
func (p *productRepository) IncrementViews(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (p *productRepository) IncrementClicks(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1)).Error
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}
