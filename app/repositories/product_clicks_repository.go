package repositories

import (
	"context"

	"github.com/ibrohimdev/arzon-market/app/models"
	"gorm.io/gorm"
)

// ProductClickRepositoryImpl is insert-and-read only. Click records are an
// immutable audit trail, so there are no update or delete methods.
type ProductClickRepositoryImpl interface {
	Create(ctx context.Context, click *models.ProductClick) error
	GetRecentPaginated(ctx context.Context, limit, offset int) ([]models.ProductClick, int64, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type productClickRepository struct {
	db *gorm.DB
}

func NewProductClickRepository(db *gorm.DB) ProductClickRepositoryImpl {
	return &productClickRepository{db: db}
}

func (r *productClickRepository) Create(ctx context.Context, click *models.ProductClick) error {
	return r.db.WithContext(ctx).Create(click).Error
}

func (r *productClickRepository) GetRecentPaginated(ctx context.Context, limit, offset int) ([]models.ProductClick, int64, error) {
	var clicks []models.ProductClick
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.ProductClick{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("clicked_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&clicks).Error

	return clicks, total, err
}

func (r *productClickRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.ProductClick{}).
		Where("product_id = ?", productID).
		Count(&total).Error
	return total, err
}

func (r *productClickRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.ProductClick{}).Count(&total).Error
	return total, err
}
