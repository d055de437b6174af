package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/repositories"
)

// TrackerService records the two interaction counters: detail-page views
// and affiliate-link clicks.
type TrackerService interface {
	RecordView(ctx context.Context, productID string) (*models.Product, error)
	TrackClick(ctx context.Context, productID, ipAddress, userAgent string) (string, error)
}

type trackerService struct {
	productRepo repositories.ProductRepositoryImpl
	clickRepo   repositories.ProductClickRepositoryImpl
}

func NewTrackerService(productRepo repositories.ProductRepositoryImpl, clickRepo repositories.ProductClickRepositoryImpl) TrackerService {
	return &trackerService{
		productRepo: productRepo,
		clickRepo:   clickRepo,
	}
}

// RecordView bumps the product's view counter by one and returns the
// product with the new count. Every fetch counts; there is no per-viewer
// deduplication. Only the views column is written.
func (s *trackerService) RecordView(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.IncrementViews(ctx, productID); err != nil {
		return nil, err
	}
	product.Views++
	return product, nil
}

// TrackClick appends a click record and bumps the click counter, then
// returns the affiliate URL to redirect to. The two writes are
// independent: a failure of either is logged and swallowed, because losing
// an audit row or a counter tick is tolerable but losing the redirect is
// not.
func (s *trackerService) TrackClick(ctx context.Context, productID, ipAddress, userAgent string) (string, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}

	click := &models.ProductClick{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		IPAddress: ipAddress,
		UserAgent: truncate(userAgent, models.UserAgentMaxLen),
	}
	if err := s.clickRepo.Create(ctx, click); err != nil {
		log.Printf("TrackClick: failed to store click record for product %s: %v", product.ID, err)
	}

	if err := s.productRepo.IncrementClicks(ctx, product.ID); err != nil {
		log.Printf("TrackClick: failed to increment click counter for product %s: %v", product.ID, err)
	}

	return product.AffiliateLink, nil
}

// truncate cuts by runes, not bytes, so the boundary never splits a
// multi-byte character into invalid UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
