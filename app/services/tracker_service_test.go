package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ibrohimdev/arzon-market/app/models"
	"github.com/ibrohimdev/arzon-market/app/models/migrations"
	"github.com/ibrohimdev/arzon-market/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordViewMonotonic(t *testing.T) {
	db := freshDB(t)
	category := seedCategory(t, db, "Hats")
	product := seedProduct(t, db, category, "Blue Hat")

	tracker := NewTrackerService(
		repositories.NewProductRepository(db),
		repositories.NewProductClickRepository(db),
	)

	const n = 5
	for i := 1; i <= n; i++ {
		got, err := tracker.RecordView(context.Background(), product.ID)
		require.NoError(t, err)
		assert.Equal(t, uint(i), got.Views)
	}

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, uint(n), stored.Views)
}

func TestRecordViewTouchesOnlyViews(t *testing.T) {
	db := freshDB(t)
	category := seedCategory(t, db, "Hats")
	product := seedProduct(t, db, category, "Blue Hat")

	var before models.Product
	require.NoError(t, db.First(&before, "id = ?", product.ID).Error)

	tracker := NewTrackerService(
		repositories.NewProductRepository(db),
		repositories.NewProductClickRepository(db),
	)
	_, err := tracker.RecordView(context.Background(), product.ID)
	require.NoError(t, err)

	var after models.Product
	require.NoError(t, db.First(&after, "id = ?", product.ID).Error)
	assert.Equal(t, before.UpdatedAt.UnixNano(), after.UpdatedAt.UnixNano())
	assert.Equal(t, before.MetaTitle, after.MetaTitle)
	assert.Equal(t, before.Clicks, after.Clicks)
}

func TestRecordViewUnknownProduct(t *testing.T) {
	db := freshDB(t)

	tracker := NewTrackerService(
		repositories.NewProductRepository(db),
		repositories.NewProductClickRepository(db),
	)

	_, err := tracker.RecordView(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestTrackClickRecordsAndRedirects(t *testing.T) {
	db := freshDB(t)
	category := seedCategory(t, db, "Hats")
	product := seedProduct(t, db, category, "Blue Hat")

	tracker := NewTrackerService(
		repositories.NewProductRepository(db),
		repositories.NewProductClickRepository(db),
	)

	target, err := tracker.TrackClick(context.Background(), product.ID, "203.0.113.7", "test-agent/1.0")
	require.NoError(t, err)
	assert.Equal(t, product.AffiliateLink, target)

	var clicks []models.ProductClick
	require.NoError(t, db.Find(&clicks, "product_id = ?", product.ID).Error)
	require.Len(t, clicks, 1)
	assert.Equal(t, "203.0.113.7", clicks[0].IPAddress)
	assert.Equal(t, "test-agent/1.0", clicks[0].UserAgent)
	assert.False(t, clicks[0].ClickedAt.IsZero())

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, uint(1), stored.Clicks)
}

func TestTrackClickTruncatesUserAgent(t *testing.T) {
	db := freshDB(t)
	category := seedCategory(t, db, "Hats")
	product := seedProduct(t, db, category, "Blue Hat")

	tracker := NewTrackerService(
		repositories.NewProductRepository(db),
		repositories.NewProductClickRepository(db),
	)

	longAgent := strings.Repeat("x", models.UserAgentMaxLen+100)
	_, err := tracker.TrackClick(context.Background(), product.ID, "203.0.113.7", longAgent)
	require.NoError(t, err)

	var click models.ProductClick
	require.NoError(t, db.First(&click, "product_id = ?", product.ID).Error)
	assert.Len(t, click.UserAgent, models.UserAgentMaxLen)
}

func TestTrackClickTruncationKeepsValidUTF8(t *testing.T) {
	db := freshDB(t)
	category := seedCategory(t, db, "Hats")
	product := seedProduct(t, db, category, "Blue Hat")

	tracker := NewTrackerService(
		repositories.NewProductRepository(db),
		repositories.NewProductClickRepository(db),
	)

	// A two-byte rune straddles the limit when counted in bytes.
	agent := strings.Repeat("x", models.UserAgentMaxLen-1) + "ё-browser"
	_, err := tracker.TrackClick(context.Background(), product.ID, "203.0.113.7", agent)
	require.NoError(t, err)

	var click models.ProductClick
	require.NoError(t, db.First(&click, "product_id = ?", product.ID).Error)
	assert.True(t, utf8.ValidString(click.UserAgent))
	assert.Equal(t, models.UserAgentMaxLen, utf8.RuneCountInString(click.UserAgent))
	assert.True(t, strings.HasSuffix(click.UserAgent, "ё"))
}

func TestTrackClickStillRedirectsWhenAuditInsertFails(t *testing.T) {
	db := freshDB(t)
	category := seedCategory(t, db, "Hats")
	product := seedProduct(t, db, category, "Blue Hat")

	tracker := NewTrackerService(
		repositories.NewProductRepository(db),
		repositories.NewProductClickRepository(db),
	)

	// Make the audit insert fail while the rest of the schema stays intact.
	require.NoError(t, db.Migrator().DropTable(&models.ProductClick{}))
	defer func() {
		if err := migrations.AutoMigrate(db); err != nil {
			t.Fatalf("failed to restore schema: %v", err)
		}
	}()

	target, err := tracker.TrackClick(context.Background(), product.ID, "203.0.113.7", "test-agent/1.0")
	require.NoError(t, err)
	assert.Equal(t, product.AffiliateLink, target)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, uint(1), stored.Clicks)
}

func TestTrackClickUnknownProduct(t *testing.T) {
	db := freshDB(t)

	tracker := NewTrackerService(
		repositories.NewProductRepository(db),
		repositories.NewProductClickRepository(db),
	)

	_, err := tracker.TrackClick(context.Background(), "no-such-id", "203.0.113.7", "test-agent/1.0")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var total int64
	db.Model(&models.ProductClick{}).Count(&total)
	assert.Zero(t, total)
}
