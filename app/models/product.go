package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID      string          `gorm:"size:36;not null;index"`
	Category        Category        `gorm:"foreignKey:CategoryID"`
	Name            string          `gorm:"size:255;not null"`
	Slug            string          `gorm:"size:255;not null;uniqueIndex"`
	Image           string          `gorm:"size:255"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AffiliateLink   string          `gorm:"size:500;not null"`
	MetaTitle       string          `gorm:"size:255"`
	MetaDescription string          `gorm:"type:text"`
	Keywords        string          `gorm:"size:500"`
	Views           uint            `gorm:"not null;default:0"`
	Clicks          uint            `gorm:"not null;default:0"`
	ClickRecords    []ProductClick  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
