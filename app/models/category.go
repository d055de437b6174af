package models

import (
	"time"
)

type Category struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string    `gorm:"size:255;not null;uniqueIndex"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex"`
	Icon        string    `gorm:"size:255"`
	Description string    `gorm:"type:text"`
	Products    []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}
