package models

import (
	"time"
)

type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:20;not null;default:'admin'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
