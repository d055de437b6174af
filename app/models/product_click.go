package models

import (
	"time"
)

// UserAgentMaxLen is the column size for ProductClick.UserAgent. Longer
// values are truncated before insert.
const UserAgentMaxLen = 500

// ProductClick is an append-only audit row written on every affiliate
// redirect. The application never updates or deletes these.
type ProductClick struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string    `gorm:"size:36;not null;index"`
	Product   Product   `gorm:"foreignKey:ProductID"`
	IPAddress string    `gorm:"size:45;not null"`
	UserAgent string    `gorm:"size:500"`
	ClickedAt time.Time `gorm:"autoCreateTime;index"`
}
