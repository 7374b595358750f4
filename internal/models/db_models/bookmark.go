package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Bookmark stores a display snapshot of the destination so a bookmarks list
// renders without reloading the catalog.
type Bookmark struct {
	BaseModel
	ProfileID     uuid.UUID `gorm:"type:uuid;index"`
	DestinationID string    `gorm:"not null"`
	Title         string
	Region        string
	ImageNames    pq.StringArray `gorm:"type:text[]"`
}
