package db_models

import (
	"time"

	"github.com/google/uuid"
)

// QuizResult is the persisted outcome of one completed quiz session.
// ProfileID is uuid.Nil when the player had no profile selected.
type QuizResult struct {
	BaseModel
	ProfileID     uuid.UUID `gorm:"type:uuid;index"`
	DestinationID string    `gorm:"not null"`
	Score         int
	Total         int
	CompletedAt   time.Time
}
