package db_models

import (
	"time"

	"github.com/google/uuid"
)

// WeightEntry keeps one weight per user per day; a second submission for the
// same day overwrites the first.
type WeightEntry struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_weight_user_date"`
	Weight float64
	Date   time.Time `gorm:"type:date;uniqueIndex:idx_weight_user_date"`
}
