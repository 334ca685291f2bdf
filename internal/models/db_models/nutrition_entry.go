package db_models

import (
	"time"

	"github.com/google/uuid"
)

type NutritionEntry struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	Meal     string
	Calories float64   `gorm:"default:0"`
	Protein  float64   `gorm:"default:0"`
	Carbs    float64   `gorm:"default:0"`
	Fat      float64   `gorm:"default:0"`
	Date     time.Time `gorm:"type:date;index"`
}
