package db_models

import (
	"time"

	"github.com/google/uuid"
)

type WorkoutLog struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index"`
	Date   time.Time `gorm:"type:date"`

	// Exercises exist only as children of their log; deleting the log
	// removes them.
	Exercises []WorkoutExercise `gorm:"constraint:OnDelete:CASCADE"`
}

type WorkoutExercise struct {
	BaseModel
	WorkoutLogID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Sets         int `gorm:"default:1"`
	Reps         int `gorm:"default:1"`
	Weight       *float64
	RPE          *float64 `gorm:"column:rpe"`
}
