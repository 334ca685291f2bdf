package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Plan payload origins.
const (
	PlanSourceAI     = "ai"
	PlanSourceStatic = "static"
)

// PlanData is the typed plan payload stored in the jsonb column. Source is
// either "ai" or "static"; Content is the plan text verbatim.
type PlanData struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// WorkoutPlan holds the single generated plan per user; regeneration
// overwrites the prior row.
type WorkoutPlan struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Goal       string
	Experience string
	PlanData   datatypes.JSON `gorm:"type:jsonb"`
}
