package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ironlog/internal/models/db_models"
)

type WorkoutPlanRepository interface {
	Upsert(ctx context.Context, plan *db_models.WorkoutPlan) error
	FindByUserId(ctx context.Context, userID uuid.UUID) (*db_models.WorkoutPlan, error)
	DeleteByUserId(ctx context.Context, userID uuid.UUID) error
}

type workoutPlanRepository struct {
	db *gorm.DB
}

func NewWorkoutPlanRepository(db *gorm.DB) WorkoutPlanRepository {
	return &workoutPlanRepository{
		db: db,
	}
}

// Upsert keeps one plan row per user; regenerating replaces goal,
// experience and payload in place.
func (r *workoutPlanRepository) Upsert(ctx context.Context, plan *db_models.WorkoutPlan) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"goal", "experience", "plan_data", "updated_at", "deleted_at"}),
		}).
		Create(plan).Error
}

func (r *workoutPlanRepository) FindByUserId(ctx context.Context, userID uuid.UUID) (*db_models.WorkoutPlan, error) {
	var plan db_models.WorkoutPlan
	err := r.db.WithContext(ctx).First(&plan, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (r *workoutPlanRepository) DeleteByUserId(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.WorkoutPlan{}, "user_id = ?", userID).Error
}
