package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ironlog/internal/models/db_models"
)

type WorkoutLogRepository interface {
	InsertWithExercises(ctx context.Context, log *db_models.WorkoutLog) error
	FindByUserId(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutLog, error)
	DeleteById(ctx context.Context, id uuid.UUID) error
}

type workoutLogRepository struct {
	db *gorm.DB
}

func NewWorkoutLogRepository(db *gorm.DB) WorkoutLogRepository {
	return &workoutLogRepository{
		db: db,
	}
}

// InsertWithExercises writes the log row and its exercise rows as one unit.
// Any failing insert rolls back the whole thing and the error propagates.
func (r *workoutLogRepository) InsertWithExercises(ctx context.Context, log *db_models.WorkoutLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exercises := log.Exercises
		log.Exercises = nil

		if err := tx.Create(log).Error; err != nil {
			return err
		}

		for i := range exercises {
			exercises[i].WorkoutLogID = log.ID
			if err := tx.Create(&exercises[i]).Error; err != nil {
				return err
			}
		}

		log.Exercises = exercises
		return nil
	})
}

func (r *workoutLogRepository) FindByUserId(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutLog, error) {
	var logs []db_models.WorkoutLog
	err := r.db.WithContext(ctx).
		Preload("Exercises").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *workoutLogRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Select("Exercises").
		Delete(&db_models.WorkoutLog{BaseModel: db_models.BaseModel{ID: id}}).Error
}
