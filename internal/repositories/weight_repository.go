package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ironlog/internal/models/db_models"
)

type WeightEntryRepository interface {
	Upsert(ctx context.Context, entry *db_models.WeightEntry) error
	FindByUserId(ctx context.Context, userID uuid.UUID) ([]db_models.WeightEntry, error)
	FindByUserIdAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.WeightEntry, error)
	DeleteById(ctx context.Context, id uuid.UUID) error
}

type weightEntryRepository struct {
	db *gorm.DB
}

func NewWeightEntryRepository(db *gorm.DB) WeightEntryRepository {
	return &weightEntryRepository{
		db: db,
	}
}

// Upsert inserts the entry, or overwrites the weight when the user already
// logged one for that date. A soft-deleted row for the day is revived.
func (r *weightEntryRepository) Upsert(ctx context.Context, entry *db_models.WeightEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight", "updated_at", "deleted_at"}),
		}).
		Create(entry).Error
}

func (r *weightEntryRepository) FindByUserId(ctx context.Context, userID uuid.UUID) ([]db_models.WeightEntry, error) {
	var entries []db_models.WeightEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *weightEntryRepository) FindByUserIdAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.WeightEntry, error) {
	var entries []db_models.WeightEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *weightEntryRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.WeightEntry{}, "id = ?", id).Error
}
