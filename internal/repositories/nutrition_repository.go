package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ironlog/internal/models/db_models"
	"ironlog/internal/models/response_models"
)

type NutritionEntryRepository interface {
	Insert(ctx context.Context, entry *db_models.NutritionEntry) error
	FindByUserId(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionEntry, error)
	FindByUserIdAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]db_models.NutritionEntry, error)
	DailyTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]response_models.DailyTotals, error)
	DeleteById(ctx context.Context, id uuid.UUID) error
}

type nutritionEntryRepository struct {
	db *gorm.DB
}

func NewNutritionEntryRepository(db *gorm.DB) NutritionEntryRepository {
	return &nutritionEntryRepository{
		db: db,
	}
}

func (r *nutritionEntryRepository) Insert(ctx context.Context, entry *db_models.NutritionEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *nutritionEntryRepository) FindByUserId(ctx context.Context, userID uuid.UUID) ([]db_models.NutritionEntry, error) {
	var entries []db_models.NutritionEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *nutritionEntryRepository) FindByUserIdAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]db_models.NutritionEntry, error) {
	var entries []db_models.NutritionEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

type dailyTotalsRow struct {
	Date          time.Time
	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64
}

func (r *nutritionEntryRepository) DailyTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]response_models.DailyTotals, error) {
	var rows []dailyTotalsRow
	err := r.db.WithContext(ctx).
		Model(&db_models.NutritionEntry{}).
		Select("date, SUM(calories) as total_calories, SUM(protein) as total_protein, SUM(carbs) as total_carbs, SUM(fat) as total_fat").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Group("date").
		Order("date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]response_models.DailyTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, response_models.DailyTotals{
			Date:          row.Date.Format("2006-01-02"),
			TotalCalories: row.TotalCalories,
			TotalProtein:  row.TotalProtein,
			TotalCarbs:    row.TotalCarbs,
			TotalFat:      row.TotalFat,
		})
	}
	return totals, nil
}

func (r *nutritionEntryRepository) DeleteById(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.NutritionEntry{}, "id = ?", id).Error
}
