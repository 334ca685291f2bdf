package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ironlog/internal/models/db_models"
	"ironlog/internal/models/request_models"
	"ironlog/internal/models/response_models"
	"ironlog/pkg/utils"
)

type fakeNutritionRepo struct {
	entries []db_models.NutritionEntry
}

func (f *fakeNutritionRepo) Insert(_ context.Context, entry *db_models.NutritionEntry) error {
	entry.ID = uuid.New()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeNutritionRepo) FindByUserId(_ context.Context, userID uuid.UUID) ([]db_models.NutritionEntry, error) {
	var out []db_models.NutritionEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeNutritionRepo) FindByUserIdAndDate(_ context.Context, userID uuid.UUID, date time.Time) ([]db_models.NutritionEntry, error) {
	var out []db_models.NutritionEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeNutritionRepo) DailyTotals(_ context.Context, userID uuid.UUID, start, end time.Time) ([]response_models.DailyTotals, error) {
	byDate := make(map[string]*response_models.DailyTotals)
	for _, e := range f.entries {
		if e.UserID != userID || e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		key := e.Date.Format("2006-01-02")
		tot, ok := byDate[key]
		if !ok {
			tot = &response_models.DailyTotals{Date: key}
			byDate[key] = tot
		}
		tot.TotalCalories += e.Calories
		tot.TotalProtein += e.Protein
		tot.TotalCarbs += e.Carbs
		tot.TotalFat += e.Fat
	}
	var out []response_models.DailyTotals
	for _, tot := range byDate {
		out = append(out, *tot)
	}
	return out, nil
}

func (f *fakeNutritionRepo) DeleteById(_ context.Context, id uuid.UUID) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func TestNutritionService_LogMealAppendsPerSubmission(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo)
	ctx := context.Background()

	userID := uuid.New().String()
	for i := 0; i < 3; i++ {
		_, err := svc.LogMeal(ctx, request_models.CreateNutritionEntryRequest{
			UserID:   userID,
			Meal:     "Chicken and rice",
			Calories: 600,
			Protein:  45,
			Carbs:    60,
			Fat:      12,
			Date:     "2025-06-01",
		})
		require.NoError(t, err)
	}

	// append-only: three submissions for the same day are three entries
	entries, err := svc.GetEntries(ctx, userID, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestNutritionService_MissingFields(t *testing.T) {
	svc := NewNutritionService(&fakeNutritionRepo{})
	ctx := context.Background()

	cases := []request_models.CreateNutritionEntryRequest{
		{Meal: "Oats", Date: "2025-06-01"},
		{UserID: uuid.New().String(), Date: "2025-06-01"},
		{UserID: uuid.New().String(), Meal: "Oats"},
	}
	for i, req := range cases {
		_, err := svc.LogMeal(ctx, req)
		require.ErrorIs(t, err, utils.ErrMissingRequiredFields, "case %d", i)
	}
}

func TestNutritionService_DailyTotals(t *testing.T) {
	repo := &fakeNutritionRepo{}
	svc := NewNutritionService(repo)
	ctx := context.Background()

	userID := uuid.New().String()
	meals := []request_models.CreateNutritionEntryRequest{
		{UserID: userID, Meal: "Breakfast", Calories: 400, Protein: 20, Carbs: 50, Fat: 10, Date: "2025-06-01"},
		{UserID: userID, Meal: "Dinner", Calories: 700, Protein: 50, Carbs: 60, Fat: 20, Date: "2025-06-01"},
		{UserID: userID, Meal: "Lunch", Calories: 500, Protein: 30, Carbs: 40, Fat: 15, Date: "2025-06-02"},
	}
	for _, m := range meals {
		_, err := svc.LogMeal(ctx, m)
		require.NoError(t, err)
	}

	totals, err := svc.GetDailyTotals(ctx, userID, "2025-06-01", "2025-06-02")
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byDate := map[string]response_models.DailyTotals{}
	for _, tot := range totals {
		byDate[tot.Date] = tot
	}
	require.Equal(t, 1100.0, byDate["2025-06-01"].TotalCalories)
	require.Equal(t, 70.0, byDate["2025-06-01"].TotalProtein)
	require.Equal(t, 500.0, byDate["2025-06-02"].TotalCalories)
}

func TestNutritionService_EstimateStub(t *testing.T) {
	svc := NewNutritionService(&fakeNutritionRepo{})

	estimate, err := svc.EstimateMeal(context.Background(), "chicken salad")
	require.NoError(t, err)
	require.Equal(t, "chicken salad", estimate.Meal)
	require.Equal(t, 500.0, estimate.Calories)
	require.Equal(t, 30.0, estimate.Protein)
	require.Equal(t, 50.0, estimate.Carbs)
	require.Equal(t, 15.0, estimate.Fat)

	_, err = svc.EstimateMeal(context.Background(), "")
	require.ErrorIs(t, err, utils.ErrMissingRequiredFields)
}
