package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ironlog/internal/models/db_models"
	"ironlog/internal/models/request_models"
	"ironlog/internal/models/response_models"
	"ironlog/internal/repositories"
	"ironlog/pkg/utils"
)

type NutritionServiceInterface interface {
	LogMeal(ctx context.Context, req request_models.CreateNutritionEntryRequest) (*response_models.NutritionEntryResponse, error)
	GetEntries(ctx context.Context, userID, date string) ([]response_models.NutritionEntryResponse, error)
	GetDailyTotals(ctx context.Context, userID, start, end string) ([]response_models.DailyTotals, error)
	EstimateMeal(ctx context.Context, meal string) (*response_models.NutritionEstimate, error)
	DeleteEntry(ctx context.Context, id string) error
}

type NutritionService struct {
	nutritionRepo repositories.NutritionEntryRepository
}

func NewNutritionService(nutritionRepo repositories.NutritionEntryRepository) NutritionServiceInterface {
	return &NutritionService{
		nutritionRepo: nutritionRepo,
	}
}

func (s *NutritionService) LogMeal(ctx context.Context, req request_models.CreateNutritionEntryRequest) (*response_models.NutritionEntryResponse, error) {
	if req.UserID == "" || req.Meal == "" || req.Date == "" {
		return nil, utils.ErrMissingRequiredFields
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrMissingRequiredFields
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &db_models.NutritionEntry{
		UserID:   userID,
		Meal:     req.Meal,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Date:     date,
	}
	if err := s.nutritionRepo.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := nutritionEntryResponse(entry)
	return &resp, nil
}

func (s *NutritionService) GetEntries(ctx context.Context, userID, date string) ([]response_models.NutritionEntryResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingRequiredFields
	}

	var entries []db_models.NutritionEntry
	if date != "" {
		day, err := utils.ParseDate(date)
		if err != nil {
			return nil, err
		}
		entries, err = s.nutritionRepo.FindByUserIdAndDate(ctx, uid, day)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	} else {
		entries, err = s.nutritionRepo.FindByUserId(ctx, uid)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}

	responses := make([]response_models.NutritionEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, nutritionEntryResponse(&entries[i]))
	}
	return responses, nil
}

func (s *NutritionService) GetDailyTotals(ctx context.Context, userID, start, end string) ([]response_models.DailyTotals, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingRequiredFields
	}
	if start == "" || end == "" {
		return nil, utils.ErrMissingRequiredFields
	}
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate(end)
	if err != nil {
		return nil, err
	}

	totals, err := s.nutritionRepo.DailyTotals(ctx, uid, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return totals, nil
}

// EstimateMeal is a stub: the prototype client expects a fixed macro
// breakdown for any meal description.
func (s *NutritionService) EstimateMeal(ctx context.Context, meal string) (*response_models.NutritionEstimate, error) {
	if meal == "" {
		return nil, utils.ErrMissingRequiredFields
	}

	return &response_models.NutritionEstimate{
		Meal:     meal,
		Calories: 500,
		Protein:  30,
		Carbs:    50,
		Fat:      15,
	}, nil
}

func (s *NutritionService) DeleteEntry(ctx context.Context, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrMissingRequiredFields
	}
	if err := s.nutritionRepo.DeleteById(ctx, entryID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func nutritionEntryResponse(entry *db_models.NutritionEntry) response_models.NutritionEntryResponse {
	return response_models.NutritionEntryResponse{
		ID:        entry.ID.String(),
		UserID:    entry.UserID.String(),
		Meal:      entry.Meal,
		Calories:  entry.Calories,
		Protein:   entry.Protein,
		Carbs:     entry.Carbs,
		Fat:       entry.Fat,
		Date:      utils.FormatDate(entry.Date),
		CreatedAt: entry.CreatedAt,
	}
}
