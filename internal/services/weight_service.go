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

type WeightServiceInterface interface {
	SubmitWeight(ctx context.Context, req request_models.CreateWeightEntryRequest) (*response_models.WeightEntryResponse, error)
	GetWeightEntries(ctx context.Context, userID, start, end string) ([]response_models.WeightEntryResponse, error)
	DeleteWeightEntry(ctx context.Context, id string) error
}

type WeightService struct {
	weightRepo repositories.WeightEntryRepository
}

func NewWeightService(weightRepo repositories.WeightEntryRepository) WeightServiceInterface {
	return &WeightService{
		weightRepo: weightRepo,
	}
}

func (s *WeightService) SubmitWeight(ctx context.Context, req request_models.CreateWeightEntryRequest) (*response_models.WeightEntryResponse, error) {
	if req.UserID == "" || req.Weight == nil || req.Date == "" {
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

	entry := &db_models.WeightEntry{
		UserID: userID,
		Weight: *req.Weight,
		Date:   utils.TruncateToDay(date),
	}
	if err := s.weightRepo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := weightEntryResponse(entry)
	return &resp, nil
}

func (s *WeightService) GetWeightEntries(ctx context.Context, userID, start, end string) ([]response_models.WeightEntryResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingRequiredFields
	}

	var entries []db_models.WeightEntry
	if start != "" && end != "" {
		startDate, err := utils.ParseDate(start)
		if err != nil {
			return nil, err
		}
		endDate, err := utils.ParseDate(end)
		if err != nil {
			return nil, err
		}
		entries, err = s.weightRepo.FindByUserIdAndDateRange(ctx, uid, startDate, endDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	} else {
		entries, err = s.weightRepo.FindByUserId(ctx, uid)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}

	responses := make([]response_models.WeightEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, weightEntryResponse(&entries[i]))
	}
	return responses, nil
}

func (s *WeightService) DeleteWeightEntry(ctx context.Context, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrMissingRequiredFields
	}
	if err := s.weightRepo.DeleteById(ctx, entryID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func weightEntryResponse(entry *db_models.WeightEntry) response_models.WeightEntryResponse {
	return response_models.WeightEntryResponse{
		ID:        entry.ID.String(),
		UserID:    entry.UserID.String(),
		Weight:    entry.Weight,
		Date:      utils.FormatDate(entry.Date),
		CreatedAt: entry.CreatedAt,
	}
}
