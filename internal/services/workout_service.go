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

type WorkoutServiceInterface interface {
	CreateWorkoutLog(ctx context.Context, req request_models.CreateWorkoutLogRequest) (*response_models.WorkoutLogResponse, error)
	GetWorkoutLogs(ctx context.Context, userID string) ([]response_models.WorkoutLogResponse, error)
	DeleteWorkoutLog(ctx context.Context, id string) error
}

type WorkoutService struct {
	workoutRepo repositories.WorkoutLogRepository
}

func NewWorkoutService(workoutRepo repositories.WorkoutLogRepository) WorkoutServiceInterface {
	return &WorkoutService{
		workoutRepo: workoutRepo,
	}
}

func (s *WorkoutService) CreateWorkoutLog(ctx context.Context, req request_models.CreateWorkoutLogRequest) (*response_models.WorkoutLogResponse, error) {
	// A nil exercises slice means the field was absent from the request;
	// an explicit empty array is a valid rest-day log.
	if req.UserID == "" || req.Date == "" || req.Exercises == nil {
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

	log := &db_models.WorkoutLog{
		UserID:    userID,
		Date:      date,
		Exercises: make([]db_models.WorkoutExercise, 0, len(req.Exercises)),
	}
	for _, in := range req.Exercises {
		sets := in.Sets
		if sets == 0 {
			sets = 1
		}
		reps := in.Reps
		if reps == 0 {
			reps = 1
		}
		log.Exercises = append(log.Exercises, db_models.WorkoutExercise{
			Name:   in.Name,
			Sets:   sets,
			Reps:   reps,
			Weight: in.Weight,
			RPE:    in.RPE,
		})
	}

	if err := s.workoutRepo.InsertWithExercises(ctx, log); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := workoutLogResponse(log)
	return &resp, nil
}

func (s *WorkoutService) GetWorkoutLogs(ctx context.Context, userID string) ([]response_models.WorkoutLogResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingRequiredFields
	}

	logs, err := s.workoutRepo.FindByUserId(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	responses := make([]response_models.WorkoutLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, workoutLogResponse(&logs[i]))
	}
	return responses, nil
}

func (s *WorkoutService) DeleteWorkoutLog(ctx context.Context, id string) error {
	logID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrMissingRequiredFields
	}
	if err := s.workoutRepo.DeleteById(ctx, logID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func workoutLogResponse(log *db_models.WorkoutLog) response_models.WorkoutLogResponse {
	// Exercises must serialize as [], never null.
	exercises := make([]response_models.ExerciseResponse, 0, len(log.Exercises))
	for _, ex := range log.Exercises {
		exercises = append(exercises, response_models.ExerciseResponse{
			ID:     ex.ID.String(),
			Name:   ex.Name,
			Sets:   ex.Sets,
			Reps:   ex.Reps,
			Weight: ex.Weight,
			RPE:    ex.RPE,
		})
	}

	return response_models.WorkoutLogResponse{
		ID:        log.ID.String(),
		UserID:    log.UserID.String(),
		Date:      utils.FormatDate(log.Date),
		CreatedAt: log.CreatedAt,
		Exercises: exercises,
	}
}
