package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ironlog/internal/models/db_models"
	"ironlog/internal/models/response_models"
	"ironlog/internal/repositories"
	"ironlog/pkg/utils"
)

// staticWeekPlan is served whenever no AI provider is configured or the
// provider call fails.
const staticWeekPlan = `Monday: Full body circuit (3 rounds)
  - Squats: 15 reps
  - Push-ups: 12 reps
  - Lunges: 10 reps per leg
  - Plank: 30 seconds

Tuesday: Rest or light cardio 20-30 minutes

Wednesday: Upper body
  - Dumbbell bench press: 3x12
  - Bent-over row: 3x12
  - Shoulder press: 3x12
  - Bicep curls: 3x15

Thursday: Rest

Friday: Lower body
  - Deadlift: 3x10
  - Bulgarian split squats: 3x12 per leg
  - Leg curls: 3x15
  - Calf raises: 3x20

Saturday: Core & conditioning
  - Mountain climbers: 3x30 seconds
  - Russian twists: 3x20
  - Bicycle crunches: 3x20
  - Jump rope or brisk walk: 15 minutes

Sunday: Rest or active recovery (yoga, stretching)`

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, goal, experience, userID string) (*response_models.GeneratedPlan, error)
	GetPlan(ctx context.Context, userID string) (*response_models.WorkoutPlanResponse, error)
}

type PlanService struct {
	planRepo repositories.WorkoutPlanRepository
	planner  utils.PlannerClientInterface
}

// NewPlanService wires the generator. A nil planner is valid and means no
// credential was configured: every request gets the static plan.
func NewPlanService(planRepo repositories.WorkoutPlanRepository, planner utils.PlannerClientInterface) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
		planner:  planner,
	}
}

func (s *PlanService) GeneratePlan(ctx context.Context, goal, experience, userID string) (*response_models.GeneratedPlan, error) {
	if goal == "" {
		goal = "general fitness"
	}
	if experience == "" {
		experience = "beginner"
	}

	plan := s.generate(ctx, goal, experience)

	// Persist only when the caller identified themselves; anonymous plan
	// requests are still served.
	if userID != "" {
		uid, err := uuid.Parse(userID)
		if err != nil {
			return nil, utils.ErrMissingRequiredFields
		}
		data, err := json.Marshal(db_models.PlanData{Source: plan.Source, Content: plan.Content})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		row := &db_models.WorkoutPlan{
			UserID:     uid,
			Goal:       goal,
			Experience: experience,
			PlanData:   data,
		}
		if err := s.planRepo.Upsert(ctx, row); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
	}

	return plan, nil
}

// generate tries the AI provider once and falls back to the static plan on
// any failure. Provider errors never surface to the client.
func (s *PlanService) generate(ctx context.Context, goal, experience string) *response_models.GeneratedPlan {
	if s.planner != nil {
		text, err := s.planner.GeneratePlanText(ctx, goal, experience)
		if err == nil && text != "" {
			return &response_models.GeneratedPlan{
				Source:  db_models.PlanSourceAI,
				Content: text,
			}
		}
		zap.L().Warn("plan generation failed, falling back to static plan", zap.Error(err))
	}

	return &response_models.GeneratedPlan{
		Source:  db_models.PlanSourceStatic,
		Content: staticWeekPlan,
	}
}

func (s *PlanService) GetPlan(ctx context.Context, userID string) (*response_models.WorkoutPlanResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrMissingRequiredFields
	}

	row, err := s.planRepo.FindByUserId(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if row == nil {
		return nil, utils.ErrPlanNotFound
	}

	var data db_models.PlanData
	if err := json.Unmarshal(row.PlanData, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.WorkoutPlanResponse{
		ID:         row.ID.String(),
		UserID:     row.UserID.String(),
		Goal:       row.Goal,
		Experience: row.Experience,
		Plan: response_models.GeneratedPlan{
			Source:  data.Source,
			Content: data.Content,
		},
		UpdatedAt: row.UpdatedAt,
	}, nil
}
