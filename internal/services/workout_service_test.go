package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ironlog/internal/models/db_models"
	"ironlog/internal/models/request_models"
	"ironlog/pkg/utils"
)

type fakeWorkoutRepo struct {
	logs    []db_models.WorkoutLog
	failErr error
}

func (f *fakeWorkoutRepo) InsertWithExercises(_ context.Context, log *db_models.WorkoutLog) error {
	// the real repository is transactional: on failure nothing is stored
	if f.failErr != nil {
		return f.failErr
	}
	log.ID = uuid.New()
	for i := range log.Exercises {
		log.Exercises[i].ID = uuid.New()
		log.Exercises[i].WorkoutLogID = log.ID
	}
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeWorkoutRepo) FindByUserId(_ context.Context, userID uuid.UUID) ([]db_models.WorkoutLog, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	var out []db_models.WorkoutLog
	for _, l := range f.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) DeleteById(_ context.Context, id uuid.UUID) error {
	if f.failErr != nil {
		return f.failErr
	}
	kept := f.logs[:0]
	for _, l := range f.logs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	f.logs = kept
	return nil
}

func TestWorkoutService_CreateAndReadBack(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo)
	ctx := context.Background()

	userID := uuid.New().String()
	weight := 100.0
	rpe := 8.5

	created, err := svc.CreateWorkoutLog(ctx, request_models.CreateWorkoutLogRequest{
		UserID: userID,
		Date:   "2025-06-01",
		Exercises: []request_models.ExerciseInput{
			{Name: "Squat", Sets: 5, Reps: 5, Weight: &weight, RPE: &rpe},
			{Name: "Plank"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Exercises, 2)

	logs, err := svc.GetWorkoutLogs(ctx, userID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "2025-06-01", logs[0].Date)
	require.Len(t, logs[0].Exercises, 2)

	squat := logs[0].Exercises[0]
	require.Equal(t, "Squat", squat.Name)
	require.Equal(t, 5, squat.Sets)
	require.Equal(t, 5, squat.Reps)
	require.Equal(t, &weight, squat.Weight)
	require.Equal(t, &rpe, squat.RPE)

	// omitted sets/reps default to 1, weight/rpe stay null
	plank := logs[0].Exercises[1]
	require.Equal(t, 1, plank.Sets)
	require.Equal(t, 1, plank.Reps)
	require.Nil(t, plank.Weight)
	require.Nil(t, plank.RPE)
}

func TestWorkoutService_EmptyExerciseListIsValid(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := NewWorkoutService(repo)
	ctx := context.Background()

	userID := uuid.New().String()
	created, err := svc.CreateWorkoutLog(ctx, request_models.CreateWorkoutLogRequest{
		UserID:    userID,
		Date:      "2025-06-01",
		Exercises: []request_models.ExerciseInput{},
	})
	require.NoError(t, err)
	require.NotNil(t, created.Exercises)
	require.Empty(t, created.Exercises)

	logs, err := svc.GetWorkoutLogs(ctx, userID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].Exercises, "exercises must be an empty list, not null")
	require.Empty(t, logs[0].Exercises)
}

func TestWorkoutService_MissingFields(t *testing.T) {
	svc := NewWorkoutService(&fakeWorkoutRepo{})
	ctx := context.Background()

	cases := []request_models.CreateWorkoutLogRequest{
		{Date: "2025-06-01", Exercises: []request_models.ExerciseInput{}},
		{UserID: uuid.New().String(), Exercises: []request_models.ExerciseInput{}},
		{UserID: uuid.New().String(), Date: "2025-06-01"}, // exercises field absent
		{UserID: "not-a-uuid", Date: "2025-06-01", Exercises: []request_models.ExerciseInput{}},
	}
	for i, req := range cases {
		_, err := svc.CreateWorkoutLog(ctx, req)
		require.ErrorIs(t, err, utils.ErrMissingRequiredFields, "case %d", i)
	}
}

func TestWorkoutService_BadDate(t *testing.T) {
	svc := NewWorkoutService(&fakeWorkoutRepo{})

	_, err := svc.CreateWorkoutLog(context.Background(), request_models.CreateWorkoutLogRequest{
		UserID:    uuid.New().String(),
		Date:      "June 1st",
		Exercises: []request_models.ExerciseInput{},
	})
	require.ErrorIs(t, err, utils.ErrInvalidDate)
}

func TestWorkoutService_InsertFailureLeavesNothing(t *testing.T) {
	repo := &fakeWorkoutRepo{failErr: errors.New("constraint violation")}
	svc := NewWorkoutService(repo)
	ctx := context.Background()

	userID := uuid.New().String()
	_, err := svc.CreateWorkoutLog(ctx, request_models.CreateWorkoutLogRequest{
		UserID:    userID,
		Date:      "2025-06-01",
		Exercises: []request_models.ExerciseInput{{Name: "Squat"}},
	})
	require.ErrorIs(t, err, utils.ErrDatabaseError)
	require.Empty(t, repo.logs)
}
