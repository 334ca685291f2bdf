package request_models

// ExerciseInput carries one exercise row of a workout submission. Sets and
// reps default to 1 when omitted; weight and rpe stay null.
type ExerciseInput struct {
	Name   string   `json:"name"`
	Sets   int      `json:"sets"`
	Reps   int      `json:"reps"`
	Weight *float64 `json:"weight"`
	RPE    *float64 `json:"rpe"`
}

// CreateWorkoutLogRequest requires userId, date and an exercises array.
// A nil Exercises means the field was absent; an empty array is valid.
type CreateWorkoutLogRequest struct {
	UserID    string          `json:"userId"`
	Date      string          `json:"date"`
	Exercises []ExerciseInput `json:"exercises"`
}
