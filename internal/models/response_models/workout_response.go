package response_models

type ExerciseResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Sets   int      `json:"sets"`
	Reps   int      `json:"reps"`
	Weight *float64 `json:"weight"`
	RPE    *float64 `json:"rpe"`
}

type WorkoutLogResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Date      string             `json:"date"`
	CreatedAt int64              `json:"createdAt"`
	Exercises []ExerciseResponse `json:"exercises"`
}
