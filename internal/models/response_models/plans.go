package response_models

// GeneratedPlan is the wire shape of a plan, whatever its origin.
type GeneratedPlan struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

type WorkoutPlanResponse struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	Goal       string        `json:"goal"`
	Experience string        `json:"experience"`
	Plan       GeneratedPlan `json:"plan"`
	UpdatedAt  int64         `json:"updatedAt"`
}
