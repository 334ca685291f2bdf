package response_models

type NutritionEntryResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Meal      string  `json:"meal"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Date      string  `json:"date"`
	CreatedAt int64   `json:"createdAt"`
}

// DailyTotals is one row of the per-day macro aggregate.
type DailyTotals struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
}

type NutritionEstimate struct {
	Meal     string  `json:"meal"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
