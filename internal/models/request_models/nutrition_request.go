package request_models

type CreateNutritionEntryRequest struct {
	UserID   string  `json:"userId"`
	Meal     string  `json:"meal"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Date     string  `json:"date"`
}

type EstimateNutritionRequest struct {
	Meal string `json:"meal"`
}
