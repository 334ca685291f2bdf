package response_models

type WeightEntryResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Weight    float64 `json:"weight"`
	Date      string  `json:"date"`
	CreatedAt int64   `json:"createdAt"`
}
