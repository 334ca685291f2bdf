package request_models

type CreateWeightEntryRequest struct {
	UserID string   `json:"userId"`
	Weight *float64 `json:"weight"`
	Date   string   `json:"date"`
}
