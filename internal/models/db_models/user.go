package db_models

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string

	WorkoutLogs      []WorkoutLog
	WeightEntries    []WeightEntry
	NutritionEntries []NutritionEntry
}
