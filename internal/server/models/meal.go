package models

import "time"

// MealStatusUploading marks a meal whose media has an issued upload URL but
// no confirmed content yet. Later states belong to the processing worker and
// are not enumerated here.
const MealStatusUploading = "uploading"

// Meal is a user-owned meal awaiting (or holding) uploaded media and the
// nutrition data derived from it. Name, Icon and Foods stay empty until the
// processing worker fills them in.
type Meal struct {
	ID     string
	UserID string

	// InputFileKey is the object-storage key the client was told to upload
	// to. Unique per meal.
	InputFileKey string
	// InputType records what kind of media was declared: "audio" or "picture".
	InputType string

	Status string

	Name  string
	Icon  string
	Foods []Food

	CreatedAt time.Time
}

// Food is one recognized food item inside an analyzed meal.
type Food struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbohydrates"`
	Fats     float64 `json:"fats"`
}
