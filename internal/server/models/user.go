// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account row together with the profile facts collected at
// sign-up and the daily nutrition targets computed from them.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string

	Goal          string
	Gender        string
	BirthDate     time.Time
	Height        float64
	Weight        float64
	ActivityLevel int

	// Daily targets, computed once at registration.
	Calories      int
	Proteins      int
	Carbohydrates int
	Fats          int

	CreatedAt time.Time
}

// Accepted values for the sign-up enumerations.
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"

	GenderMale   = "male"
	GenderFemale = "female"
)
