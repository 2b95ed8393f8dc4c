package services

import (
	"time"

	"github.com/mealsnap/mealsnap/internal/server/models"
)

// activityFactors maps the 1..5 activity level collected at sign-up to a
// daily energy multiplier (sedentary through athlete).
var activityFactors = [...]float64{1.2, 1.375, 1.55, 1.725, 1.9}

// goalAdjustments holds the kcal delta applied on top of maintenance.
var goalAdjustments = map[string]float64{
	models.GoalLose:     -500,
	models.GoalMaintain: 0,
	models.GoalGain:     500,
}

// CalculateTargets computes daily nutrition targets for a user profile:
// Mifflin-St Jeor BMR, scaled by activity level, shifted by goal, with a
// 30/35/35 protein/carb/fat calorie split. The result is written onto the
// user in place.
func CalculateTargets(user *models.User, now time.Time) {
	age := yearsBetween(user.BirthDate, now)

	bmr := 10*user.Weight + 6.25*user.Height - 5*float64(age)
	if user.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	level := user.ActivityLevel
	if level < 1 {
		level = 1
	}
	if level > len(activityFactors) {
		level = len(activityFactors)
	}

	calories := bmr*activityFactors[level-1] + goalAdjustments[user.Goal]
	if calories < 0 {
		calories = 0
	}

	user.Calories = int(calories)
	user.Proteins = int(calories * 0.30 / 4)
	user.Carbohydrates = int(calories * 0.35 / 4)
	user.Fats = int(calories * 0.35 / 9)
}

func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.YearDay() < from.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
