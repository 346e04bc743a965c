// Package fitness holds the built-in workout catalog and dashboard
// fixtures. Everything here is static display data; nothing is created,
// mutated, or persisted at runtime.
package fitness

import "github.com/rodrigo/fitdeck/internal/models"

// Workouts returns the built-in workout sessions shown in the browser tab
func Workouts() []models.WorkoutSession {
	return []models.WorkoutSession{
		{
			Name:      "Full Body Blast",
			Category:  models.CategoryFullBody,
			Minutes:   45,
			Equipment: []models.Equipment{models.EquipmentDumbbell, models.EquipmentBodyweight},
			Exercises: []models.Exercise{
				{Name: "Goblet Squat", Sets: 4, Reps: "10"},
				{Name: "Push-Up", Sets: 4, Reps: "12-15"},
				{Name: "Dumbbell Row", Sets: 3, Reps: "10 each side"},
				{Name: "Reverse Lunge", Sets: 3, Reps: "8 each side"},
				{Name: "Plank", Sets: 3, Reps: "45s"},
			},
		},
		{
			Name:      "Leg Day",
			Category:  models.CategoryStrength,
			Minutes:   60,
			Equipment: []models.Equipment{models.EquipmentBarbell, models.EquipmentDumbbell},
			Exercises: []models.Exercise{
				{Name: "Back Squat", Sets: 4, Reps: "8"},
				{Name: "Romanian Deadlift", Sets: 3, Reps: "10"},
				{Name: "Walking Lunge", Sets: 3, Reps: "12 each side"},
				{Name: "Leg Curl", Sets: 3, Reps: "12"},
				{Name: "Standing Calf Raise", Sets: 4, Reps: "15"},
				{Name: "Hanging Knee Raise", Sets: 3, Reps: "12"},
			},
		},
		{
			Name:      "Upper Body Push",
			Category:  models.CategoryStrength,
			Minutes:   50,
			Equipment: []models.Equipment{models.EquipmentBarbell, models.EquipmentDumbbell},
			Exercises: []models.Exercise{
				{Name: "Bench Press", Sets: 4, Reps: "6-8"},
				{Name: "Overhead Press", Sets: 3, Reps: "8"},
				{Name: "Incline Dumbbell Press", Sets: 3, Reps: "10"},
				{Name: "Lateral Raise", Sets: 3, Reps: "15"},
				{Name: "Triceps Dip", Sets: 3, Reps: "to failure"},
			},
		},
		{
			Name:      "Upper Body Pull",
			Category:  models.CategoryStrength,
			Minutes:   50,
			Equipment: []models.Equipment{models.EquipmentPullupBar, models.EquipmentDumbbell, models.EquipmentBands},
			Exercises: []models.Exercise{
				{Name: "Pull-Up", Sets: 4, Reps: "6-10"},
				{Name: "Bent-Over Row", Sets: 4, Reps: "8"},
				{Name: "Face Pull", Sets: 3, Reps: "15"},
				{Name: "Hammer Curl", Sets: 3, Reps: "12"},
			},
		},
		{
			Name:      "HIIT Burner",
			Category:  models.CategoryCardio,
			Minutes:   25,
			Equipment: []models.Equipment{models.EquipmentBodyweight},
			Exercises: []models.Exercise{
				{Name: "Burpee", Sets: 5, Reps: "30s"},
				{Name: "Mountain Climber", Sets: 5, Reps: "30s"},
				{Name: "Jump Squat", Sets: 5, Reps: "30s"},
				{Name: "High Knees", Sets: 5, Reps: "30s"},
			},
		},
		{
			Name:      "Kettlebell Circuit",
			Category:  models.CategoryFullBody,
			Minutes:   35,
			Equipment: []models.Equipment{models.EquipmentKettlebell},
			Exercises: []models.Exercise{
				{Name: "Kettlebell Swing", Sets: 5, Reps: "15"},
				{Name: "Goblet Clean", Sets: 4, Reps: "8 each side"},
				{Name: "Turkish Get-Up", Sets: 3, Reps: "3 each side"},
				{Name: "Farmer Carry", Sets: 3, Reps: "40m"},
			},
		},
		{
			Name:      "Morning Mobility",
			Category:  models.CategoryMobility,
			Minutes:   20,
			Equipment: []models.Equipment{models.EquipmentBodyweight, models.EquipmentBands},
			Exercises: []models.Exercise{
				{Name: "Cat-Cow", Sets: 2, Reps: "10"},
				{Name: "World's Greatest Stretch", Sets: 2, Reps: "5 each side"},
				{Name: "Hip 90/90 Switch", Sets: 2, Reps: "8 each side"},
				{Name: "Band Pull-Apart", Sets: 3, Reps: "15"},
			},
		},
	}
}

// TodayStats returns the stat cards on the home dashboard
func TodayStats() []models.StatCard {
	return []models.StatCard{
		{Label: "Steps", Value: "8,432", Hint: "goal 10,000"},
		{Label: "Calories", Value: "612", Hint: "kcal burned"},
		{Label: "Active", Value: "47", Hint: "minutes"},
		{Label: "Streak", Value: "12", Hint: "days"},
	}
}

// TodayWorkout returns the session featured on the home dashboard
func TodayWorkout() models.WorkoutSession {
	return Workouts()[1] // Leg Day
}

// DefaultProfile returns the static profile card
func DefaultProfile() models.Profile {
	return models.Profile{
		Name:         "Alex Runner",
		Goal:         "Build strength",
		Level:        "Intermediate",
		WeeklyTarget: 4,
		StreakDays:   12,
	}
}
