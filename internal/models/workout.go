package models

// Category groups workouts by training focus
type Category string

const (
	CategoryStrength  Category = "strength"
	CategoryCardio    Category = "cardio"
	CategoryMobility  Category = "mobility"
	CategoryFullBody  Category = "full_body"
)

// Equipment identifies what a workout requires
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentBands      Equipment = "bands"
	EquipmentPullupBar  Equipment = "pullup_bar"
)

// Exercise is a single movement inside a workout session.
// These records are display fixtures; there are no creation, mutation,
// or deletion paths.
type Exercise struct {
	Name string
	Sets int
	Reps string // "8-12", "30s", "to failure"
}

// WorkoutSession is a pre-built workout shown in the browser tab
type WorkoutSession struct {
	Name      string
	Category  Category
	Minutes   int
	Equipment []Equipment
	Exercises []Exercise
}

// ExerciseCount returns the number of exercises in the session
func (w WorkoutSession) ExerciseCount() int {
	return len(w.Exercises)
}

// StatCard is one tile on the home dashboard
type StatCard struct {
	Label string
	Value string
	Hint  string
}

// Profile is the static profile card shown on the profile tab
type Profile struct {
	Name         string
	Goal         string
	Level        string
	WeeklyTarget int // sessions per week
	StreakDays   int
}
