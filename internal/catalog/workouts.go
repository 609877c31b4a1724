package catalog

import (
	"time"

	"fitplan/internal/domain"
)

// tierScale ajusta sets/reps/duración del esquema base según dificultad.
type tierScale struct {
	sets     int
	reps     float64
	duration float64
	rest     float64
}

var tierScales = map[domain.Difficulty]tierScale{
	domain.DifficultyBeginner:     {sets: 0, reps: 1.0, duration: 1.0, rest: 1.2},
	domain.DifficultyIntermediate: {sets: 1, reps: 1.25, duration: 1.25, rest: 1.0},
	domain.DifficultyAdvanced:     {sets: 2, reps: 1.5, duration: 1.5, rest: 0.8},
}

// baseExercise es el esquema de un ejercicio antes de escalar por dificultad.
type baseExercise struct {
	name     string
	sets     int
	reps     int
	duration int // segundos, >0 marca ejercicio por tiempo
	rest     int
	calories int
	video    string
}

// weeklyWorkouts define el ciclo semanal. El domingo no tiene entrada:
// es día de descanso y el sintetizador ni siquiera consulta el catálogo.
var weeklyWorkouts = map[time.Weekday]struct {
	name      string
	focus     string
	exercises []baseExercise
}{
	time.Monday: {
		name:  "Full Body Foundation",
		focus: "full_body",
		exercises: []baseExercise{
			{name: "Squats", sets: 3, reps: 12, rest: 60, calories: 45, video: "https://cdn.fitplan.app/v/squats.mp4"},
			{name: "Push-ups", sets: 3, reps: 10, rest: 60, calories: 35, video: "https://cdn.fitplan.app/v/pushups.mp4"},
			{name: "Plank", sets: 3, duration: 30, rest: 45, calories: 20, video: "https://cdn.fitplan.app/v/plank.mp4"},
			{name: "Glute Bridges", sets: 3, reps: 15, rest: 45, calories: 25, video: "https://cdn.fitplan.app/v/glute-bridges.mp4"},
		},
	},
	time.Tuesday: {
		name:  "Upper Body Strength",
		focus: "upper_body",
		exercises: []baseExercise{
			{name: "Pike Push-ups", sets: 3, reps: 8, rest: 75, calories: 30, video: "https://cdn.fitplan.app/v/pike-pushups.mp4"},
			{name: "Tricep Dips", sets: 3, reps: 10, rest: 60, calories: 28, video: "https://cdn.fitplan.app/v/tricep-dips.mp4"},
			{name: "Superman Hold", sets: 3, duration: 25, rest: 45, calories: 18, video: "https://cdn.fitplan.app/v/superman.mp4"},
			{name: "Arm Circles", sets: 2, duration: 40, rest: 30, calories: 12},
		},
	},
	time.Wednesday: {
		name:  "Cardio Burn",
		focus: "cardio",
		exercises: []baseExercise{
			{name: "Jumping Jacks", sets: 4, duration: 45, rest: 30, calories: 40, video: "https://cdn.fitplan.app/v/jumping-jacks.mp4"},
			{name: "High Knees", sets: 4, duration: 30, rest: 30, calories: 38, video: "https://cdn.fitplan.app/v/high-knees.mp4"},
			{name: "Mountain Climbers", sets: 3, reps: 20, rest: 45, calories: 42, video: "https://cdn.fitplan.app/v/mountain-climbers.mp4"},
			{name: "Burpees", sets: 3, reps: 8, rest: 60, calories: 50, video: "https://cdn.fitplan.app/v/burpees.mp4"},
		},
	},
	time.Thursday: {
		name:  "Lower Body Power",
		focus: "lower_body",
		exercises: []baseExercise{
			{name: "Lunges", sets: 3, reps: 12, rest: 60, calories: 40, video: "https://cdn.fitplan.app/v/lunges.mp4"},
			{name: "Calf Raises", sets: 3, reps: 18, rest: 40, calories: 20, video: "https://cdn.fitplan.app/v/calf-raises.mp4"},
			{name: "Wall Sit", sets: 3, duration: 35, rest: 50, calories: 25, video: "https://cdn.fitplan.app/v/wall-sit.mp4"},
			{name: "Side Lunges", sets: 3, reps: 10, rest: 50, calories: 32, video: "https://cdn.fitplan.app/v/side-lunges.mp4"},
		},
	},
	time.Friday: {
		name:  "Core Stability",
		focus: "core",
		exercises: []baseExercise{
			{name: "Crunches", sets: 3, reps: 15, rest: 45, calories: 25, video: "https://cdn.fitplan.app/v/crunches.mp4"},
			{name: "Russian Twists", sets: 3, reps: 20, rest: 45, calories: 28, video: "https://cdn.fitplan.app/v/russian-twists.mp4"},
			{name: "Leg Raises", sets: 3, reps: 12, rest: 50, calories: 26, video: "https://cdn.fitplan.app/v/leg-raises.mp4"},
			{name: "Side Plank", sets: 2, duration: 25, rest: 40, calories: 18, video: "https://cdn.fitplan.app/v/side-plank.mp4"},
		},
	},
	time.Saturday: {
		name:  "Mobility & Flow",
		focus: "mobility",
		exercises: []baseExercise{
			{name: "Cat-Cow Stretch", sets: 2, duration: 45, rest: 20, calories: 10},
			{name: "World's Greatest Stretch", sets: 2, reps: 6, rest: 30, calories: 15, video: "https://cdn.fitplan.app/v/wgs.mp4"},
			{name: "Downward Dog Hold", sets: 3, duration: 30, rest: 30, calories: 14, video: "https://cdn.fitplan.app/v/down-dog.mp4"},
			{name: "Hip Openers", sets: 2, reps: 10, rest: 30, calories: 16, video: "https://cdn.fitplan.app/v/hip-openers.mp4"},
		},
	},
}

// WorkoutFor arma el template escalado para (día, dificultad).
func (c *StaticCatalog) WorkoutFor(day time.Weekday, difficulty domain.Difficulty) (domain.WorkoutPlanTemplate, bool) {
	base, ok := weeklyWorkouts[day]
	if !ok {
		return domain.WorkoutPlanTemplate{}, false
	}
	scale, ok := tierScales[difficulty]
	if !ok {
		return domain.WorkoutPlanTemplate{}, false
	}

	exercises := make([]domain.ExerciseTemplate, 0, len(base.exercises))
	for _, e := range base.exercises {
		ex := domain.ExerciseTemplate{
			Name:        e.name,
			Sets:        e.sets + scale.sets,
			RestSeconds: scaleInt(e.rest, scale.rest),
			Calories:    e.calories,
			VideoURL:    e.video,
		}
		if e.duration > 0 {
			ex.DurationSeconds = scaleInt(e.duration, scale.duration)
		} else {
			ex.Reps = scaleInt(e.reps, scale.reps)
		}
		exercises = append(exercises, ex)
	}

	return domain.WorkoutPlanTemplate{
		Name:       base.name,
		Day:        day,
		Difficulty: difficulty,
		Focus:      base.focus,
		Exercises:  exercises,
	}, true
}

func scaleInt(v int, f float64) int {
	scaled := int(float64(v)*f + 0.5)
	if scaled < 1 {
		return 1
	}
	return scaled
}
