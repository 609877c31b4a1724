package service

import (
	"fmt"
	"math"
	"sort"

	"fitplan/internal/domain"
)

// Estimación de duración: ~3 segundos por repetición cuando el ejercicio
// no declara una duración fija.
const secondsPerRep = 3

// enrichWorkout aplica los ajustes de progresión y calcula los campos
// derivados de cada ejercicio. Las calorías totales salen de lo declarado en
// el template, no se recalculan desde la duración.
func enrichWorkout(tpl domain.WorkoutPlanTemplate, adj domain.ProgressionAdjustments, v *domain.ValidationCollector) *domain.EnrichedWorkout {
	out := &domain.EnrichedWorkout{
		Name:       tpl.Name,
		Focus:      tpl.Focus,
		Difficulty: tpl.Difficulty,
		Exercises:  make([]domain.EnrichedExercise, 0, len(tpl.Exercises)),
	}

	for _, ex := range tpl.Exercises {
		sets := scaleCount(ex.Sets, adj.SetsMultiplier)
		rest := scaleCount(ex.RestSeconds, adj.RestMultiplier)

		enriched := domain.EnrichedExercise{
			Name:        ex.Name,
			Sets:        sets,
			RestSeconds: rest,
			Calories:    ex.Calories,
			VideoURL:    ex.VideoURL,
		}

		// Ruta por tiempo cuando hay duración fija; si no, estimación por reps.
		var unitSeconds int
		if ex.DurationSeconds > 0 {
			enriched.DurationSeconds = scaleCount(ex.DurationSeconds, adj.DurationMultiplier)
			unitSeconds = enriched.DurationSeconds
		} else {
			enriched.Reps = scaleCount(ex.Reps, adj.RepsMultiplier)
			unitSeconds = enriched.Reps * secondsPerRep
		}

		enriched.EstimatedMinutes = float64(sets*unitSeconds) / 60
		if sets > 1 {
			enriched.RestTotalSeconds = rest * (sets - 1)
		}

		if ex.VideoURL == "" {
			v.Warning(domain.ComponentWorkout, domain.CodeMissingDemonstrationMedia,
				fmt.Sprintf("exercise %q has no demonstration video", ex.Name))
		}

		out.TotalMinutes += enriched.EstimatedMinutes + float64(enriched.RestTotalSeconds)/60
		out.TotalCalories += ex.Calories
		out.Exercises = append(out.Exercises, enriched)
	}

	out.TotalMinutes = math.Round(out.TotalMinutes*10) / 10
	return out
}

// scheduleMeals asigna hora a cada comida desde la tabla por patrón, marca si
// cae dentro de la ventana, ordena por hora y reindexa el orden de display.
func scheduleMeals(
	tpl domain.MealPlanTemplate,
	window domain.FastingWindow,
	adj domain.ProgressionAdjustments,
	mealTime func(domain.FastingPattern, domain.MealType) (string, bool),
	v *domain.ValidationCollector,
) []domain.ScheduledMeal {
	meals := make([]domain.ScheduledMeal, 0, len(tpl.Meals))
	for _, m := range tpl.Meals {
		at, ok := mealTime(window.Pattern, m.Type)
		if !ok {
			// Sin hora en la tabla: el inicio de la ventana es el fallback.
			at = window.EatingStart
		}

		adjusted := m
		adjusted.Calories = scaleCount(m.Calories, adj.PortionMultiplier)
		adjusted.ProteinG = roundTenth(m.ProteinG * adj.ProteinMultiplier)

		inWindow := DefaultFastingCalculator.InWindow(window, at)
		if !inWindow {
			v.Warning(domain.ComponentMeal, domain.CodeScheduledOutsideWindow,
				fmt.Sprintf("meal %q scheduled at %s, outside eating window %s-%s",
					m.Name, at, window.EatingStart, window.EatingEnd))
		}

		meals = append(meals, domain.ScheduledMeal{
			MealTemplate: adjusted,
			ScheduledAt:  at,
			InWindow:     inWindow,
		})
	}

	sort.SliceStable(meals, func(i, j int) bool {
		return clockToMinutes(meals[i].ScheduledAt) < clockToMinutes(meals[j].ScheduledAt)
	})
	for i := range meals {
		meals[i].Order = i + 1
	}
	return meals
}

// sumNutrition acumula la nutrición del día y aplica el delta calórico.
// La fibra ausente vale 0. El total nunca baja de cero.
func sumNutrition(meals []domain.ScheduledMeal, calorieDelta int) domain.NutritionTotals {
	var t domain.NutritionTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.ProteinG += m.ProteinG
		t.CarbsG += m.CarbsG
		t.FatG += m.FatG
		t.FiberG += m.FiberG
	}
	t.Calories += calorieDelta
	if t.Calories < 0 {
		t.Calories = 0
	}
	t.ProteinG = roundTenth(t.ProteinG)
	t.CarbsG = roundTenth(t.CarbsG)
	t.FatG = roundTenth(t.FatG)
	t.FiberG = roundTenth(t.FiberG)
	return t
}

// scaleCount multiplica y redondea sin bajar nunca de 1.
func scaleCount(v int, factor float64) int {
	if v <= 0 {
		return 0
	}
	scaled := int(math.Round(float64(v) * factor))
	if scaled < 1 {
		return 1
	}
	return scaled
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
