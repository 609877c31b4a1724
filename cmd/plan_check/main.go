// plan_check sintetiza una semana de planes para un usuario de muestra y
// la imprime. Sirve para revisar a ojo catálogos, horarios y progresión sin
// levantar base de datos ni servidor.
package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitplan/internal/catalog"
	"fitplan/internal/domain"
	"fitplan/internal/service"

	"go.uber.org/zap"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

func main() {
	start := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)

	user := domain.UserAttributes{
		ID:          uuid.NewString(),
		WeightKg:    90,
		HeightCm:    172,
		WorkType:    domain.WorkTypeSedentary,
		Goal:        domain.GoalLoseWeight,
		FitnessTier: domain.DifficultyBeginner,
		Gender:      domain.GenderNeutral,
		CreatedAt:   start.AddDate(0, 0, -21),
		UpdatedAt:   start,
	}

	content := catalog.NewStaticCatalog()
	plans := service.NewPlanService(zap.NewNop(), nil, nil, nil, content, content, service.NewMemoryPlanCache(), time.Hour)
	progression := service.NewProgressionEngine()

	factors := domain.ProgressionFactors{
		ProgramDay:        22,
		ProgramWeek:       4,
		CompletionRate:    85,
		StreakDays:        10,
		FastingCompliance: 90,
	}

	fmt.Printf("%suser%s weight=%.0fkg work=%s goal=%s\n\n", colorCyan, colorReset, user.WeightKg, user.WorkType, user.Goal)

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		plan := plans.Synthesize(user, date, service.SynthesisOptions{
			ProgramDay: factors.ProgramDay + i,
			Factors:    &factors,
			Now:        date,
		})
		printPlan(plan)
	}

	fmt.Printf("%sprogression preview%s\n", colorCyan, colorReset)
	for week := 1; week <= 8; week++ {
		f := factors
		f.ProgramWeek = week
		f.ProgramDay = week * 7
		adj := progression.AdjustmentsFor(user, f)
		fmt.Printf("  week %d: sets x%.2f reps x%.2f rest x%.2f kcal %+d\n",
			week, adj.SetsMultiplier, adj.RepsMultiplier, adj.RestMultiplier, adj.CalorieDelta)
	}
}

func printPlan(p domain.EnrichedDailyPlan) {
	fmt.Printf("%s%s (%s)%s rest=%v valid=%v\n", colorGreen, p.Date, p.DayOfWeek, colorReset, p.IsRestDay, p.Validation.Valid)
	if p.Workout != nil {
		fmt.Printf("  workout: %s (%.1f min, %d kcal, %d exercises)\n",
			p.Workout.Name, p.Workout.TotalMinutes, p.Workout.TotalCalories, len(p.Workout.Exercises))
	}
	for _, m := range p.Meals {
		marker := " "
		if !m.InWindow {
			marker = "!"
		}
		fmt.Printf("  %s %s %-10s %s (%d kcal)\n", marker, m.ScheduledAt, m.Type, m.Name, m.Calories)
	}
	fmt.Printf("  nutrition: %d kcal, %.0fg protein | fasting %s %s-%s\n\n",
		p.Nutrition.Calories, p.Nutrition.ProteinG, p.Fasting.Pattern, p.Fasting.Window.EatingStart, p.Fasting.Window.EatingEnd)
}
