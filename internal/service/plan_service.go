package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitplan/internal/catalog"
	"fitplan/internal/domain"
	"fitplan/internal/repository"
)

// SynthesisOptions parametriza una síntesis. Factors en nil usa ajustes
// neutros; Now en cero toma el reloj una única vez al entrar.
type SynthesisOptions struct {
	ProgramDay         int
	ForceRestDay       bool
	Factors            *domain.ProgressionFactors
	PatternOverride    domain.FastingPattern
	DifficultyOverride domain.Difficulty
	Now                time.Time
}

// PlanService orquesta el motor: resuelve la asignación, consulta catálogos,
// aplica progresión y enriquecimiento, y agrega la validación. La síntesis en
// sí es pura; el servicio añade persistencia y caché alrededor.
type PlanService struct {
	logger    *zap.Logger
	profiles  repository.ProfileRepository
	progress  repository.ProgressRepository
	overrides repository.OverrideRepository
	workouts  catalog.WorkoutCatalog
	meals     catalog.MealCatalog
	cache     PlanCache
	cacheTTL  time.Duration

	personalization PersonalizationEngine
	fasting         FastingCalculator
	progression     ProgressionEngine
}

func NewPlanService(
	logger *zap.Logger,
	profiles repository.ProfileRepository,
	progress repository.ProgressRepository,
	overrides repository.OverrideRepository,
	workouts catalog.WorkoutCatalog,
	meals catalog.MealCatalog,
	cache PlanCache,
	cacheTTL time.Duration,
) *PlanService {
	if cache == nil {
		cache = NewMemoryPlanCache()
	}
	return &PlanService{
		logger:          logger,
		profiles:        profiles,
		progress:        progress,
		overrides:       overrides,
		workouts:        workouts,
		meals:           meals,
		cache:           cache,
		cacheTTL:        cacheTTL,
		personalization: PersonalizationEngine{},
		fasting:         FastingCalculator{},
		progression:     NewProgressionEngine(),
	}
}

// Synthesize construye el plan enriquecido del día. Puro: sin I/O ni estado
// compartido; los errores nunca abortan, quedan en el resultado de validación
// y el plan devuelto siempre es usable.
func (s *PlanService) Synthesize(user domain.UserAttributes, date time.Time, opts SynthesisOptions) domain.EnrichedDailyPlan {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var v domain.ValidationCollector
	if user.WeightKg <= 0 {
		v.Critical(domain.ComponentGeneral, domain.CodeInvalidProfile,
			"profile has non-positive weight; plan may be incomplete")
	}

	assignment := s.personalization.Resolve(user.WeightKg, user.WorkType)
	if opts.PatternOverride != "" {
		assignment.FastingPattern = opts.PatternOverride
	}
	if opts.DifficultyOverride != "" {
		assignment.WorkoutDifficulty = opts.DifficultyOverride
	}

	adj := domain.NeutralAdjustments()
	if opts.Factors != nil {
		adj = s.progression.AdjustmentsFor(user, *opts.Factors)
	}

	window := s.fasting.WindowFor(assignment.FastingPattern)
	isRest := date.Weekday() == time.Sunday || opts.ForceRestDay

	var workout *domain.EnrichedWorkout
	if !isRest {
		tpl, ok := s.workouts.WorkoutFor(date.Weekday(), assignment.WorkoutDifficulty)
		if !ok {
			v.Recoverable(domain.ComponentWorkout, domain.CodeMissingWorkoutTemplate,
				fmt.Sprintf("no workout template for %s/%s", date.Weekday(), assignment.WorkoutDifficulty), true)
		} else {
			workout = enrichWorkout(tpl, adj, &v)
		}
	}

	var meals []domain.ScheduledMeal
	mealTpl, ok := s.meals.MealPlanFor(date.Weekday(), assignment.MealIntensity)
	if !ok {
		v.Recoverable(domain.ComponentMeal, domain.CodeMissingMealTemplate,
			fmt.Sprintf("no meal plan for %s/%s", date.Weekday(), assignment.MealIntensity), true)
	} else {
		meals = scheduleMeals(mealTpl, window, adj, s.meals.MealTimeFor, &v)
	}

	programDay := opts.ProgramDay
	if programDay == 0 && opts.Factors != nil {
		programDay = opts.Factors.ProgramDay
	}

	return domain.EnrichedDailyPlan{
		UserID:     user.ID,
		Date:       date.Format("2006-01-02"),
		DayOfWeek:  date.Weekday().String(),
		ProgramDay: programDay,
		IsRestDay:  isRest,
		Workout:    workout,
		Meals:      meals,
		Nutrition:  sumNutrition(meals, adj.CalorieDelta),
		Fasting: domain.FastingSection{
			Pattern: assignment.FastingPattern,
			Window:  window,
			Status:  s.fasting.StatusAt(window, now),
		},
		Messages:    adj.Messages,
		Validation:  v.Result(),
		GeneratedAt: now,
	}
}

// GenerateDailyPlan carga perfil, factores y overrides, sintetiza y cachea.
// Un perfil inexistente no es error de transporte: produce un plan degradado
// con hallazgo crítico, igual que un perfil con datos inválidos.
func (s *PlanService) GenerateDailyPlan(ctx context.Context, userID string, date time.Time) (domain.EnrichedDailyPlan, error) {
	user, err := s.profiles.GetByID(ctx, userID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		user = domain.UserAttributes{ID: userID}
	case err != nil:
		return domain.EnrichedDailyPlan{}, err
	}

	key := fmt.Sprintf("%s:%s:%d", userID, date.Format("2006-01-02"), user.UpdatedAt.Unix())
	if cached, ok, cerr := s.cache.Get(ctx, key); cerr != nil {
		s.logger.Warn("plan cache get failed", zap.Error(cerr))
	} else if ok {
		return cached, nil
	}

	opts := SynthesisOptions{Now: time.Now().UTC()}

	snapshots, err := s.progress.ListRecent(ctx, userID, progressWindowDays)
	if err != nil {
		s.logger.Warn("progress lookup failed, using neutral adjustments", zap.Error(err))
	} else if !user.CreatedAt.IsZero() {
		factors := BuildFactors(user.CreatedAt, date, snapshots)
		opts.Factors = &factors
		opts.ProgramDay = factors.ProgramDay
	}

	overrides, err := s.overrides.ListActive(ctx, userID)
	if err != nil {
		s.logger.Warn("override lookup failed", zap.Error(err))
	}
	applyOverrides(&opts, overrides, date)

	plan := s.Synthesize(user, date, opts)

	if err := s.cache.Set(ctx, key, plan, s.cacheTTL); err != nil {
		s.logger.Warn("plan cache set failed", zap.Error(err))
	}
	return plan, nil
}

// RecordProgress persiste el snapshot de adherencia del día.
func (s *PlanService) RecordProgress(ctx context.Context, snap domain.ProgressSnapshot) error {
	return s.progress.Record(ctx, snap)
}

// PreviewAdjustments expone el motor de progresión sobre el perfil almacenado.
func (s *PlanService) PreviewAdjustments(ctx context.Context, userID string, factors domain.ProgressionFactors) (domain.ProgressionAdjustments, error) {
	user, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return domain.ProgressionAdjustments{}, err
	}
	return s.progression.AdjustmentsFor(user, factors), nil
}

// applyOverrides traduce los overrides activos a opciones de síntesis.
// Un override con fecha solo aplica ese día; sin fecha aplica siempre.
func applyOverrides(opts *SynthesisOptions, overrides []domain.AdminOverride, date time.Time) {
	day := date.Format("2006-01-02")
	for _, o := range overrides {
		if o.ForDate != "" && o.ForDate != day {
			continue
		}
		switch o.Kind {
		case domain.OverrideRestDay:
			opts.ForceRestDay = true
		case domain.OverrideFastingPattern:
			opts.PatternOverride = domain.FastingPattern(o.Value)
		case domain.OverrideDifficulty:
			opts.DifficultyOverride = domain.Difficulty(o.Value)
		}
	}
}
