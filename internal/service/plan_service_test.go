package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitplan/internal/catalog"
	"fitplan/internal/domain"
)

type stubProfiles struct {
	user domain.UserAttributes
	err  error
}

func (s stubProfiles) Create(context.Context, domain.UserAttributes) error { return nil }
func (s stubProfiles) GetByID(context.Context, string) (domain.UserAttributes, error) {
	return s.user, s.err
}
func (s stubProfiles) UpdateAttributes(context.Context, domain.UserAttributes) error { return nil }

type stubProgress struct {
	snaps    []domain.ProgressSnapshot
	recorded []domain.ProgressSnapshot
}

func (s *stubProgress) Record(_ context.Context, snap domain.ProgressSnapshot) error {
	s.recorded = append(s.recorded, snap)
	return nil
}
func (s *stubProgress) ListRecent(context.Context, string, int) ([]domain.ProgressSnapshot, error) {
	return s.snaps, nil
}

type stubOverrides struct {
	active []domain.AdminOverride
}

func (s stubOverrides) Create(context.Context, domain.AdminOverride) error { return nil }
func (s stubOverrides) ListActive(context.Context, string) ([]domain.AdminOverride, error) {
	return s.active, nil
}
func (s stubOverrides) Deactivate(context.Context, string) error { return nil }

// emptyWorkouts simula un catálogo sin contenido para el día pedido.
type emptyWorkouts struct{}

func (emptyWorkouts) WorkoutFor(time.Weekday, domain.Difficulty) (domain.WorkoutPlanTemplate, bool) {
	return domain.WorkoutPlanTemplate{}, false
}

type countingCache struct {
	inner PlanCache
	gets  int
	hits  int
	sets  int
}

func (c *countingCache) Get(ctx context.Context, key string) (domain.EnrichedDailyPlan, bool, error) {
	c.gets++
	plan, ok, err := c.inner.Get(ctx, key)
	if ok {
		c.hits++
	}
	return plan, ok, err
}

func (c *countingCache) Set(ctx context.Context, key string, plan domain.EnrichedDailyPlan, ttl time.Duration) error {
	c.sets++
	return c.inner.Set(ctx, key, plan, ttl)
}

func testUser() domain.UserAttributes {
	return domain.UserAttributes{
		ID:          "u-1",
		WeightKg:    90,
		HeightCm:    175,
		WorkType:    domain.WorkTypeSedentary,
		Goal:        domain.GoalLoseWeight,
		FitnessTier: domain.DifficultyBeginner,
		CreatedAt:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestService(profiles stubProfiles, progress *stubProgress, overrides stubOverrides, cache PlanCache) *PlanService {
	cat := catalog.NewStaticCatalog()
	return NewPlanService(zap.NewNop(), profiles, progress, overrides, cat, cat, cache, time.Hour)
}

var (
	monday = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	sunday = time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
)

func TestSynthesizeWeekday(t *testing.T) {
	svc := newTestService(stubProfiles{}, &stubProgress{}, stubOverrides{}, nil)

	plan := svc.Synthesize(testUser(), monday, SynthesisOptions{Now: monday})

	if plan.IsRestDay {
		t.Fatal("Monday must not be a rest day")
	}
	if plan.Workout == nil || len(plan.Workout.Exercises) == 0 {
		t.Fatal("expected a workout with exercises")
	}
	if len(plan.Meals) == 0 {
		t.Fatal("expected scheduled meals")
	}
	if plan.Fasting.Pattern != domain.Fasting168 {
		t.Fatalf("90kg sedentary must get 16:8, got %s", plan.Fasting.Pattern)
	}
	if plan.Nutrition.Calories <= 0 {
		t.Fatalf("expected positive calories, got %d", plan.Nutrition.Calories)
	}
	if !plan.Validation.Valid {
		t.Fatalf("healthy profile must yield a valid plan, got %+v", plan.Validation.Errors)
	}
}

func TestSynthesizeSundayIsRestDay(t *testing.T) {
	svc := newTestService(stubProfiles{}, &stubProgress{}, stubOverrides{}, nil)

	plan := svc.Synthesize(testUser(), sunday, SynthesisOptions{Now: sunday})

	if !plan.IsRestDay {
		t.Fatal("Sunday must be a rest day")
	}
	if plan.Workout != nil {
		t.Fatal("rest days carry no workout")
	}
	for _, f := range plan.Validation.Errors {
		if f.Component == domain.ComponentWorkout {
			t.Fatalf("a rest day must not flag workout findings, got %+v", f)
		}
	}
	// Comidas y ayuno siguen vigentes en día de descanso.
	if len(plan.Meals) == 0 {
		t.Fatal("rest days still schedule meals")
	}
	if plan.Fasting.Window.EatingStart == "" {
		t.Fatal("rest days still carry the fasting section")
	}
}

func TestSynthesizeForcedRestDay(t *testing.T) {
	svc := newTestService(stubProfiles{}, &stubProgress{}, stubOverrides{}, nil)

	plan := svc.Synthesize(testUser(), monday, SynthesisOptions{Now: monday, ForceRestDay: true})
	if !plan.IsRestDay || plan.Workout != nil {
		t.Fatal("forced rest day must drop the workout")
	}
}

func TestSynthesizeMissingWorkoutTemplateRecovers(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	svc := NewPlanService(zap.NewNop(), stubProfiles{}, &stubProgress{}, stubOverrides{},
		emptyWorkouts{}, cat, nil, time.Hour)

	plan := svc.Synthesize(testUser(), monday, SynthesisOptions{Now: monday})

	if plan.Workout != nil {
		t.Fatal("missing template must leave workout empty")
	}
	found := false
	for _, f := range plan.Validation.Errors {
		if f.Code == domain.CodeMissingWorkoutTemplate {
			if f.Severity != domain.SeverityRecoverable {
				t.Fatalf("missing template is recoverable, got %s", f.Severity)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("expected a missing-template finding")
	}
	if !plan.Validation.Valid {
		t.Fatal("recoverable findings must not invalidate the plan")
	}
	if len(plan.Meals) == 0 {
		t.Fatal("meals must survive a workout catalog miss")
	}
}

func TestSynthesizeInvalidProfileIsCriticalButUsable(t *testing.T) {
	svc := newTestService(stubProfiles{}, &stubProgress{}, stubOverrides{}, nil)

	user := testUser()
	user.WeightKg = 0
	plan := svc.Synthesize(user, monday, SynthesisOptions{Now: monday})

	if plan.Validation.Valid {
		t.Fatal("zero weight must mark the plan invalid")
	}
	critical := false
	for _, f := range plan.Validation.Errors {
		if f.Code == domain.CodeInvalidProfile && f.Severity == domain.SeverityCritical {
			critical = true
		}
	}
	if !critical {
		t.Fatal("expected a critical invalid-profile finding")
	}
	// Degradado pero entero: el resolver cae en las reglas por defecto.
	if len(plan.Meals) == 0 || plan.Fasting.Pattern == "" {
		t.Fatal("degraded plan must still carry meals and fasting")
	}
}

func TestSynthesizeOverridesWin(t *testing.T) {
	svc := newTestService(stubProfiles{}, &stubProgress{}, stubOverrides{}, nil)

	plan := svc.Synthesize(testUser(), monday, SynthesisOptions{
		Now:                monday,
		PatternOverride:    domain.Fasting1212,
		DifficultyOverride: domain.DifficultyAdvanced,
	})
	if plan.Fasting.Pattern != domain.Fasting1212 {
		t.Fatalf("pattern override ignored, got %s", plan.Fasting.Pattern)
	}
	if plan.Workout == nil || plan.Workout.Difficulty != domain.DifficultyAdvanced {
		t.Fatal("difficulty override ignored")
	}
}

func TestGenerateDailyPlanCaches(t *testing.T) {
	cache := &countingCache{inner: NewMemoryPlanCache()}
	svc := newTestService(stubProfiles{user: testUser()}, &stubProgress{}, stubOverrides{}, cache)

	first, err := svc.GenerateDailyPlan(context.Background(), "u-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GenerateDailyPlan(context.Background(), "u-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.sets != 1 || cache.hits != 1 {
		t.Fatalf("expected one set and one hit, got sets=%d hits=%d", cache.sets, cache.hits)
	}
	if first.Date != second.Date || len(first.Meals) != len(second.Meals) {
		t.Fatal("cached plan must match the synthesized one")
	}
}

func TestGenerateDailyPlanCacheKeyTracksProfileVersion(t *testing.T) {
	cache := &countingCache{inner: NewMemoryPlanCache()}
	user := testUser()
	progress := &stubProgress{}

	svc := newTestService(stubProfiles{user: user}, progress, stubOverrides{}, cache)
	if _, err := svc.GenerateDailyPlan(context.Background(), "u-1", monday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Un update de atributos mueve UpdatedAt y con ello la clave.
	user.UpdatedAt = user.UpdatedAt.Add(time.Hour)
	svc = newTestService(stubProfiles{user: user}, progress, stubOverrides{}, cache)
	if _, err := svc.GenerateDailyPlan(context.Background(), "u-1", monday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.hits != 0 || cache.sets != 2 {
		t.Fatalf("attribute change must miss the cache, got hits=%d sets=%d", cache.hits, cache.sets)
	}
}

func TestGenerateDailyPlanUnknownUserDegrades(t *testing.T) {
	svc := newTestService(stubProfiles{err: pgx.ErrNoRows}, &stubProgress{}, stubOverrides{}, nil)

	plan, err := svc.GenerateDailyPlan(context.Background(), "ghost", monday)
	if err != nil {
		t.Fatalf("a missing profile is not a transport error, got %v", err)
	}
	if plan.Validation.Valid {
		t.Fatal("missing profile must produce a critical finding")
	}
	if plan.UserID != "ghost" {
		t.Fatalf("plan must echo the requested user, got %s", plan.UserID)
	}
}

func TestGenerateDailyPlanPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newTestService(stubProfiles{err: boom}, &stubProgress{}, stubOverrides{}, nil)

	if _, err := svc.GenerateDailyPlan(context.Background(), "u-1", monday); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestGenerateDailyPlanAppliesActiveOverrides(t *testing.T) {
	overrides := stubOverrides{active: []domain.AdminOverride{
		{Kind: domain.OverrideRestDay, ForDate: monday.Format("2006-01-02")},
	}}
	svc := newTestService(stubProfiles{user: testUser()}, &stubProgress{}, overrides, nil)

	plan, err := svc.GenerateDailyPlan(context.Background(), "u-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.IsRestDay {
		t.Fatal("active rest-day override must force a rest day")
	}
}

func TestApplyOverridesDateFilter(t *testing.T) {
	opts := SynthesisOptions{}
	applyOverrides(&opts, []domain.AdminOverride{
		{Kind: domain.OverrideRestDay, ForDate: "2026-09-01"}, // otro día
		{Kind: domain.OverrideFastingPattern, Value: string(domain.Fasting186)},
	}, monday)

	if opts.ForceRestDay {
		t.Fatal("override for another date must not apply")
	}
	if opts.PatternOverride != domain.Fasting186 {
		t.Fatalf("dateless override must always apply, got %s", opts.PatternOverride)
	}
}

func TestRecordProgressPersists(t *testing.T) {
	progress := &stubProgress{}
	svc := newTestService(stubProfiles{}, progress, stubOverrides{}, nil)

	snap := domain.ProgressSnapshot{UserID: "u-1", Date: "2026-08-31", CompletedExercises: 5, TotalExercises: 5}
	if err := svc.RecordProgress(context.Background(), snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(progress.recorded) != 1 || progress.recorded[0].UserID != "u-1" {
		t.Fatalf("snapshot not persisted, got %+v", progress.recorded)
	}
}
