package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitplan/internal/catalog"
	"fitplan/internal/domain"
	"fitplan/internal/service"
)

type mockProfileRepo struct {
	profiles map[string]domain.UserAttributes
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]domain.UserAttributes)}
}

func (m *mockProfileRepo) Create(_ context.Context, attrs domain.UserAttributes) error {
	m.profiles[attrs.ID] = attrs
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (domain.UserAttributes, error) {
	attrs, ok := m.profiles[id]
	if !ok {
		return domain.UserAttributes{}, pgx.ErrNoRows
	}
	return attrs, nil
}

func (m *mockProfileRepo) UpdateAttributes(_ context.Context, attrs domain.UserAttributes) error {
	if _, ok := m.profiles[attrs.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.profiles[attrs.ID] = attrs
	return nil
}

type mockProgressRepo struct {
	snaps map[string][]domain.ProgressSnapshot
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{snaps: make(map[string][]domain.ProgressSnapshot)}
}

func (m *mockProgressRepo) Record(_ context.Context, snap domain.ProgressSnapshot) error {
	m.snaps[snap.UserID] = append(m.snaps[snap.UserID], snap)
	return nil
}

func (m *mockProgressRepo) ListRecent(_ context.Context, userID string, _ int) ([]domain.ProgressSnapshot, error) {
	return m.snaps[userID], nil
}

type mockOverrideRepo struct {
	overrides []domain.AdminOverride
}

func (m *mockOverrideRepo) Create(_ context.Context, o domain.AdminOverride) error {
	m.overrides = append(m.overrides, o)
	return nil
}

func (m *mockOverrideRepo) ListActive(_ context.Context, userID string) ([]domain.AdminOverride, error) {
	var active []domain.AdminOverride
	for _, o := range m.overrides {
		if o.Active && o.UserID == userID {
			active = append(active, o)
		}
	}
	return active, nil
}

func (m *mockOverrideRepo) Deactivate(_ context.Context, id string) error {
	for i, o := range m.overrides {
		if o.ID == id {
			m.overrides[i].Active = false
			return nil
		}
	}
	return pgx.ErrNoRows
}

func seedProfile(repo *mockProfileRepo, id string) domain.UserAttributes {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	attrs := domain.UserAttributes{
		ID:          id,
		WeightKg:    90,
		HeightCm:    175,
		WorkType:    domain.WorkTypeSedentary,
		Goal:        domain.GoalLoseWeight,
		FitnessTier: domain.DifficultyBeginner,
		Gender:      domain.GenderNeutral,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	repo.profiles[id] = attrs
	return attrs
}

func setupPlanRouter(profiles *mockProfileRepo, progress *mockProgressRepo, overrides *mockOverrideRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.NewStaticCatalog()
	plans := service.NewPlanService(zap.NewNop(), profiles, progress, overrides, cat, cat, nil, time.Hour)

	r := gin.New()
	h := NewPlanHandler(zap.NewNop(), plans)
	ph := NewProfileHandler(zap.NewNop(), profiles)
	r.POST("/users", ph.CreateUser)
	r.PUT("/users/:id/attributes", ph.UpdateAttributes)
	r.GET("/users/:id/assignment", ph.GetAssignment)
	r.POST("/plan/daily", h.DailyPlan)
	r.GET("/fasting/status", h.FastingStatus)
	r.POST("/progression/preview", h.ProgressionPreview)
	r.POST("/progress", h.RecordProgress)
	return r
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPlanHandlerDailyPlan_Success(t *testing.T) {
	profiles := newMockProfileRepo()
	seedProfile(profiles, "u-1")
	r := setupPlanRouter(profiles, newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/plan/daily", map[string]string{
		"user_id": "u-1",
		"date":    "2026-08-31",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Plan domain.EnrichedDailyPlan `json:"plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Plan.Date != "2026-08-31" || resp.Plan.IsRestDay {
		t.Fatalf("unexpected plan %+v", resp.Plan)
	}
	if resp.Plan.Workout == nil || len(resp.Plan.Meals) == 0 {
		t.Fatal("expected workout and meals in the plan")
	}
}

func TestPlanHandlerDailyPlan_UnknownUserDegrades(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/plan/daily", map[string]string{
		"user_id": "ghost",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("a missing profile degrades, it is not an http error; got %d", rec.Code)
	}

	var resp struct {
		Plan domain.EnrichedDailyPlan `json:"plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Plan.Validation.Valid {
		t.Fatal("degraded plan must carry a critical finding")
	}
}

func TestPlanHandlerDailyPlan_InvalidRequest(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/plan/daily", map[string]string{
		"date": "2026-08-31",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPlanHandlerFastingStatus_Success(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodGet, "/fasting/status?pattern=16:8&at=11:00", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status domain.FastingStatus `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status.Phase != domain.PhaseFasting {
		t.Fatalf("11:00 on 16:8 is fasting, got %s", resp.Status.Phase)
	}
	if resp.Status.RemainingMinutes != 60 {
		t.Fatalf("expected 60 minutes to the window, got %d", resp.Status.RemainingMinutes)
	}
}

func TestPlanHandlerFastingStatus_MissingPattern(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodGet, "/fasting/status", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPlanHandlerFastingStatus_BadClock(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodGet, "/fasting/status?pattern=16:8&at=25:99", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestPlanHandlerProgressionPreview_Success(t *testing.T) {
	profiles := newMockProfileRepo()
	seedProfile(profiles, "u-1")
	r := setupPlanRouter(profiles, newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/progression/preview", map[string]any{
		"user_id": "u-1",
		"factors": map[string]any{
			"program_day":     28,
			"program_week":    4,
			"completion_rate": 90,
			"streak_days":     14,
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Adjustments domain.ProgressionAdjustments `json:"adjustments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Adjustments.RecommendUpgrade {
		t.Fatalf("expected an upgrade recommendation, got %+v", resp.Adjustments)
	}
}

func TestPlanHandlerProgressionPreview_UserNotFound(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/progression/preview", map[string]any{
		"user_id": "ghost",
		"factors": map[string]any{"program_day": 1},
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestPlanHandlerRecordProgress_Success(t *testing.T) {
	progress := newMockProgressRepo()
	r := setupPlanRouter(newMockProfileRepo(), progress, &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/progress", map[string]any{
		"user_id":             "u-1",
		"date":                "2026-08-31",
		"completed_exercises": 4,
		"total_exercises":     4,
		"workout_completed":   true,
		"fasting_compliant":   true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(progress.snaps["u-1"]) != 1 {
		t.Fatal("expected the snapshot to be persisted")
	}
}

func TestPlanHandlerRecordProgress_BadDate(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/progress", map[string]any{
		"user_id": "u-1",
		"date":    "31/08/2026",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestProfileHandlerCreateUser_Success(t *testing.T) {
	profiles := newMockProfileRepo()
	r := setupPlanRouter(profiles, newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/users", map[string]any{
		"weight_kg": 90,
		"height_cm": 175,
		"work_type": "sedentary",
		"goal":      "lose_weight",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Assignment domain.PersonalizationAssignment `json:"assignment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Assignment.FastingPattern != domain.Fasting168 {
		t.Fatalf("90kg sedentary resolves to 16:8, got %s", resp.Assignment.FastingPattern)
	}
	if len(profiles.profiles) != 1 {
		t.Fatal("expected the profile to be persisted")
	}
}

func TestProfileHandlerCreateUser_InvalidWorkType(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPost, "/users", map[string]any{
		"weight_kg": 90,
		"height_cm": 175,
		"work_type": "astronaut",
		"goal":      "lose_weight",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestProfileHandlerUpdateAttributes_Reresolves(t *testing.T) {
	profiles := newMockProfileRepo()
	seedProfile(profiles, "u-1")
	r := setupPlanRouter(profiles, newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodPut, "/users/u-1/attributes", map[string]any{
		"weight_kg": 72,
		"work_type": "sedentary",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Assignment domain.PersonalizationAssignment `json:"assignment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Assignment.FastingPattern != domain.Fasting1410 {
		t.Fatalf("72kg sedentary resolves to 14:10, got %s", resp.Assignment.FastingPattern)
	}

	stored := profiles.profiles["u-1"]
	if stored.WeightKg != 72 {
		t.Fatalf("expected persisted weight 72, got %f", stored.WeightKg)
	}
	if !stored.UpdatedAt.After(stored.CreatedAt) {
		t.Fatal("an attribute update must bump the profile version")
	}
}

func TestProfileHandlerGetAssignment_NotFound(t *testing.T) {
	r := setupPlanRouter(newMockProfileRepo(), newMockProgressRepo(), &mockOverrideRepo{})

	rec := performRequest(r, http.MethodGet, "/users/ghost/assignment", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
