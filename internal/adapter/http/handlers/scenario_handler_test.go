package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scenario_planning/internal/adapter/http/handlers/mocks"
	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/usecase"
	"scenario_planning/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newScenarioRouter(uc usecase.IScenarioUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewScenarioHandler(uc)
	r := gin.New()
	r.POST("/v1/scenarios", h.CreateScenario)
	r.GET("/v1/scenarios", h.ListScenarios)
	r.GET("/v1/scenarios/:id", h.GetScenario)
	r.PATCH("/v1/scenarios/:id", h.UpdateScenario)
	r.DELETE("/v1/scenarios/:id", h.DeleteScenario)
	r.POST("/v1/scenarios/:id/approve", h.ApproveScenario)
	r.POST("/v1/scenarios/:id/clone", h.CloneScenario)
	r.GET("/v1/scenarios/:id/versions", h.ListVersions)
	r.POST("/v1/scenarios/:id/score", h.ScoreScenario)
	return r
}

func perform(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func sampleScenario(id string, status entities.ScenarioStatus) entities.Scenario {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return entities.Scenario{
		ID:          id,
		Name:        "Plan",
		Type:        entities.ScenarioTypeBudget,
		Status:      status,
		Assumptions: []entities.Assumption{{Variable: "revenue_growth", BaseValue: 15}},
		TimeHorizon: 12,
		Version:     1,
		CreatedBy:   "alice",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestScenarioHandler_CreateScenario(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newScenarioRouter(mocks.NewMockIScenarioUseCase(ctrl))

		w := perform(r, http.MethodPost, "/v1/scenarios", "{", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newScenarioRouter(mocks.NewMockIScenarioUseCase(ctrl))

		w := perform(r, http.MethodPost, "/v1/scenarios", `{"type":"budget"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScenarioUseCase(ctrl)
		r := newScenarioRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "system").
			Return(entities.Scenario{}, fmt.Errorf("%w: unknown type", usecase.ErrInvalidScenario))

		w := perform(r, http.MethodPost, "/v1/scenarios", `{"name":"Plan","type":"nope"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "INVALID_SCENARIO" || body["message"] != "invalid scenario: unknown type" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScenarioUseCase(ctrl)
		r := newScenarioRouter(uc)

		want := usecase.CreateScenarioInput{
			Name:        "Plan",
			Type:        entities.ScenarioTypeBudget,
			Assumptions: []entities.Assumption{{Variable: "revenue_growth", BaseValue: 15}},
			TimeHorizon: 12,
		}
		uc.EXPECT().Create(gomock.Any(), want, "alice").Return(sampleScenario("sc-1", entities.ScenarioStatusDraft), nil)

		w := perform(r, http.MethodPost, "/v1/scenarios",
			`{"name":" Plan ","type":"budget","time_horizon":12,"assumptions":[{"variable":"revenue_growth","base_value":15}]}`,
			map[string]string{HeaderUserID: " alice "})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "sc-1" || body["status"] != "draft" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, ok := body["results"]; ok {
			t.Fatalf("unscored scenario must omit results: %s", w.Body.String())
		}
	})
}

func TestScenarioHandler_ListScenarios(t *testing.T) {
	t.Run("invalid page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newScenarioRouter(mocks.NewMockIScenarioUseCase(ctrl))

		w := perform(r, http.MethodGet, "/v1/scenarios?page=-1", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters and pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScenarioUseCase(ctrl)
		r := newScenarioRouter(uc)

		uc.EXPECT().List(gomock.Any(), usecase.ListScenariosInput{
			Filter: entities.ScenarioFilter{Status: entities.ScenarioStatusActive, CreatedBy: "alice"},
			Page:   2,
			Limit:  5,
		}).Return(usecase.ScenarioPage{
			Items:      []entities.Scenario{sampleScenario("sc-6", entities.ScenarioStatusActive)},
			Pagination: entities.Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2},
		}, nil)

		w := perform(r, http.MethodGet, "/v1/scenarios?status=active&created_by=alice&page=2&limit=5", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		items, _ := body["scenarios"].([]any)
		if len(items) != 1 {
			t.Fatalf("expected one scenario, got %s", w.Body.String())
		}
		p, _ := body["pagination"].(map[string]any)
		if p["total"] != float64(6) || p["total_pages"] != float64(2) {
			t.Fatalf("unexpected pagination: %v", p)
		}
	})
}

func TestScenarioHandler_GetScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIScenarioUseCase(ctrl)
	r := newScenarioRouter(uc)

	uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.Scenario{}, usecase.ErrScenarioNotFound)
	uc.EXPECT().Get(gomock.Any(), "sc-1").Return(sampleScenario("sc-1", entities.ScenarioStatusDraft), nil)

	w := perform(r, http.MethodGet, "/v1/scenarios/missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "SCENARIO_NOT_FOUND" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = perform(r, http.MethodGet, "/v1/scenarios/sc-1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestScenarioHandler_UpdateScenario(t *testing.T) {
	t.Run("status and cleared assumptions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScenarioUseCase(ctrl)
		r := newScenarioRouter(uc)

		uc.EXPECT().Update(gomock.Any(), "sc-1", gomock.Any(), "bob").
			DoAndReturn(func(_ context.Context, id string, patch usecase.ScenarioPatch, _ string) (entities.Scenario, error) {
				if patch.Status == nil || *patch.Status != entities.ScenarioStatusArchived {
					t.Fatalf("expected archived status, got %v", patch.Status)
				}
				if patch.Assumptions == nil || len(*patch.Assumptions) != 0 {
					t.Fatalf("expected an explicit empty assumptions list")
				}
				if patch.Name != nil || patch.TimeHorizon != nil {
					t.Fatalf("omitted fields must stay nil")
				}
				return sampleScenario(id, entities.ScenarioStatusArchived), nil
			})

		w := perform(r, http.MethodPatch, "/v1/scenarios/sc-1", `{"status":"archived","assumptions":[]}`, map[string]string{HeaderUserID: "bob"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("approved scenario is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScenarioUseCase(ctrl)
		r := newScenarioRouter(uc)

		uc.EXPECT().Update(gomock.Any(), "sc-1", gomock.Any(), "system").Return(entities.Scenario{}, usecase.ErrImmutableApproved)

		w := perform(r, http.MethodPatch, "/v1/scenarios/sc-1", `{"name":"x"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "IMMUTABLE_APPROVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestScenarioHandler_DeleteScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIScenarioUseCase(ctrl)
	r := newScenarioRouter(uc)

	uc.EXPECT().Delete(gomock.Any(), "sc-1").Return(nil)
	uc.EXPECT().Delete(gomock.Any(), "sc-2").Return(usecase.ErrScenarioNotFound)

	if w := perform(r, http.MethodDelete, "/v1/scenarios/sc-1", "", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := perform(r, http.MethodDelete, "/v1/scenarios/sc-2", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestScenarioHandler_ApproveScenario(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScenarioUseCase(ctrl)
		r := newScenarioRouter(uc)

		uc.EXPECT().Approve(gomock.Any(), "sc-1", usecase.ApproveInput{}, "system").Return(sampleScenario("sc-1", entities.ScenarioStatusApproved), nil)

		w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/approve", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScenarioUseCase(ctrl)
		r := newScenarioRouter(uc)

		uc.EXPECT().Approve(gomock.Any(), "sc-1", usecase.ApproveInput{Comments: "ok", SetAsBaseline: true}, "cfo").
			Return(sampleScenario("sc-1", entities.ScenarioStatusApproved), nil)

		w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/approve", `{"comments":"ok","set_as_baseline":true}`, map[string]string{HeaderUserID: "cfo"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScenarioUseCase(ctrl)
		r := newScenarioRouter(uc)

		uc.EXPECT().Approve(gomock.Any(), "sc-1", gomock.Any(), gomock.Any()).Return(entities.Scenario{}, usecase.ErrAlreadyApproved)

		w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/approve", `{}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "ALREADY_APPROVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newScenarioRouter(mocks.NewMockIScenarioUseCase(ctrl))

		w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/approve", `{"set_as_baseline":"yes"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestScenarioHandler_CloneScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIScenarioUseCase(ctrl)
	r := newScenarioRouter(uc)

	uc.EXPECT().Clone(gomock.Any(), "sc-1", "Copy", "system").Return(sampleScenario("sc-2", entities.ScenarioStatusDraft), nil)

	w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/clone", `{"name":"Copy"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["id"] != "sc-2" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestScenarioHandler_ListVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIScenarioUseCase(ctrl)
	r := newScenarioRouter(uc)

	uc.EXPECT().Versions(gomock.Any(), "sc-1").Return(nil, nil)

	w := perform(r, http.MethodGet, "/v1/scenarios/sc-1/versions", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	versions, ok := body["versions"].([]any)
	if body["scenario_id"] != "sc-1" || !ok || len(versions) != 0 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestScenarioHandler_ScoreScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIScenarioUseCase(ctrl)
	r := newScenarioRouter(uc)

	scored := sampleScenario("sc-1", entities.ScenarioStatusActive)
	scored.Results = &entities.ScenarioResults{ProjectedRevenue: 100, ProjectedCosts: 60, ProjectedEBITDA: 40, EBITDAMargin: 40}
	uc.EXPECT().Score(gomock.Any(), "sc-1", "system").Return(scored, nil)
	uc.EXPECT().Score(gomock.Any(), "sc-9", "system").Return(entities.Scenario{}, fmt.Errorf("%w: archived", usecase.ErrInvalidState))

	w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/score", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	results, _ := decodeBody(t, w)["results"].(map[string]any)
	if results == nil {
		t.Fatalf("expected results in body: %s", w.Body.String())
	}

	w = perform(r, http.MethodPost, "/v1/scenarios/sc-9/score", "", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestMapScenarioError(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{usecase.ErrInvalidScenarioID, "INVALID_SCENARIO", http.StatusBadRequest},
		{fmt.Errorf("%w: name", usecase.ErrInvalidScenario), "INVALID_SCENARIO", http.StatusBadRequest},
		{usecase.ErrInvalidAnalysisInput, "INVALID_ANALYSIS_INPUT", http.StatusBadRequest},
		{usecase.ErrInsufficientScenarios, "INSUFFICIENT_SCENARIOS", http.StatusBadRequest},
		{fmt.Errorf("load: %w", usecase.ErrScenarioNotFound), "SCENARIO_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrInvalidState, "INVALID_STATE", http.StatusConflict},
		{usecase.ErrAlreadyApproved, "ALREADY_APPROVED", http.StatusConflict},
		{usecase.ErrImmutableApproved, "IMMUTABLE_APPROVED", http.StatusConflict},
		{interfaces.ErrConcurrentModification, "CONCURRENT_MODIFICATION", http.StatusConflict},
		{interfaces.ErrScenarioExists, "CONCURRENT_MODIFICATION", http.StatusConflict},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		appErr := mapScenarioError(tc.err)
		if appErr.Code != tc.code || appErr.HTTPStatus != tc.status {
			t.Fatalf("%v: expected %s/%d, got %s/%d", tc.err, tc.code, tc.status, appErr.Code, appErr.HTTPStatus)
		}
	}
}
