package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"scenario_planning/internal/adapter/http/handlers/mocks"
	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type analysisMocks struct {
	sim  *mocks.MockISimulationUseCase
	sens *mocks.MockISensitivityUseCase
	comp *mocks.MockIComparisonUseCase
}

func newAnalysisRouter(ctrl *gomock.Controller) (*gin.Engine, analysisMocks) {
	gin.SetMode(gin.TestMode)
	m := analysisMocks{
		sim:  mocks.NewMockISimulationUseCase(ctrl),
		sens: mocks.NewMockISensitivityUseCase(ctrl),
		comp: mocks.NewMockIComparisonUseCase(ctrl),
	}
	h := NewAnalysisHandler(m.sim, m.sens, m.comp)
	r := gin.New()
	r.POST("/v1/scenarios/compare", h.Compare)
	r.POST("/v1/scenarios/:id/simulate", h.Simulate)
	r.POST("/v1/scenarios/:id/sensitivity", h.Sensitivity)
	return r, m
}

func TestAnalysisHandler_Simulate(t *testing.T) {
	t.Run("defaults with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newAnalysisRouter(ctrl)

		m.sim.EXPECT().Simulate(gomock.Any(), "sc-1", usecase.SimulateInput{}, "system").
			Return(entities.SimulationResult{ScenarioID: "sc-1", Iterations: 1000}, nil)

		w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/simulate", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["scenario_id"] != "sc-1" || body["iterations"] != float64(1000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("parameters are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newAnalysisRouter(ctrl)

		m.sim.EXPECT().Simulate(gomock.Any(), "sc-1", usecase.SimulateInput{Iterations: 500, ConfidenceLevel: 0.9, PersistResults: true}, "ana").
			Return(entities.SimulationResult{ScenarioID: "sc-1"}, nil)

		w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/simulate",
			`{"iterations":500,"confidence_level":0.9,"persist_results":true}`, map[string]string{HeaderUserID: "ana"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newAnalysisRouter(ctrl)

		m.sim.EXPECT().Simulate(gomock.Any(), "sc-1", gomock.Any(), gomock.Any()).
			Return(entities.SimulationResult{}, fmt.Errorf("%w: iterations must be between 100 and 10000", usecase.ErrInvalidAnalysisInput))

		w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/simulate", `{"iterations":5}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_ANALYSIS_INPUT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAnalysisHandler_Sensitivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, m := newAnalysisRouter(ctrl)

	m.sens.EXPECT().Analyze(gomock.Any(), "sc-1", usecase.AnalyzeSensitivityInput{Variables: []string{"revenue_growth"}, RangePercent: 10, Steps: 5}, "system").
		Return(entities.SensitivityResult{ScenarioID: "sc-1", Variables: []string{"revenue_growth"}}, nil)
	m.sens.EXPECT().Analyze(gomock.Any(), "missing", gomock.Any(), gomock.Any()).
		Return(entities.SensitivityResult{}, usecase.ErrScenarioNotFound)

	w := perform(r, http.MethodPost, "/v1/scenarios/sc-1/sensitivity", `{"variables":["revenue_growth"],"range_percent":10,"steps":5}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = perform(r, http.MethodPost, "/v1/scenarios/missing/sensitivity", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAnalysisHandler_Compare(t *testing.T) {
	t.Run("body required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _ := newAnalysisRouter(ctrl)

		w := perform(r, http.MethodPost, "/v1/scenarios/compare", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient scenarios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newAnalysisRouter(ctrl)

		m.comp.EXPECT().Compare(gomock.Any(), usecase.CompareInput{ScenarioIDs: []string{"a"}}).
			Return(entities.ComparisonResult{}, usecase.ErrInsufficientScenarios)

		w := perform(r, http.MethodPost, "/v1/scenarios/compare", `{"scenario_ids":["a"]}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INSUFFICIENT_SCENARIOS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, m := newAnalysisRouter(ctrl)

		m.comp.EXPECT().Compare(gomock.Any(), usecase.CompareInput{ScenarioIDs: []string{"a", "b"}, Metrics: []string{"projected_revenue"}}).
			Return(entities.ComparisonResult{BaselineID: "a"}, nil)

		w := perform(r, http.MethodPost, "/v1/scenarios/compare", `{"scenario_ids":["a","b"],"metrics":["projected_revenue"]}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["baseline_id"] != "a" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
