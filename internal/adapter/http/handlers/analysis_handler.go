package handlers

import (
	"net/http"

	"scenario_planning/internal/adapter/http/dto/request"
	"scenario_planning/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalysisHandler exposes the simulation, sensitivity and comparison engines.
type AnalysisHandler struct {
	simulation  usecase.ISimulationUseCase
	sensitivity usecase.ISensitivityUseCase
	comparison  usecase.IComparisonUseCase
}

func NewAnalysisHandler(sim usecase.ISimulationUseCase, sens usecase.ISensitivityUseCase, comp usecase.IComparisonUseCase) *AnalysisHandler {
	return &AnalysisHandler{simulation: sim, sensitivity: sens, comparison: comp}
}

// Simulate godoc
// @Summary      Run a Monte Carlo simulation
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                    false  "Actor"
// @Param        id         path      string                    true   "Scenario ID"
// @Param        body       body      request.SimulateRequest   false  "Simulation parameters"
// @Success      200        {object}  entities.SimulationResult
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /scenarios/{id}/simulate [post]
func (h *AnalysisHandler) Simulate(c *gin.Context) {
	id := c.Param("id")
	var req request.SimulateRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	res, err := h.simulation.Simulate(c.Request.Context(), id, usecase.SimulateInput{
		Iterations:      req.Iterations,
		ConfidenceLevel: req.ConfidenceLevel,
		PersistResults:  req.PersistResults,
	}, actor(c))
	if err != nil {
		zap.L().Warn("[analysis][handler] simulate failed", zap.String("scenario_id", id), zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Sensitivity godoc
// @Summary      Run a one-at-a-time sensitivity sweep
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                       false  "Actor"
// @Param        id         path      string                       true   "Scenario ID"
// @Param        body       body      request.SensitivityRequest   false  "Sweep parameters"
// @Success      200        {object}  entities.SensitivityResult
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /scenarios/{id}/sensitivity [post]
func (h *AnalysisHandler) Sensitivity(c *gin.Context) {
	id := c.Param("id")
	var req request.SensitivityRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	res, err := h.sensitivity.Analyze(c.Request.Context(), id, usecase.AnalyzeSensitivityInput{
		Variables:      req.Variables,
		RangePercent:   req.RangePercent,
		Steps:          req.Steps,
		PersistResults: req.PersistResults,
	}, actor(c))
	if err != nil {
		zap.L().Warn("[analysis][handler] sensitivity failed", zap.String("scenario_id", id), zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Compare godoc
// @Summary      Compare scenarios against the first one
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      request.CompareRequest  true  "Scenarios and metrics"
// @Success      200   {object}  entities.ComparisonResult
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /scenarios/compare [post]
func (h *AnalysisHandler) Compare(c *gin.Context) {
	var req request.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	res, err := h.comparison.Compare(c.Request.Context(), usecase.CompareInput{
		ScenarioIDs: req.ScenarioIDs,
		Metrics:     req.Metrics,
	})
	if err != nil {
		zap.L().Warn("[analysis][handler] compare failed", zap.Strings("scenario_ids", req.ScenarioIDs), zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
