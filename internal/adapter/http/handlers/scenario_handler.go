package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"scenario_planning/internal/adapter/http/dto/request"
	"scenario_planning/internal/adapter/http/dto/response"
	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/usecase"
	"scenario_planning/internal/usecase/interfaces"
	"scenario_planning/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// HeaderUserID identifies the caller recorded as actor on writes.
	HeaderUserID = "X-User-ID"
	defaultActor = "system"
)

// ScenarioHandler handles HTTP requests for scenarios and their lifecycle.
type ScenarioHandler struct {
	usecase usecase.IScenarioUseCase
}

func NewScenarioHandler(uc usecase.IScenarioUseCase) *ScenarioHandler {
	return &ScenarioHandler{usecase: uc}
}

// CreateScenario godoc
// @Summary      Create a scenario
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                          false  "Actor"
// @Param        body       body      request.CreateScenarioRequest   true   "Scenario"
// @Success      201        {object}  response.ScenarioResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	var req request.CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("[scenario][handler] create invalid payload", zap.Error(err))
		respondError(c, invalidRequest(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateScenarioInput{
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Type:           entities.ScenarioType(strings.TrimSpace(req.Type)),
		Assumptions:    request.ToAssumptions(req.Assumptions),
		TimeHorizon:    req.TimeHorizon,
		BaseScenarioID: strings.TrimSpace(req.BaseScenarioID),
	}, actor(c))
	if err != nil {
		zap.L().Warn("[scenario][handler] create failed", zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromScenario(created))
}

// ListScenarios godoc
// @Summary      List scenarios
// @Tags         scenarios
// @Produce      json
// @Param        type        query     string  false  "Scenario type"
// @Param        status      query     string  false  "Scenario status"
// @Param        created_by  query     string  false  "Creator"
// @Param        page        query     int     false  "Page, from 1"
// @Param        limit       query     int     false  "Page size, at most 100"
// @Success      200         {object}  response.ScenarioListResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /scenarios [get]
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	var q request.ListScenariosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	page, err := h.usecase.List(c.Request.Context(), usecase.ListScenariosInput{
		Filter: entities.ScenarioFilter{
			Type:      entities.ScenarioType(strings.TrimSpace(q.Type)),
			Status:    entities.ScenarioStatus(strings.TrimSpace(q.Status)),
			CreatedBy: strings.TrimSpace(q.CreatedBy),
		},
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		zap.L().Warn("[scenario][handler] list failed", zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromScenarioPage(page.Items, page.Pagination))
}

// GetScenario godoc
// @Summary      Get a scenario
// @Tags         scenarios
// @Produce      json
// @Param        id   path      string  true  "Scenario ID"
// @Success      200  {object}  response.ScenarioResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /scenarios/{id} [get]
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapScenarioError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromScenario(s))
}

// UpdateScenario godoc
// @Summary      Partially update a scenario
// @Description  Omitted fields are left unchanged. Approved scenarios only accept a move to archived.
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                          false  "Actor"
// @Param        id         path      string                          true   "Scenario ID"
// @Param        body       body      request.UpdateScenarioRequest   true   "Changes"
// @Success      200        {object}  response.ScenarioResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /scenarios/{id} [patch]
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	id := c.Param("id")
	var req request.UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("[scenario][handler] update invalid payload", zap.String("scenario_id", id), zap.Error(err))
		respondError(c, invalidRequest(err))
		return
	}

	patch := usecase.ScenarioPatch{
		Name:        req.Name,
		Description: req.Description,
		TimeHorizon: req.TimeHorizon,
	}
	if req.Status != nil {
		status := entities.ScenarioStatus(strings.TrimSpace(*req.Status))
		patch.Status = &status
	}
	if req.Assumptions != nil {
		assumptions := request.ToAssumptions(*req.Assumptions)
		if assumptions == nil {
			assumptions = []entities.Assumption{}
		}
		patch.Assumptions = &assumptions
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, patch, actor(c))
	if err != nil {
		zap.L().Warn("[scenario][handler] update failed", zap.String("scenario_id", id), zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromScenario(updated))
}

// DeleteScenario godoc
// @Summary      Delete a scenario
// @Tags         scenarios
// @Param        id   path  string  true  "Scenario ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		zap.L().Warn("[scenario][handler] delete failed", zap.String("scenario_id", id), zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveScenario godoc
// @Summary      Approve an active scenario
// @Description  With set_as_baseline, every other approved scenario of the same type is archived.
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                           false  "Actor"
// @Param        id         path      string                           true   "Scenario ID"
// @Param        body       body      request.ApproveScenarioRequest   false  "Approval"
// @Success      200        {object}  response.ScenarioResponse
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /scenarios/{id}/approve [post]
func (h *ScenarioHandler) ApproveScenario(c *gin.Context) {
	id := c.Param("id")
	var req request.ApproveScenarioRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	approved, err := h.usecase.Approve(c.Request.Context(), id, usecase.ApproveInput{
		Comments:      req.Comments,
		SetAsBaseline: req.SetAsBaseline,
	}, actor(c))
	if err != nil {
		zap.L().Warn("[scenario][handler] approve failed", zap.String("scenario_id", id), zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}
	zap.L().Info("[scenario][handler] approved", zap.String("scenario_id", id), zap.Bool("baseline", req.SetAsBaseline))
	c.JSON(http.StatusOK, response.FromScenario(approved))
}

// CloneScenario godoc
// @Summary      Clone a scenario as a new draft
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                         false  "Actor"
// @Param        id         path      string                         true   "Scenario ID"
// @Param        body       body      request.CloneScenarioRequest   false  "Clone"
// @Success      201        {object}  response.ScenarioResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /scenarios/{id}/clone [post]
func (h *ScenarioHandler) CloneScenario(c *gin.Context) {
	id := c.Param("id")
	var req request.CloneScenarioRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	clone, err := h.usecase.Clone(c.Request.Context(), id, req.Name, actor(c))
	if err != nil {
		respondError(c, mapScenarioError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromScenario(clone))
}

// ListVersions godoc
// @Summary      Version history of a scenario
// @Tags         scenarios
// @Produce      json
// @Param        id   path      string  true  "Scenario ID"
// @Success      200  {object}  response.VersionHistoryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /scenarios/{id}/versions [get]
func (h *ScenarioHandler) ListVersions(c *gin.Context) {
	id := c.Param("id")
	versions, err := h.usecase.Versions(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapScenarioError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVersions(strings.TrimSpace(id), versions))
}

// ScoreScenario godoc
// @Summary      Compute and store the deterministic projection
// @Tags         scenarios
// @Produce      json
// @Param        X-User-ID  header    string  false  "Actor"
// @Param        id         path      string  true   "Scenario ID"
// @Success      200        {object}  response.ScenarioResponse
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /scenarios/{id}/score [post]
func (h *ScenarioHandler) ScoreScenario(c *gin.Context) {
	id := c.Param("id")
	scored, err := h.usecase.Score(c.Request.Context(), id, actor(c))
	if err != nil {
		zap.L().Warn("[scenario][handler] score failed", zap.String("scenario_id", id), zap.Error(err))
		respondError(c, mapScenarioError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromScenario(scored))
}

func actor(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(HeaderUserID)); v != "" {
		return v
	}
	return defaultActor
}

// bindOptionalJSON binds the body when one is present.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
}

func mapScenarioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidScenarioID), errors.Is(err, usecase.ErrInvalidScenario):
		return pkg.NewDomainError("INVALID_SCENARIO", "Invalid scenario", err, http.StatusBadRequest).WithMessage(err.Error())
	case errors.Is(err, usecase.ErrInvalidAnalysisInput):
		return pkg.NewDomainError("INVALID_ANALYSIS_INPUT", "Invalid analysis input", err, http.StatusBadRequest).WithMessage(err.Error())
	case errors.Is(err, usecase.ErrInsufficientScenarios):
		return pkg.NewDomainError("INSUFFICIENT_SCENARIOS", "At least two scenarios are required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScenarioNotFound):
		return pkg.NewDomainErrorSimple("SCENARIO_NOT_FOUND", "Scenario not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", "Invalid scenario state", err, http.StatusConflict).WithMessage(err.Error())
	case errors.Is(err, usecase.ErrAlreadyApproved):
		return pkg.NewDomainErrorSimple("ALREADY_APPROVED", "Scenario already approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrImmutableApproved):
		return pkg.NewDomainErrorSimple("IMMUTABLE_APPROVED", "Approved scenarios can only be archived", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConcurrentModification), errors.Is(err, interfaces.ErrScenarioExists):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Scenario was modified concurrently, retry", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
