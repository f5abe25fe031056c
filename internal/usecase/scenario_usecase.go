package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/domain/forecast"
	"scenario_planning/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrScenarioNotFound  = errors.New("scenario not found")
	ErrInvalidScenarioID = errors.New("invalid scenario id")
	ErrInvalidScenario   = errors.New("invalid scenario")
	ErrInvalidState      = errors.New("invalid scenario state")
	ErrAlreadyApproved   = errors.New("scenario already approved")
	ErrImmutableApproved = errors.New("approved scenario is immutable")
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// CreateScenarioInput carries the fields accepted on scenario creation.
// When BaseScenarioID is set and Assumptions is empty, the assumptions of the
// base scenario are copied.
type CreateScenarioInput struct {
	Name           string                `validate:"required,max=200"`
	Description    string                `validate:"max=2000"`
	Type           entities.ScenarioType `validate:"required,oneof=budget forecast what_if sensitivity"`
	Assumptions    []entities.Assumption
	TimeHorizon    int `validate:"omitempty,min=1,max=60"`
	BaseScenarioID string
}

// ScenarioPatch lists the fields an update may change. Nil fields are left
// untouched; a non-nil empty Assumptions clears them.
type ScenarioPatch struct {
	Name        *string
	Description *string
	Status      *entities.ScenarioStatus
	Assumptions *[]entities.Assumption
	TimeHorizon *int
}

type ApproveInput struct {
	Comments      string
	SetAsBaseline bool
}

type ListScenariosInput struct {
	Filter entities.ScenarioFilter
	Page   int
	Limit  int
}

type ScenarioPage struct {
	Items      []entities.Scenario
	Pagination entities.Pagination
}

// IScenarioUseCase exposes the scenario store and its lifecycle rules.
type IScenarioUseCase interface {
	Create(ctx context.Context, in CreateScenarioInput, actor string) (entities.Scenario, error)
	Get(ctx context.Context, id string) (entities.Scenario, error)
	List(ctx context.Context, in ListScenariosInput) (ScenarioPage, error)
	Update(ctx context.Context, id string, patch ScenarioPatch, actor string) (entities.Scenario, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string, in ApproveInput, actor string) (entities.Scenario, error)
	Clone(ctx context.Context, id string, newName string, actor string) (entities.Scenario, error)
	Versions(ctx context.Context, id string) ([]entities.VersionEntry, error)
	Score(ctx context.Context, id string, actor string) (entities.Scenario, error)
}

// IScenarioScorer persists the deterministic projection onto a scenario.
type IScenarioScorer interface {
	Score(ctx context.Context, id string, actor string) (entities.Scenario, error)
}

type ScenarioUseCase struct {
	repo     interfaces.IScenarioRepository
	baseline forecast.Baseline
	recorder interfaces.IAnalysisRecorder
	validate *validator.Validate
	locks    *keyedMutex
}

var _ IScenarioUseCase = (*ScenarioUseCase)(nil)

func NewScenarioUseCase(repo interfaces.IScenarioRepository, baseline forecast.Baseline, recorder interfaces.IAnalysisRecorder) *ScenarioUseCase {
	if recorder == nil {
		recorder = interfaces.NopRecorder{}
	}
	return &ScenarioUseCase{
		repo:     repo,
		baseline: baseline,
		recorder: recorder,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		locks:    newKeyedMutex(),
	}
}

func (u *ScenarioUseCase) Create(ctx context.Context, in CreateScenarioInput, actor string) (entities.Scenario, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.BaseScenarioID = strings.TrimSpace(in.BaseScenarioID)
	if err := u.validate.Struct(in); err != nil {
		return entities.Scenario{}, fmt.Errorf("%w: %s", ErrInvalidScenario, err.Error())
	}
	if err := validateAssumptions(in.Assumptions); err != nil {
		return entities.Scenario{}, err
	}

	assumptions := entities.CopyAssumptions(in.Assumptions)
	if in.BaseScenarioID != "" && len(assumptions) == 0 {
		base, err := u.load(ctx, in.BaseScenarioID)
		if err != nil {
			return entities.Scenario{}, fmt.Errorf("base scenario %s: %w", in.BaseScenarioID, err)
		}
		assumptions = entities.CopyAssumptions(base.Assumptions)
	}
	if assumptions == nil {
		assumptions = []entities.Assumption{}
	}

	horizon := in.TimeHorizon
	if horizon == 0 {
		horizon = entities.DefaultTimeHorizon
	}

	now := time.Now().UTC()
	s := entities.Scenario{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Type:        in.Type,
		Status:      entities.ScenarioStatusDraft,
		Assumptions: assumptions,
		TimeHorizon: horizon,
		Version:     1,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		zap.L().Error("[scenario][usecase] create failed", zap.String("scenario_id", s.ID), zap.Error(err))
		return entities.Scenario{}, err
	}
	u.recorder.IncLifecycle("create")
	zap.L().Info("[scenario][usecase] created",
		zap.String("scenario_id", created.ID),
		zap.String("type", string(created.Type)),
		zap.Int("assumptions", len(created.Assumptions)),
		zap.String("actor", actor))
	return created, nil
}

func (u *ScenarioUseCase) Get(ctx context.Context, id string) (entities.Scenario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Scenario{}, ErrInvalidScenarioID
	}
	return u.load(ctx, id)
}

func (u *ScenarioUseCase) List(ctx context.Context, in ListScenariosInput) (ScenarioPage, error) {
	if in.Filter.Type != "" && !in.Filter.Type.Valid() {
		return ScenarioPage{}, fmt.Errorf("%w: unknown type %q", ErrInvalidScenario, in.Filter.Type)
	}
	if in.Filter.Status != "" && !in.Filter.Status.Valid() {
		return ScenarioPage{}, fmt.Errorf("%w: unknown status %q", ErrInvalidScenario, in.Filter.Status)
	}

	page, limit := in.Page, in.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	all, err := u.repo.List(ctx, in.Filter)
	if err != nil {
		return ScenarioPage{}, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})

	total := len(all)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return ScenarioPage{
		Items: all[start:end],
		Pagination: entities.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

func (u *ScenarioUseCase) Update(ctx context.Context, id string, patch ScenarioPatch, actor string) (entities.Scenario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Scenario{}, ErrInvalidScenarioID
	}
	unlock := u.locks.Lock(id)
	defer unlock()

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Scenario{}, err
	}

	next := current.Clone()
	fieldsChanged := false

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Scenario{}, fmt.Errorf("%w: name is required", ErrInvalidScenario)
		}
		if name != current.Name {
			next.Name = name
			fieldsChanged = true
		}
	}
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		if desc != current.Description {
			next.Description = desc
			fieldsChanged = true
		}
	}
	if patch.TimeHorizon != nil {
		h := *patch.TimeHorizon
		if h < entities.MinTimeHorizon || h > entities.MaxTimeHorizon {
			return entities.Scenario{}, fmt.Errorf("%w: time_horizon must be between %d and %d", ErrInvalidScenario, entities.MinTimeHorizon, entities.MaxTimeHorizon)
		}
		if h != current.TimeHorizon {
			next.TimeHorizon = h
			fieldsChanged = true
		}
	}

	var changedVars []string
	if patch.Assumptions != nil {
		if err := validateAssumptions(*patch.Assumptions); err != nil {
			return entities.Scenario{}, err
		}
		changedVars = diffAssumptions(current.Assumptions, *patch.Assumptions)
		if len(changedVars) > 0 {
			next.Assumptions = entities.CopyAssumptions(*patch.Assumptions)
			if next.Assumptions == nil {
				next.Assumptions = []entities.Assumption{}
			}
			next.Version++
			fieldsChanged = true
		}
	}

	statusChanged := patch.Status != nil && *patch.Status != current.Status

	if current.Status == entities.ScenarioStatusApproved {
		if fieldsChanged || (statusChanged && *patch.Status != entities.ScenarioStatusArchived) {
			return entities.Scenario{}, ErrImmutableApproved
		}
	}
	if statusChanged {
		to := *patch.Status
		if !to.Valid() {
			return entities.Scenario{}, fmt.Errorf("%w: unknown status %q", ErrInvalidScenario, to)
		}
		if to != entities.ScenarioStatusArchived || !entities.CanTransition(current.Status, to) {
			return entities.Scenario{}, fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidState, current.Status, to)
		}
		next.Status = to
	}

	if !fieldsChanged && !statusChanged {
		return current, nil
	}

	now := time.Now().UTC()
	next.UpdatedAt = now
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		zap.L().Error("[scenario][usecase] update failed", zap.String("scenario_id", id), zap.Error(err))
		return entities.Scenario{}, err
	}
	if updated.ID == "" {
		return entities.Scenario{}, ErrScenarioNotFound
	}

	if len(changedVars) > 0 {
		entry := entities.VersionEntry{
			ScenarioID: id,
			Version:    updated.Version,
			Variables:  changedVars,
			ChangedBy:  actor,
			ChangedAt:  now,
		}
		if err := u.repo.AppendVersion(ctx, entry); err != nil {
			zap.L().Error("[scenario][usecase] version append failed", zap.String("scenario_id", id), zap.Int("version", entry.Version), zap.Error(err))
			return entities.Scenario{}, err
		}
	}
	if statusChanged {
		u.recorder.IncLifecycle(string(updated.Status))
	}

	zap.L().Info("[scenario][usecase] updated",
		zap.String("scenario_id", id),
		zap.String("status", string(updated.Status)),
		zap.Strings("changed_variables", changedVars),
		zap.String("actor", actor))
	return updated, nil
}

func (u *ScenarioUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidScenarioID
	}
	unlock := u.locks.Lock(id)
	defer unlock()

	current, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == entities.ScenarioStatusApproved {
		return ErrImmutableApproved
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		zap.L().Error("[scenario][usecase] delete failed", zap.String("scenario_id", id), zap.Error(err))
		return err
	}
	u.recorder.IncLifecycle("delete")
	zap.L().Info("[scenario][usecase] deleted", zap.String("scenario_id", id))
	return nil
}

// Approve moves an active scenario to approved. With SetAsBaseline every other
// approved scenario of the same type is archived in the same transaction.
func (u *ScenarioUseCase) Approve(ctx context.Context, id string, in ApproveInput, actor string) (entities.Scenario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Scenario{}, ErrInvalidScenarioID
	}
	unlock := u.locks.Lock(id)
	defer unlock()

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Scenario{}, err
	}
	if current.Status == entities.ScenarioStatusApproved {
		return entities.Scenario{}, ErrAlreadyApproved
	}
	if current.Status != entities.ScenarioStatusActive {
		return entities.Scenario{}, fmt.Errorf("%w: approval requires an active scenario, got %s", ErrInvalidState, current.Status)
	}

	now := time.Now().UTC()
	var archived []entities.Scenario
	if in.SetAsBaseline {
		unlockType := u.locks.Lock("type:" + string(current.Type))
		defer unlockType()

		siblings, err := u.repo.List(ctx, entities.ScenarioFilter{Type: current.Type, Status: entities.ScenarioStatusApproved})
		if err != nil {
			return entities.Scenario{}, err
		}
		for _, s := range siblings {
			if s.ID == id {
				continue
			}
			s = s.Clone()
			s.Status = entities.ScenarioStatusArchived
			s.UpdatedAt = now
			archived = append(archived, s)
		}
	}

	approved := current.Clone()
	approved.Status = entities.ScenarioStatusApproved
	approved.UpdatedAt = now
	approved.Approval = &entities.Approval{
		ApprovedBy: actor,
		ApprovedAt: now,
		Comments:   strings.TrimSpace(in.Comments),
		IsBaseline: in.SetAsBaseline,
	}

	if err := u.repo.Approve(ctx, approved, archived); err != nil {
		zap.L().Error("[scenario][usecase] approve failed", zap.String("scenario_id", id), zap.Int("archived", len(archived)), zap.Error(err))
		return entities.Scenario{}, err
	}
	u.recorder.IncLifecycle("approve")
	zap.L().Info("[scenario][usecase] approved",
		zap.String("scenario_id", id),
		zap.Bool("baseline", in.SetAsBaseline),
		zap.Int("archived_siblings", len(archived)),
		zap.String("actor", actor))
	return approved, nil
}

func (u *ScenarioUseCase) Clone(ctx context.Context, id string, newName string, actor string) (entities.Scenario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Scenario{}, ErrInvalidScenarioID
	}
	source, err := u.load(ctx, id)
	if err != nil {
		return entities.Scenario{}, err
	}

	name := strings.TrimSpace(newName)
	if name == "" {
		name = source.Name + " (copy)"
	}
	assumptions := entities.CopyAssumptions(source.Assumptions)
	if assumptions == nil {
		assumptions = []entities.Assumption{}
	}

	now := time.Now().UTC()
	clone := entities.Scenario{
		ID:          uuid.NewString(),
		Name:        name,
		Description: source.Description,
		Type:        source.Type,
		Status:      entities.ScenarioStatusDraft,
		Assumptions: assumptions,
		TimeHorizon: source.TimeHorizon,
		Version:     1,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, clone)
	if err != nil {
		zap.L().Error("[scenario][usecase] clone failed", zap.String("source_id", id), zap.Error(err))
		return entities.Scenario{}, err
	}
	u.recorder.IncLifecycle("clone")
	zap.L().Info("[scenario][usecase] cloned", zap.String("source_id", id), zap.String("scenario_id", created.ID), zap.String("actor", actor))
	return created, nil
}

func (u *ScenarioUseCase) Versions(ctx context.Context, id string) ([]entities.VersionEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidScenarioID
	}
	if _, err := u.load(ctx, id); err != nil {
		return nil, err
	}
	versions, err := u.repo.ListVersions(ctx, id)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Version > versions[j].Version
	})
	return versions, nil
}

// Score stores the deterministic baseline projection of the scenario as its
// cached results. A draft scenario becomes active.
func (u *ScenarioUseCase) Score(ctx context.Context, id string, actor string) (entities.Scenario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Scenario{}, ErrInvalidScenarioID
	}
	unlock := u.locks.Lock(id)
	defer unlock()

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Scenario{}, err
	}
	if current.Status == entities.ScenarioStatusApproved {
		return entities.Scenario{}, ErrImmutableApproved
	}

	now := time.Now().UTC()
	outcome := u.baseline.Score(current.Assumptions)
	next := current.Clone()
	next.Results = &entities.ScenarioResults{
		ProjectedRevenue: forecast.Round(outcome.Revenue, 2),
		ProjectedCosts:   forecast.Round(outcome.Costs, 2),
		ProjectedEBITDA:  forecast.Round(outcome.EBITDA, 2),
		EBITDAMargin:     forecast.Round(outcome.Margin(), 2),
		CalculatedAt:     now,
	}
	if current.Status == entities.ScenarioStatusDraft {
		next.Status = entities.ScenarioStatusActive
	}
	next.UpdatedAt = now

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		zap.L().Error("[scenario][usecase] score failed", zap.String("scenario_id", id), zap.Error(err))
		return entities.Scenario{}, err
	}
	if updated.ID == "" {
		return entities.Scenario{}, ErrScenarioNotFound
	}
	if current.Status != updated.Status {
		u.recorder.IncLifecycle(string(updated.Status))
	}
	zap.L().Info("[scenario][usecase] scored",
		zap.String("scenario_id", id),
		zap.Float64("projected_ebitda", updated.Results.ProjectedEBITDA),
		zap.String("actor", actor))
	return updated, nil
}

func (u *ScenarioUseCase) load(ctx context.Context, id string) (entities.Scenario, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Scenario{}, err
	}
	if s.ID == "" {
		return entities.Scenario{}, ErrScenarioNotFound
	}
	return s, nil
}

func validateAssumptions(in []entities.Assumption) error {
	seen := make(map[string]struct{}, len(in))
	for i, a := range in {
		v := strings.TrimSpace(a.Variable)
		if v == "" {
			return fmt.Errorf("%w: assumption %d has no variable", ErrInvalidScenario, i)
		}
		if v != a.Variable {
			return fmt.Errorf("%w: variable %q has surrounding spaces", ErrInvalidScenario, a.Variable)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: duplicate assumption for %q", ErrInvalidScenario, v)
		}
		seen[v] = struct{}{}
		if a.MinValue != nil && a.MaxValue != nil && *a.MinValue > *a.MaxValue {
			return fmt.Errorf("%w: %q min_value exceeds max_value", ErrInvalidScenario, v)
		}
	}
	return nil
}

// diffAssumptions lists the variables added, modified or removed between two
// assumption sets. Ordering alone is not a change.
func diffAssumptions(before, after []entities.Assumption) []string {
	old := make(map[string]entities.Assumption, len(before))
	for _, a := range before {
		old[a.Variable] = a
	}
	var changed []string
	kept := make(map[string]struct{}, len(after))
	for _, a := range after {
		kept[a.Variable] = struct{}{}
		if prev, ok := old[a.Variable]; !ok || !prev.Equal(a) {
			changed = append(changed, a.Variable)
		}
	}
	for _, a := range before {
		if _, ok := kept[a.Variable]; !ok {
			changed = append(changed, a.Variable)
		}
	}
	return changed
}
