package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultScenariosTableName = "scenarios"
	defaultVersionsTableName  = "scenario_versions"

	// DynamoDB caps a transaction at 100 actions.
	maxTransactItems = 100
)

// DynamoAPI is the subset of the DynamoDB client used by the repository.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type assumptionItem struct {
	Variable  string   `dynamodbav:"variable"`
	BaseValue float64  `dynamodbav:"base_value"`
	MinValue  *float64 `dynamodbav:"min_value,omitempty"`
	MaxValue  *float64 `dynamodbav:"max_value,omitempty"`
	Unit      string   `dynamodbav:"unit,omitempty"`
	Category  string   `dynamodbav:"category,omitempty"`
}

type resultsItem struct {
	ProjectedRevenue string `dynamodbav:"projected_revenue"`
	ProjectedCosts   string `dynamodbav:"projected_costs"`
	ProjectedEBITDA  string `dynamodbav:"projected_ebitda"`
	EBITDAMargin     string `dynamodbav:"ebitda_margin"`
	CalculatedAt     string `dynamodbav:"calculated_at"`
}

type approvalItem struct {
	ApprovedBy string `dynamodbav:"approved_by"`
	ApprovedAt string `dynamodbav:"approved_at"`
	Comments   string `dynamodbav:"comments,omitempty"`
	IsBaseline bool   `dynamodbav:"is_baseline"`
}

type scenarioItem struct {
	ID          string           `dynamodbav:"id"`
	Name        string           `dynamodbav:"name"`
	Description string           `dynamodbav:"description"`
	Type        string           `dynamodbav:"type"`
	Status      string           `dynamodbav:"status"`
	Assumptions []assumptionItem `dynamodbav:"assumptions"`
	TimeHorizon int              `dynamodbav:"time_horizon"`
	Version     int              `dynamodbav:"version"`
	CreatedBy   string           `dynamodbav:"created_by"`
	CreatedAt   string           `dynamodbav:"created_at"`
	UpdatedAt   string           `dynamodbav:"updated_at"`
	Results     *resultsItem     `dynamodbav:"results,omitempty"`
	Approval    *approvalItem    `dynamodbav:"approval,omitempty"`
	DeletedAt   string           `dynamodbav:"deleted_at,omitempty"`
}

type versionItem struct {
	ScenarioID string   `dynamodbav:"scenario_id"`
	Version    int      `dynamodbav:"version"`
	Variables  []string `dynamodbav:"variables"`
	ChangedBy  string   `dynamodbav:"changed_by"`
	ChangedAt  string   `dynamodbav:"changed_at"`
}

// ScenarioDynamoRepository persists scenarios and their version trail.
//
// Table requirements:
//   - scenarios: PK id (string)
//   - scenario_versions: PK scenario_id (string), SK version (number)
//
// Deletes are soft: the item keeps its id with deleted_at set, so the
// create condition refuses to reuse it.
type ScenarioDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	versionsTable string
}

var _ interfaces.IScenarioRepository = (*ScenarioDynamoRepository)(nil)

func NewScenarioDynamoRepository(ddb DynamoAPI) *ScenarioDynamoRepository {
	return &ScenarioDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SCENARIOS_TABLE", defaultScenariosTableName),
		versionsTable: getenvDefault("SCENARIO_VERSIONS_TABLE", defaultVersionsTableName),
	}
}

func (r *ScenarioDynamoRepository) Create(ctx context.Context, s entities.Scenario) (entities.Scenario, error) {
	av, err := attributevalue.MarshalMap(toScenarioItem(s))
	if err != nil {
		return entities.Scenario{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Scenario{}, fmt.Errorf("scenario %s: %w", s.ID, interfaces.ErrScenarioExists)
		}
		return entities.Scenario{}, err
	}
	return s, nil
}

func (r *ScenarioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Scenario, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Scenario{}, err
	}
	if len(out.Item) == 0 {
		return entities.Scenario{}, nil
	}

	var it scenarioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Scenario{}, err
	}
	if it.DeletedAt != "" {
		return entities.Scenario{}, nil
	}
	return fromScenarioItem(it), nil
}

func (r *ScenarioDynamoRepository) List(ctx context.Context, filter entities.ScenarioFilter) ([]entities.Scenario, error) {
	expr, names, values := scanFilter(filter)
	in := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String(expr),
		ExpressionAttributeNames: names,
		ConsistentRead:           aws.Bool(true),
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}

	items := make([]entities.Scenario, 0)
	pages := dynamodb.NewScanPaginator(r.ddb, in)
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it scenarioItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromScenarioItem(it))
		}
	}
	return items, nil
}

// Update replaces a live scenario. Unknown or deleted ids yield a zero Scenario.
func (r *ScenarioDynamoRepository) Update(ctx context.Context, s entities.Scenario) (entities.Scenario, error) {
	av, err := attributevalue.MarshalMap(toScenarioItem(s))
	if err != nil {
		return entities.Scenario{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#deleted_at)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#deleted_at": "deleted_at",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Scenario{}, nil
		}
		return entities.Scenario{}, err
	}
	return s, nil
}

func (r *ScenarioDynamoRepository) Delete(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#deleted_at)"),
		UpdateExpression:    aws.String("SET #deleted_at = :deleted_at REMOVE #assumptions, #results, #approval"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deleted_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#deleted_at":  "deleted_at",
			"#assumptions": "assumptions",
			"#results":     "results",
			"#approval":    "approval",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

// Approve writes the approval and every archival in one transaction. Each put
// is conditioned on the status the caller observed.
func (r *ScenarioDynamoRepository) Approve(ctx context.Context, approved entities.Scenario, archived []entities.Scenario) error {
	if len(archived)+1 > maxTransactItems {
		return fmt.Errorf("approve %s: %d siblings exceed the transaction limit", approved.ID, len(archived))
	}

	primary, err := r.conditionalPut(approved, entities.ScenarioStatusActive)
	if err != nil {
		return err
	}
	actions := []types.TransactWriteItem{primary}
	for _, s := range archived {
		put, err := r.conditionalPut(s, entities.ScenarioStatusApproved)
		if err != nil {
			return err
		}
		actions = append(actions, put)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: actions})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return fmt.Errorf("approve %s: %w", approved.ID, interfaces.ErrConcurrentModification)
		}
		return err
	}
	return nil
}

func (r *ScenarioDynamoRepository) conditionalPut(s entities.Scenario, expected entities.ScenarioStatus) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toScenarioItem(s))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("#status = :expected AND attribute_not_exists(#deleted_at)"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#deleted_at": "deleted_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberS{Value: string(expected)},
			},
		},
	}, nil
}

func (r *ScenarioDynamoRepository) AppendVersion(ctx context.Context, v entities.VersionEntry) error {
	av, err := attributevalue.MarshalMap(toVersionItem(v))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.versionsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#version)"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("version %d of %s: %w", v.Version, v.ScenarioID, interfaces.ErrConcurrentModification)
		}
		return err
	}
	return nil
}

// ListVersions returns the trail most-recent-first.
func (r *ScenarioDynamoRepository) ListVersions(ctx context.Context, scenarioID string) ([]entities.VersionEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.versionsTable),
		KeyConditionExpression: aws.String("scenario_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: scenarioID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	versions := make([]entities.VersionEntry, 0)
	pages := dynamodb.NewQueryPaginator(r.ddb, in)
	for pages.HasMorePages() {
		out, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it versionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			versions = append(versions, fromVersionItem(it))
		}
	}
	return versions, nil
}

// scanFilter builds the Scan filter for live scenarios matching filter.
func scanFilter(filter entities.ScenarioFilter) (string, map[string]string, map[string]types.AttributeValue) {
	clauses := []string{"attribute_not_exists(#deleted_at)"}
	names := map[string]string{"#deleted_at": "deleted_at"}
	values := map[string]types.AttributeValue{}

	add := func(attr, value string) {
		clauses = append(clauses, fmt.Sprintf("#%s = :%s", attr, attr))
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}
	if filter.Type != "" {
		add("type", string(filter.Type))
	}
	if filter.Status != "" {
		add("status", string(filter.Status))
	}
	if filter.CreatedBy != "" {
		add("created_by", filter.CreatedBy)
	}
	return strings.Join(clauses, " AND "), names, values
}

func toScenarioItem(s entities.Scenario) scenarioItem {
	it := scenarioItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Type:        string(s.Type),
		Status:      string(s.Status),
		Assumptions: make([]assumptionItem, 0, len(s.Assumptions)),
		TimeHorizon: s.TimeHorizon,
		Version:     s.Version,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
	for _, a := range entities.CopyAssumptions(s.Assumptions) {
		it.Assumptions = append(it.Assumptions, assumptionItem(a))
	}
	if s.Results != nil {
		it.Results = &resultsItem{
			ProjectedRevenue: floatToString(s.Results.ProjectedRevenue),
			ProjectedCosts:   floatToString(s.Results.ProjectedCosts),
			ProjectedEBITDA:  floatToString(s.Results.ProjectedEBITDA),
			EBITDAMargin:     floatToString(s.Results.EBITDAMargin),
			CalculatedAt:     formatTime(s.Results.CalculatedAt),
		}
	}
	if s.Approval != nil {
		it.Approval = &approvalItem{
			ApprovedBy: s.Approval.ApprovedBy,
			ApprovedAt: formatTime(s.Approval.ApprovedAt),
			Comments:   s.Approval.Comments,
			IsBaseline: s.Approval.IsBaseline,
		}
	}
	return it
}

func fromScenarioItem(it scenarioItem) entities.Scenario {
	s := entities.Scenario{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Type:        entities.ScenarioType(it.Type),
		Status:      entities.ScenarioStatus(it.Status),
		Assumptions: make([]entities.Assumption, 0, len(it.Assumptions)),
		TimeHorizon: it.TimeHorizon,
		Version:     it.Version,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	for _, a := range it.Assumptions {
		s.Assumptions = append(s.Assumptions, entities.Assumption(a))
	}
	if it.Results != nil {
		s.Results = &entities.ScenarioResults{
			ProjectedRevenue: parseFloat(it.Results.ProjectedRevenue),
			ProjectedCosts:   parseFloat(it.Results.ProjectedCosts),
			ProjectedEBITDA:  parseFloat(it.Results.ProjectedEBITDA),
			EBITDAMargin:     parseFloat(it.Results.EBITDAMargin),
			CalculatedAt:     parseTime(it.Results.CalculatedAt),
		}
	}
	if it.Approval != nil {
		s.Approval = &entities.Approval{
			ApprovedBy: it.Approval.ApprovedBy,
			ApprovedAt: parseTime(it.Approval.ApprovedAt),
			Comments:   it.Approval.Comments,
			IsBaseline: it.Approval.IsBaseline,
		}
	}
	return s
}

func toVersionItem(v entities.VersionEntry) versionItem {
	return versionItem{
		ScenarioID: v.ScenarioID,
		Version:    v.Version,
		Variables:  append([]string{}, v.Variables...),
		ChangedBy:  v.ChangedBy,
		ChangedAt:  formatTime(v.ChangedAt),
	}
}

func fromVersionItem(it versionItem) entities.VersionEntry {
	return entities.VersionEntry{
		ScenarioID: it.ScenarioID,
		Version:    it.Version,
		Variables:  it.Variables,
		ChangedBy:  it.ChangedBy,
		ChangedAt:  parseTime(it.ChangedAt),
	}
}
