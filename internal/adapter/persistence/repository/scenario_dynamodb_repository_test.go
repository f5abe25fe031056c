package repository

import (
	"context"
	"testing"
	"time"

	"scenario_planning/internal/domain/entities"
	"scenario_planning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items     map[string]map[string]types.AttributeValue
	puts      []*dynamodb.PutItemInput
	updates   []*dynamodb.UpdateItemInput
	scans     []*dynamodb.ScanInput
	queries   []*dynamodb.QueryInput
	transacts []*dynamodb.TransactWriteItemsInput

	scanPages   [][]map[string]types.AttributeValue
	queryItems  []map[string]types.AttributeValue
	putErr      error
	transactErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	page := len(f.scans) - 1
	out := &dynamodb.ScanOutput{}
	if page < len(f.scanPages) {
		out.Items = f.scanPages[page]
	}
	if page < len(f.scanPages)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "cursor"}}
	}
	return out, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func fullScenario() entities.Scenario {
	lo, hi := 10.0, 20.0
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Scenario{
		ID:          "sc-1",
		Name:        "Plan",
		Description: "FY plan",
		Type:        entities.ScenarioTypeForecast,
		Status:      entities.ScenarioStatusApproved,
		Assumptions: []entities.Assumption{
			{Variable: "revenue_growth", BaseValue: 15, MinValue: &lo, MaxValue: &hi, Unit: "%", Category: "revenue"},
		},
		TimeHorizon: 24,
		Version:     3,
		CreatedBy:   "u-1",
		CreatedAt:   at,
		UpdatedAt:   at.Add(time.Hour),
		Results: &entities.ScenarioResults{
			ProjectedRevenue: 11_500_000,
			ProjectedCosts:   7_725_000,
			ProjectedEBITDA:  3_775_000,
			EBITDAMargin:     32.83,
			CalculatedAt:     at,
		},
		Approval: &entities.Approval{ApprovedBy: "boss", ApprovedAt: at, Comments: "ok", IsBaseline: true},
	}
}

func TestScenarioDynamoRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewScenarioDynamoRepository(ddb)

	s := fullScenario()
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)
	require.Len(t, ddb.puts, 1)
	assert.Equal(t, "scenarios", aws.ToString(ddb.puts[0].TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(ddb.puts[0].ConditionExpression))

	got, err := repo.GetByID(ctx, "sc-1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestScenarioDynamoRepository_CreateConflict(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	repo := NewScenarioDynamoRepository(ddb)

	_, err := repo.Create(context.Background(), fullScenario())
	assert.ErrorIs(t, err, interfaces.ErrScenarioExists)
}

func TestScenarioDynamoRepository_SoftDeleted(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewScenarioDynamoRepository(ddb)
	_, err := repo.Create(ctx, fullScenario())
	require.NoError(t, err)
	ddb.items["sc-1"]["deleted_at"] = &types.AttributeValueMemberS{Value: "2026-03-02T00:00:00Z"}

	got, err := repo.GetByID(ctx, "sc-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	require.NoError(t, repo.Delete(ctx, "sc-1"))
	require.Len(t, ddb.updates, 1)
	assert.Contains(t, aws.ToString(ddb.updates[0].UpdateExpression), "SET #deleted_at = :deleted_at")
}

func TestScenarioDynamoRepository_UpdateMissing(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = &types.ConditionalCheckFailedException{}
	repo := NewScenarioDynamoRepository(ddb)

	got, err := repo.Update(context.Background(), fullScenario())
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestScenarioDynamoRepository_ListPaginates(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewScenarioDynamoRepository(ddb)
	_, _ = repo.Create(context.Background(), fullScenario())
	item := ddb.items["sc-1"]
	ddb.scanPages = [][]map[string]types.AttributeValue{{item}, {item, item}}

	got, err := repo.List(context.Background(), entities.ScenarioFilter{Status: entities.ScenarioStatusApproved})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	require.Len(t, ddb.scans, 2)
	assert.Equal(t, "attribute_not_exists(#deleted_at) AND #status = :status", aws.ToString(ddb.scans[0].FilterExpression))
}

func TestScanFilter(t *testing.T) {
	expr, names, values := scanFilter(entities.ScenarioFilter{})
	assert.Equal(t, "attribute_not_exists(#deleted_at)", expr)
	assert.Len(t, names, 1)
	assert.Empty(t, values)

	expr, names, values = scanFilter(entities.ScenarioFilter{Type: entities.ScenarioTypeBudget, Status: entities.ScenarioStatusDraft, CreatedBy: "u-1"})
	assert.Equal(t, "attribute_not_exists(#deleted_at) AND #type = :type AND #status = :status AND #created_by = :created_by", expr)
	assert.Equal(t, "created_by", names["#created_by"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "budget"}, values[":type"])
}

func TestScenarioDynamoRepository_Approve(t *testing.T) {
	t.Run("single transaction with status guards", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewScenarioDynamoRepository(ddb)

		approved := fullScenario()
		sibling := fullScenario()
		sibling.ID = "sc-0"
		sibling.Status = entities.ScenarioStatusArchived

		require.NoError(t, repo.Approve(context.Background(), approved, []entities.Scenario{sibling}))
		require.Len(t, ddb.transacts, 1)
		actions := ddb.transacts[0].TransactItems
		require.Len(t, actions, 2)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "active"}, actions[0].Put.ExpressionAttributeValues[":expected"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "approved"}, actions[1].Put.ExpressionAttributeValues[":expected"])
	})

	t.Run("cancelled transaction", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.transactErr = &types.TransactionCanceledException{Message: aws.String("ConditionalCheckFailed")}
		repo := NewScenarioDynamoRepository(ddb)

		err := repo.Approve(context.Background(), fullScenario(), nil)
		assert.ErrorIs(t, err, interfaces.ErrConcurrentModification)
	})
}

func TestScenarioDynamoRepository_Versions(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewScenarioDynamoRepository(ddb)

	entry := entities.VersionEntry{
		ScenarioID: "sc-1",
		Version:    2,
		Variables:  []string{"revenue_growth"},
		ChangedBy:  "u-1",
		ChangedAt:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.AppendVersion(ctx, entry))
	require.Len(t, ddb.puts, 1)
	assert.Equal(t, "scenario_versions", aws.ToString(ddb.puts[0].TableName))

	ddb.queryItems = []map[string]types.AttributeValue{ddb.puts[0].Item}
	got, err := repo.ListVersions(ctx, "sc-1")
	require.NoError(t, err)
	assert.Equal(t, []entities.VersionEntry{entry}, got)
	require.Len(t, ddb.queries, 1)
	assert.False(t, aws.ToBool(ddb.queries[0].ScanIndexForward))
}
