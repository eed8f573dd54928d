package repository

import (
	"context"
	"sort"

	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPolicyTableName = "margin_policy"
	activePolicyID         = "active"
)

type marginTierItem struct {
	Min        float64            `dynamodbav:"min"`
	Max        *float64           `dynamodbav:"max,omitempty"`
	Deductions map[string]float64 `dynamodbav:"deductions"`
}

type seriesOverrideItem struct {
	Enabled bool               `dynamodbav:"enabled"`
	Margins map[string]float64 `dynamodbav:"margins"`
}

type marginPolicyItem struct {
	ID                string                        `dynamodbav:"id"`
	Mode              string                        `dynamodbav:"mode"`
	PercentageMargins map[string]float64            `dynamodbav:"percentage_margins"`
	TieredMargins     []marginTierItem              `dynamodbav:"tiered_margins"`
	SeriesOverrides   map[string]seriesOverrideItem `dynamodbav:"series_overrides,omitempty"`
	UpdatedAt         string                        `dynamodbav:"updated_at"`
	UpdatedBy         string                        `dynamodbav:"updated_by,omitempty"`
}

// MarginPolicyDynamoRepository stores the active policy as a single item.
//
// Table requirements:
//   - PK: id (string); the active policy lives under id = "active"
type MarginPolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMarginPolicyRepository = (*MarginPolicyDynamoRepository)(nil)

func NewMarginPolicyDynamoRepository(ddb *dynamodb.Client, tableName string) *MarginPolicyDynamoRepository {
	if tableName == "" {
		tableName = defaultPolicyTableName
	}
	return &MarginPolicyDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MarginPolicyDynamoRepository) Get(ctx context.Context) (entities.MarginPolicy, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: activePolicyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MarginPolicy{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.MarginPolicy{}, false, nil
	}

	var it marginPolicyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MarginPolicy{}, false, err
	}
	return fromMarginPolicyItem(it), true, nil
}

func (r *MarginPolicyDynamoRepository) Save(ctx context.Context, p entities.MarginPolicy) error {
	av, err := attributevalue.MarshalMap(toMarginPolicyItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toMarginPolicyItem(p entities.MarginPolicy) marginPolicyItem {
	it := marginPolicyItem{
		ID:                activePolicyID,
		Mode:              string(p.Mode),
		PercentageMargins: toGradeMap(p.PercentageMargins),
		TieredMargins:     make([]marginTierItem, 0, len(p.TieredMargins)),
		UpdatedAt:         formatTime(p.UpdatedAt),
		UpdatedBy:         p.UpdatedBy,
	}
	for _, t := range p.TieredMargins {
		it.TieredMargins = append(it.TieredMargins, marginTierItem{
			Min:        t.Min,
			Max:        t.Max,
			Deductions: toGradeMap(t.Deductions),
		})
	}
	if len(p.SeriesOverrides) > 0 {
		it.SeriesOverrides = make(map[string]seriesOverrideItem, len(p.SeriesOverrides))
		for name, o := range p.SeriesOverrides {
			it.SeriesOverrides[name] = seriesOverrideItem{Enabled: o.Enabled, Margins: toGradeMap(o.Margins)}
		}
	}
	return it
}

func fromMarginPolicyItem(it marginPolicyItem) entities.MarginPolicy {
	p := entities.MarginPolicy{
		Mode:              entities.MarginMode(it.Mode),
		PercentageMargins: fromGradeMap(it.PercentageMargins),
		TieredMargins:     make([]entities.MarginTier, 0, len(it.TieredMargins)),
		SeriesOverrides:   make(map[string]entities.SeriesOverride, len(it.SeriesOverrides)),
		UpdatedAt:         parseTime(it.UpdatedAt),
		UpdatedBy:         it.UpdatedBy,
	}
	for _, t := range it.TieredMargins {
		p.TieredMargins = append(p.TieredMargins, entities.MarginTier{
			Min:        t.Min,
			Max:        t.Max,
			Deductions: fromGradeMap(t.Deductions),
		})
	}
	sort.SliceStable(p.TieredMargins, func(i, j int) bool { return p.TieredMargins[i].Min < p.TieredMargins[j].Min })
	for name, o := range it.SeriesOverrides {
		p.SeriesOverrides[name] = entities.SeriesOverride{Enabled: o.Enabled, Margins: fromGradeMap(o.Margins)}
	}
	return p
}

func toGradeMap(m entities.GradeMargins) map[string]float64 {
	out := make(map[string]float64, len(m))
	for g, v := range m {
		out[string(g)] = v
	}
	return out
}

func fromGradeMap(m map[string]float64) entities.GradeMargins {
	out := make(entities.GradeMargins, len(m))
	for g, v := range m {
		out[entities.Grade(g)] = v
	}
	return out
}
