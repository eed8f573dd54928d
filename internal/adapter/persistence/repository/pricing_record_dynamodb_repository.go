package repository

import (
	"context"

	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingTableName = "pricing_records"

type pricingRecordItem struct {
	ID         string `dynamodbav:"id"`
	Model      string `dynamodbav:"model"`
	DeviceType string `dynamodbav:"device_type,omitempty"`
	Storage    string `dynamodbav:"storage"`
	Network    string `dynamodbav:"network"`
	Series     string `dynamodbav:"series,omitempty"`

	PriceSwap   *float64 `dynamodbav:"price_swap,omitempty"`
	PriceGradeA *float64 `dynamodbav:"price_grade_a,omitempty"`
	PriceGradeB *float64 `dynamodbav:"price_grade_b,omitempty"`
	PriceGradeC *float64 `dynamodbav:"price_grade_c,omitempty"`
	PriceGradeD *float64 `dynamodbav:"price_grade_d,omitempty"`
	PriceDOA    *float64 `dynamodbav:"price_doa,omitempty"`
	CrackedBack *float64 `dynamodbav:"cracked_back,omitempty"`
	CrackedLens *float64 `dynamodbav:"cracked_lens,omitempty"`

	OverrideGradeA *float64 `dynamodbav:"override_grade_a,omitempty"`
	OverrideGradeB *float64 `dynamodbav:"override_grade_b,omitempty"`
	OverrideGradeC *float64 `dynamodbav:"override_grade_c,omitempty"`
	OverrideGradeD *float64 `dynamodbav:"override_grade_d,omitempty"`
	OverrideDOA    *float64 `dynamodbav:"override_doa,omitempty"`
	OverrideSetAt  string   `dynamodbav:"override_set_at,omitempty"`
	OverrideSetBy  string   `dynamodbav:"override_set_by,omitempty"`

	OfferGradeA        *float64 `dynamodbav:"offer_grade_a,omitempty"`
	OfferGradeB        *float64 `dynamodbav:"offer_grade_b,omitempty"`
	OfferGradeC        *float64 `dynamodbav:"offer_grade_c,omitempty"`
	OfferGradeD        *float64 `dynamodbav:"offer_grade_d,omitempty"`
	OfferDOA           *float64 `dynamodbav:"offer_doa,omitempty"`
	OffersCalculatedAt string   `dynamodbav:"offers_calculated_at,omitempty"`

	SyncedAt  string `dynamodbav:"synced_at,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PricingRecordDynamoRepository persists PricingRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, variant key)
type PricingRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingRecordRepository = (*PricingRecordDynamoRepository)(nil)

func NewPricingRecordDynamoRepository(ddb *dynamodb.Client, tableName string) *PricingRecordDynamoRepository {
	if tableName == "" {
		tableName = defaultPricingTableName
	}
	return &PricingRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PricingRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PricingRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingRecord{}, nil
	}

	var it pricingRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingRecord{}, err
	}
	return fromPricingRecordItem(it), nil
}

// Save replaces the whole item.
func (r *PricingRecordDynamoRepository) Save(ctx context.Context, rec entities.PricingRecord) error {
	av, err := attributevalue.MarshalMap(toPricingRecordItem(rec))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PricingRecordDynamoRepository) List(ctx context.Context) ([]entities.PricingRecord, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var records []entities.PricingRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it pricingRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromPricingRecordItem(it))
		}
	}
	return records, nil
}

func toPricingRecordItem(r entities.PricingRecord) pricingRecordItem {
	return pricingRecordItem{
		ID:                 r.ID,
		Model:              r.Model,
		DeviceType:         r.DeviceType,
		Storage:            r.Storage,
		Network:            r.Network,
		Series:             r.Series,
		PriceSwap:          r.PriceSwap,
		PriceGradeA:        r.PriceGradeA,
		PriceGradeB:        r.PriceGradeB,
		PriceGradeC:        r.PriceGradeC,
		PriceGradeD:        r.PriceGradeD,
		PriceDOA:           r.PriceDOA,
		CrackedBack:        r.CrackedBack,
		CrackedLens:        r.CrackedLens,
		OverrideGradeA:     r.OverrideGradeA,
		OverrideGradeB:     r.OverrideGradeB,
		OverrideGradeC:     r.OverrideGradeC,
		OverrideGradeD:     r.OverrideGradeD,
		OverrideDOA:        r.OverrideDOA,
		OverrideSetAt:      formatTimePtr(r.OverrideSetAt),
		OverrideSetBy:      r.OverrideSetBy,
		OfferGradeA:        r.OfferGradeA,
		OfferGradeB:        r.OfferGradeB,
		OfferGradeC:        r.OfferGradeC,
		OfferGradeD:        r.OfferGradeD,
		OfferDOA:           r.OfferDOA,
		OffersCalculatedAt: formatTimePtr(r.OffersCalculatedAt),
		SyncedAt:           formatTime(r.SyncedAt),
		UpdatedAt:          formatTime(r.UpdatedAt),
	}
}

func fromPricingRecordItem(it pricingRecordItem) entities.PricingRecord {
	return entities.PricingRecord{
		ID:                 it.ID,
		Model:              it.Model,
		DeviceType:         it.DeviceType,
		Storage:            it.Storage,
		Network:            it.Network,
		Series:             it.Series,
		PriceSwap:          it.PriceSwap,
		PriceGradeA:        it.PriceGradeA,
		PriceGradeB:        it.PriceGradeB,
		PriceGradeC:        it.PriceGradeC,
		PriceGradeD:        it.PriceGradeD,
		PriceDOA:           it.PriceDOA,
		CrackedBack:        it.CrackedBack,
		CrackedLens:        it.CrackedLens,
		OverrideGradeA:     it.OverrideGradeA,
		OverrideGradeB:     it.OverrideGradeB,
		OverrideGradeC:     it.OverrideGradeC,
		OverrideGradeD:     it.OverrideGradeD,
		OverrideDOA:        it.OverrideDOA,
		OverrideSetAt:      parseTimePtr(it.OverrideSetAt),
		OverrideSetBy:      it.OverrideSetBy,
		OfferGradeA:        it.OfferGradeA,
		OfferGradeB:        it.OfferGradeB,
		OfferGradeC:        it.OfferGradeC,
		OfferGradeD:        it.OfferGradeD,
		OfferDOA:           it.OfferDOA,
		OffersCalculatedAt: parseTimePtr(it.OffersCalculatedAt),
		SyncedAt:           parseTime(it.SyncedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
