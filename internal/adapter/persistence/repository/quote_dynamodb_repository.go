package repository

import (
	"context"
	"strconv"
	"time"

	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"

	itemTypeQuote       = "quote"
	itemTypeQuoteNumber = "quote_number"
	quoteNumberPrefix   = "quote_number#"
)

type quoteItem struct {
	ID            string  `dynamodbav:"id"`
	ItemType      string  `dynamodbav:"item_type"`
	QuoteNumber   string  `dynamodbav:"quote_number"`
	CustomerName  string  `dynamodbav:"customer_name"`
	CustomerEmail string  `dynamodbav:"customer_email"`
	CustomerPhone string  `dynamodbav:"customer_phone,omitempty"`
	Model         string  `dynamodbav:"model"`
	Storage       string  `dynamodbav:"storage"`
	Network       string  `dynamodbav:"network"`
	Condition     string  `dynamodbav:"condition"`
	Grade         string  `dynamodbav:"grade"`
	AtlasPrice    float64 `dynamodbav:"atlas_price"`
	OfferPrice    float64 `dynamodbav:"offer_price"`
	Margin        float64 `dynamodbav:"margin"`
	Status        string  `dynamodbav:"status"`
	CreatedAt     string  `dynamodbav:"created_at"`
	ExpiresAt     string  `dynamodbav:"expires_at"`
	ExpiresAtMS   int64   `dynamodbav:"expires_at_ms"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

type quoteNumberItem struct {
	ID       string `dynamodbav:"id"`
	ItemType string `dynamodbav:"item_type"`
	QuoteID  string `dynamodbav:"quote_id"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Each quote is written together with a guard item keyed by its quote number
// in one transaction, so a number can never be issued twice. expires_at_ms
// holds the expiry in epoch milliseconds for scan filters.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = defaultQuotesTableName
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	quoteAV, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}
	guardAV, err := attributevalue.MarshalMap(quoteNumberItem{
		ID:       quoteNumberPrefix + q.QuoteNumber,
		ItemType: itemTypeQuoteNumber,
		QuoteID:  q.ID,
	})
	if err != nil {
		return entities.Quote{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guardAV,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     quoteAV,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: names,
			}},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.Quote{}, interfaces.ErrQuoteNumberTaken
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	if it.ItemType != itemTypeQuote {
		return entities.Quote{}, nil
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteNumberPrefix + quoteNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var guard quoteNumberItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Quote{}, err
	}
	return r.GetByID(ctx, guard.QuoteID)
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus, at time.Time) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListPendingExpiringAfter(ctx context.Context, now time.Time) ([]entities.Quote, error) {
	return r.scanPending(ctx, "#expires_at_ms > :now", now)
}

func (r *QuoteDynamoRepository) ListPendingExpiredAt(ctx context.Context, now time.Time) ([]entities.Quote, error) {
	return r.scanPending(ctx, "#expires_at_ms <= :now", now)
}

func (r *QuoteDynamoRepository) scanPending(ctx context.Context, expiryCond string, now time.Time) ([]entities.Quote, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#item_type = :quote AND #status = :pending AND " + expiryCond),
		ExpressionAttributeNames: map[string]string{
			"#item_type":     "item_type",
			"#status":        "status",
			"#expires_at_ms": "expires_at_ms",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quote":   &types.AttributeValueMemberS{Value: itemTypeQuote},
			":pending": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusPending)},
			":now":     &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UTC().UnixMilli(), 10)},
		},
		ConsistentRead: aws.Bool(true),
	})

	var quotes []entities.Quote
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:            q.ID,
		ItemType:      itemTypeQuote,
		QuoteNumber:   q.QuoteNumber,
		CustomerName:  q.Customer.Name,
		CustomerEmail: q.Customer.Email,
		CustomerPhone: q.Customer.Phone,
		Model:         q.Model,
		Storage:       q.Storage,
		Network:       q.Network,
		Condition:     q.Condition,
		Grade:         string(q.Grade),
		AtlasPrice:    q.AtlasPrice,
		OfferPrice:    q.OfferPrice,
		Margin:        q.Margin,
		Status:        string(q.Status),
		CreatedAt:     formatTime(q.CreatedAt),
		ExpiresAt:     formatTime(q.ExpiresAt),
		ExpiresAtMS:   q.ExpiresAt.UTC().UnixMilli(),
		UpdatedAt:     formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:          it.ID,
		QuoteNumber: it.QuoteNumber,
		Customer: entities.Customer{
			Name:  it.CustomerName,
			Email: it.CustomerEmail,
			Phone: it.CustomerPhone,
		},
		Model:      it.Model,
		Storage:    it.Storage,
		Network:    it.Network,
		Condition:  it.Condition,
		Grade:      entities.Grade(it.Grade),
		AtlasPrice: it.AtlasPrice,
		OfferPrice: it.OfferPrice,
		Margin:     it.Margin,
		Status:     entities.QuoteStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		ExpiresAt:  parseTime(it.ExpiresAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
