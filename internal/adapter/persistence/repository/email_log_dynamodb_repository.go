package repository

import (
	"context"
	"strings"
	"time"

	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEmailLogsTableName = "email_logs"

	sentKeyPrefix   = "SENT#"
	failedKeyPrefix = "FAILED#"
)

type emailLogItem struct {
	QuoteID   string            `dynamodbav:"quote_id"`
	LogKey    string            `dynamodbav:"log_key"`
	ID        string            `dynamodbav:"id"`
	Type      string            `dynamodbav:"type"`
	Status    string            `dynamodbav:"status"`
	Recipient string            `dynamodbav:"recipient"`
	Metadata  map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
}

// EmailLogDynamoRepository persists EmailLog entries in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//   - SK: log_key (string)
//
// "SENT#<type>" is the unique slot per (quote, type). Failed attempts get their
// own "FAILED#<type>#<created_at>#<id>" key.
type EmailLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmailLogRepository = (*EmailLogDynamoRepository)(nil)

func NewEmailLogDynamoRepository(ddb *dynamodb.Client, tableName string) *EmailLogDynamoRepository {
	if tableName == "" {
		tableName = defaultEmailLogsTableName
	}
	return &EmailLogDynamoRepository{ddb: ddb, tableName: tableName}
}

// Record writes a log entry. Sent entries overwrite the (quote, type) slot;
// anything else is appended as history.
func (r *EmailLogDynamoRepository) Record(ctx context.Context, l entities.EmailLog) error {
	av, err := attributevalue.MarshalMap(toEmailLogItem(l))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *EmailLogDynamoRepository) Claim(ctx context.Context, l entities.EmailLog) error {
	l.Status = entities.EmailStatusSending
	av, err := attributevalue.MarshalMap(toEmailLogItem(l))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#log_key)"),
		ExpressionAttributeNames: map[string]string{
			"#log_key": "log_key",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrEmailAlreadyClaimed
		}
		return err
	}
	return nil
}

func (r *EmailLogDynamoRepository) MarkSent(ctx context.Context, quoteID string, emailType entities.EmailType, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              sentKey(quoteID, emailType),
		UpdateExpression: aws.String("SET #status = :sent, #created_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sent": &types.AttributeValueMemberS{Value: string(entities.EmailStatusSent)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		},
	})
	return err
}

// Release frees the slot of a claim whose delivery failed, so a later sweep can
// retry. Already sent entries are never removed.
func (r *EmailLogDynamoRepository) Release(ctx context.Context, quoteID string, emailType entities.EmailType) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 sentKey(quoteID, emailType),
		ConditionExpression: aws.String("#status = :sending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sending": &types.AttributeValueMemberS{Value: string(entities.EmailStatusSending)},
		},
	})
	if err != nil && isConditionalCheckFailed(err) {
		return nil
	}
	return err
}

// ListSentTypes returns the types that are sent or currently being sent.
func (r *EmailLogDynamoRepository) ListSentTypes(ctx context.Context, quoteID string) (map[entities.EmailType]bool, error) {
	logs, err := r.query(ctx, quoteID, sentKeyPrefix)
	if err != nil {
		return nil, err
	}
	out := make(map[entities.EmailType]bool, len(logs))
	for _, l := range logs {
		out[l.Type] = true
	}
	return out, nil
}

func (r *EmailLogDynamoRepository) ListByQuote(ctx context.Context, quoteID string) ([]entities.EmailLog, error) {
	return r.query(ctx, quoteID, "")
}

func (r *EmailLogDynamoRepository) query(ctx context.Context, quoteID, prefix string) ([]entities.EmailLog, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	}
	if prefix != "" {
		input.KeyConditionExpression = aws.String("quote_id = :qid AND begins_with(log_key, :prefix)")
		input.ExpressionAttributeValues[":prefix"] = &types.AttributeValueMemberS{Value: prefix}
	}

	p := dynamodb.NewQueryPaginator(r.ddb, input)
	var logs []entities.EmailLog
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it emailLogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			logs = append(logs, fromEmailLogItem(it))
		}
	}
	return logs, nil
}

func sentKey(quoteID string, emailType entities.EmailType) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		"log_key":  &types.AttributeValueMemberS{Value: sentKeyPrefix + string(emailType)},
	}
}

func logKey(l entities.EmailLog) string {
	switch l.Status {
	case entities.EmailStatusSent, entities.EmailStatusSending:
		return sentKeyPrefix + string(l.Type)
	default:
		return failedKeyPrefix + strings.Join([]string{string(l.Type), formatTime(l.CreatedAt), l.ID}, "#")
	}
}

func toEmailLogItem(l entities.EmailLog) emailLogItem {
	return emailLogItem{
		QuoteID:   l.QuoteID,
		LogKey:    logKey(l),
		ID:        l.ID,
		Type:      string(l.Type),
		Status:    string(l.Status),
		Recipient: l.Recipient,
		Metadata:  l.Metadata,
		CreatedAt: formatTime(l.CreatedAt),
	}
}

func fromEmailLogItem(it emailLogItem) entities.EmailLog {
	return entities.EmailLog{
		ID:        it.ID,
		QuoteID:   it.QuoteID,
		Type:      entities.EmailType(it.Type),
		Status:    entities.EmailStatus(it.Status),
		Recipient: it.Recipient,
		Metadata:  it.Metadata,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
