package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOutboxTableName = "outbox"

type outboxItem struct {
	ID        string `dynamodbav:"id"`
	Kind      string `dynamodbav:"kind"`
	RecordID  string `dynamodbav:"record_id"`
	Payload   string `dynamodbav:"payload"`
	Attempts  int    `dynamodbav:"attempts"`
	LastError string `dynamodbav:"last_error,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OutboxDynamoRepository keeps pending mirror writes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type OutboxDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOutboxRepository = (*OutboxDynamoRepository)(nil)

func NewOutboxDynamoRepository(ddb DynamoAPI, tableName string) *OutboxDynamoRepository {
	return &OutboxDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOutboxTableName),
	}
}

func (r *OutboxDynamoRepository) Enqueue(ctx context.Context, e entities.OutboxEntry) error {
	if e.ID == "" {
		return errors.New("outbox entry id is required")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(toOutboxItem(e))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// ListPending returns up to limit entries with fewer than maxAttempts
// attempts. Order is whatever the scan yields.
func (r *OutboxDynamoRepository) ListPending(ctx context.Context, limit int, maxAttempts int) ([]entities.OutboxEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#attempts < :max"),
		ExpressionAttributeNames: map[string]string{
			"#attempts": "attempts",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":max": &types.AttributeValueMemberN{Value: strconv.Itoa(maxAttempts)},
		},
		ConsistentRead: aws.Bool(true),
	})

	out := make([]entities.OutboxEntry, 0, limit)
	for p.HasMorePages() && len(out) < limit {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []outboxItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			if len(out) == limit {
				break
			}
			out = append(out, fromOutboxItem(it))
		}
	}
	return out, nil
}

func (r *OutboxDynamoRepository) RecordAttempt(ctx context.Context, id string, lastError string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #attempts = #attempts + :one, #last_error = :err"),
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#attempts": "attempts", "#last_error": "last_error"},
			map[string]string{"#id": "id"},
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":err": &types.AttributeValueMemberS{Value: lastError},
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

func (r *OutboxDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toOutboxItem(e entities.OutboxEntry) outboxItem {
	return outboxItem{
		ID:        e.ID,
		Kind:      string(e.Kind),
		RecordID:  e.RecordID,
		Payload:   string(e.Payload),
		Attempts:  e.Attempts,
		LastError: e.LastError,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOutboxItem(it outboxItem) entities.OutboxEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.OutboxEntry{
		ID:        it.ID,
		Kind:      entities.OutboxKind(it.Kind),
		RecordID:  it.RecordID,
		Payload:   json.RawMessage(it.Payload),
		Attempts:  it.Attempts,
		LastError: it.LastError,
		CreatedAt: createdAt,
	}
}
