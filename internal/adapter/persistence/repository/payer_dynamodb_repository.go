package repository

import (
	"context"
	"errors"
	"time"

	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPayersTableName = "payers"

type payerItem struct {
	ID        string                 `dynamodbav:"id"`
	Name      string                 `dynamodbav:"name"`
	Email     string                 `dynamodbav:"email"`
	Address   map[string]interface{} `dynamodbav:"address,omitempty"`
	Status    string                 `dynamodbav:"status"`
	Bank      map[string]interface{} `dynamodbav:"bank,omitempty"`
	CreatedAt string                 `dynamodbav:"created_at"`
	UpdatedAt string                 `dynamodbav:"updated_at"`
}

// PayerDynamoRepository persists Payer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Inserts are unconditional: two requests mirroring the same payer both
// write, and the last one wins.
type PayerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPayerRepository = (*PayerDynamoRepository)(nil)

func NewPayerDynamoRepository(ddb DynamoAPI, tableName string) *PayerDynamoRepository {
	return &PayerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPayersTableName),
	}
}

func (r *PayerDynamoRepository) Create(ctx context.Context, p entities.Payer) (entities.Payer, error) {
	av, err := attributevalue.MarshalMap(toPayerItem(p))
	if err != nil {
		return entities.Payer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Payer{}, err
	}
	return p, nil
}

func (r *PayerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payer{}, nil
	}

	var it payerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payer{}, err
	}
	return fromPayerItem(it), nil
}

// UpdateBank sets the bank of an existing payer and leaves every other
// attribute untouched.
func (r *PayerDynamoRepository) UpdateBank(ctx context.Context, id string, bank map[string]interface{}) (entities.Payer, error) {
	bankAV, err := attributevalue.Marshal(bank)
	if err != nil {
		return entities.Payer{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #bank = :bank, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bank":       bankAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#bank": "bank", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payer{}, nil
		}
		return entities.Payer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payer{}, nil
	}
	var it payerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payer{}, err
	}
	return fromPayerItem(it), nil
}

func toPayerItem(p entities.Payer) payerItem {
	return payerItem{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Address:   p.Address,
		Status:    p.Status,
		Bank:      p.Bank,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPayerItem(it payerItem) entities.Payer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payer{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Address:   it.Address,
		Status:    it.Status,
		Bank:      it.Bank,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
