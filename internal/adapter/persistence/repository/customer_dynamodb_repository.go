package repository

import (
	"context"
	"time"

	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID          string                 `dynamodbav:"id"`
	Name        string                 `dynamodbav:"name"`
	Email       string                 `dynamodbav:"email"`
	DefaultBank map[string]interface{} `dynamodbav:"default_bank,omitempty"`
	BankID      string                 `dynamodbav:"bank_id"`
	CreatedAt   string                 `dynamodbav:"created_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CustomerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCustomersTableName),
	}
}

// Create writes the customer. Replays of the same upstream customer overwrite
// the previous item with identical content.
func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		DefaultBank: c.DefaultBank,
		BankID:      c.BankID,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Customer{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		DefaultBank: it.DefaultBank,
		BankID:      it.BankID,
		CreatedAt:   createdAt,
	}
}
