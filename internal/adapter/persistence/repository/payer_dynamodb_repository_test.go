package repository

import (
	"context"
	"errors"
	"testing"

	"paystand_bridge/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayerDynamoRepository_CreateAndGet(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewPayerDynamoRepository(fake, "")

	p := entities.Payer{
		ID:      "pyr_1",
		Name:    "Jane",
		Email:   "jane@example.test",
		Address: map[string]interface{}{"city": "Austin"},
		Status:  "active",
	}
	_, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, fake.putIn, 1)
	assert.Equal(t, "payers", *fake.putIn[0].TableName)
	assert.Nil(t, fake.putIn[0].ConditionExpression, "payer inserts are last-write-wins")

	fake.getOut = &dynamodb.GetItemOutput{Item: fake.putIn[0].Item}
	got, err := repo.GetByID(context.Background(), "pyr_1")
	require.NoError(t, err)
	assert.Equal(t, "pyr_1", got.ID)
	assert.Equal(t, "Austin", got.Address["city"])
	assert.Equal(t, "active", got.Status)
}

func TestPayerDynamoRepository_UpdateBank(t *testing.T) {
	t.Run("updates existing payer", func(t *testing.T) {
		attrs, err := attributevalue.MarshalMap(payerItem{
			ID:   "pyr_1",
			Name: "Jane",
			Bank: map[string]interface{}{"id": "ba_9"},
		})
		require.NoError(t, err)
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: attrs}}
		repo := NewPayerDynamoRepository(fake, "")

		got, err := repo.UpdateBank(context.Background(), "pyr_1", map[string]interface{}{"id": "ba_9"})
		require.NoError(t, err)
		assert.Equal(t, "pyr_1", got.ID)
		assert.Equal(t, "ba_9", got.Bank["id"])

		in := fake.updateIn[0]
		assert.Equal(t, "attribute_exists(#id)", *in.ConditionExpression)
		assert.Equal(t, "SET #bank = :bank, #updated_at = :updated_at", *in.UpdateExpression)
		assert.Equal(t, "bank", in.ExpressionAttributeNames["#bank"])
		assert.Equal(t, "id", in.ExpressionAttributeNames["#id"])
		assert.Equal(t, types.ReturnValueAllNew, in.ReturnValues)
	})

	t.Run("missing payer returns zero value", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewPayerDynamoRepository(fake, "")

		got, err := repo.UpdateBank(context.Background(), "pyr_x", map[string]interface{}{"id": "ba_1"})
		require.NoError(t, err)
		assert.Equal(t, entities.Payer{}, got)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: errors.New("unavailable")}
		repo := NewPayerDynamoRepository(fake, "")

		_, err := repo.UpdateBank(context.Background(), "pyr_1", nil)
		require.EqualError(t, err, "unavailable")
	})
}
