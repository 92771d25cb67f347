package interfaces

import (
	"context"

	"paystand_bridge/internal/domain/entities"
)

// IPayerRepository abstracts DynamoDB persistence for Payer.
//
// The service must be able to:
//   - insert a payer after Paystand created it (last write wins)
//   - look a payer up by its Paystand id
//   - set the bank of an existing payer without touching other fields
//
// GetByID and UpdateBank return a zero Payer and a nil error when the payer
// does not exist.
type IPayerRepository interface {
	Create(ctx context.Context, p entities.Payer) (entities.Payer, error)
	GetByID(ctx context.Context, id string) (entities.Payer, error)
	UpdateBank(ctx context.Context, id string, bank map[string]interface{}) (entities.Payer, error)
}
