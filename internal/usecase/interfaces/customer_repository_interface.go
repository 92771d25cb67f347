package interfaces

import (
	"context"

	"paystand_bridge/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// GetByID returns a zero Customer and a nil error when nothing matches.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
