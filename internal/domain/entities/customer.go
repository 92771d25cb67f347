package entities

import "time"

// Customer is the local mirror of a Paystand customer.
//
// Storage model (DynamoDB):
//   - PK: id (the Paystand customer id, or bank_id when Paystand omits it)
//
// Records are written once, when customer creation succeeds upstream.
type Customer struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	DefaultBank map[string]interface{} `json:"defaultBank,omitempty"`
	BankID      string                 `json:"bank_id"`
	CreatedAt   time.Time              `json:"created_at"`
}
