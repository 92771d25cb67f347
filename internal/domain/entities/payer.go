package entities

import "time"

// Payer is the local mirror of a Paystand payer.
//
// Storage model (DynamoDB):
//   - PK: id (Paystand payer id)
//
// Bank is only set by the bank attachment flow. Writes are last-write-wins.
type Payer struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Address   map[string]interface{} `json:"address,omitempty"`
	Status    string                 `json:"status"`
	Bank      map[string]interface{} `json:"bank,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
