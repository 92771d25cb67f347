package response

import (
	"time"

	"paystand_bridge/internal/domain/entities"
)

type CustomerResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	DefaultBank map[string]interface{} `json:"defaultBank,omitempty"`
	BankID      string                 `json:"bank_id"`
	CreatedAt   time.Time              `json:"created_at"`
}

type PayerResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Address   map[string]interface{} `json:"address,omitempty"`
	Status    string                 `json:"status"`
	Bank      map[string]interface{} `json:"bank,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Envelope wraps a payload under its endpoint key, e.g. {"customerData": {...}}.
func Envelope(key string, payload interface{}) map[string]interface{} {
	return map[string]interface{}{key: payload}
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		DefaultBank: c.DefaultBank,
		BankID:      c.BankID,
		CreatedAt:   c.CreatedAt,
	}
}

func FromPayer(p entities.Payer) PayerResponse {
	return PayerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Address:   p.Address,
		Status:    p.Status,
		Bank:      p.Bank,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
