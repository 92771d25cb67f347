package entities

import (
	"encoding/json"
	"time"
)

// OutboxKind names the local write an outbox entry replays.
type OutboxKind string

const (
	OutboxKindCustomerInsert  OutboxKind = "customer.insert"
	OutboxKindPayerInsert     OutboxKind = "payer.insert"
	OutboxKindPayerEnsure     OutboxKind = "payer.ensure"
	OutboxKindPayerBankUpdate OutboxKind = "payer.bank.update"
)

// OutboxEntry is a local write that failed after Paystand already accepted
// the corresponding call. Payload holds the record (or the bank object for
// OutboxKindPayerBankUpdate) and RecordID the upstream-assigned key.
type OutboxEntry struct {
	ID        string          `json:"id"`
	Kind      OutboxKind      `json:"kind"`
	RecordID  string          `json:"record_id"`
	Payload   json.RawMessage `json:"payload"`
	Attempts  int             `json:"attempts"`
	LastError string          `json:"last_error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
