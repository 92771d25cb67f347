package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase/interfaces"
)

var (
	ErrPayerNotFound      = errors.New("payer not found")
	ErrUnknownOutboxKind  = errors.New("unknown outbox kind")
	ErrInvalidOutboxEntry = errors.New("invalid outbox entry")
)

// LocalWriter applies mirror writes described as outbox entries. The live
// request path and the outbox reconciler share it, so a parked write replays
// exactly as it would have run. Every kind is safe to apply more than once.
type LocalWriter struct {
	customers interfaces.ICustomerRepository
	payers    interfaces.IPayerRepository
}

func NewLocalWriter(customers interfaces.ICustomerRepository, payers interfaces.IPayerRepository) *LocalWriter {
	return &LocalWriter{customers: customers, payers: payers}
}

func (w *LocalWriter) Apply(ctx context.Context, e entities.OutboxEntry) error {
	switch e.Kind {
	case entities.OutboxKindCustomerInsert:
		var c entities.Customer
		if err := json.Unmarshal(e.Payload, &c); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOutboxEntry, err)
		}
		_, err := w.customers.Create(ctx, c)
		return err

	case entities.OutboxKindPayerInsert:
		var p entities.Payer
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOutboxEntry, err)
		}
		_, err := w.payers.Create(ctx, p)
		return err

	case entities.OutboxKindPayerEnsure:
		var p entities.Payer
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOutboxEntry, err)
		}
		existing, err := w.payers.GetByID(ctx, p.ID)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			return nil
		}
		_, err = w.payers.Create(ctx, p)
		return err

	case entities.OutboxKindPayerBankUpdate:
		var bank map[string]interface{}
		if err := json.Unmarshal(e.Payload, &bank); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOutboxEntry, err)
		}
		updated, err := w.payers.UpdateBank(ctx, e.RecordID, bank)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return ErrPayerNotFound
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutboxKind, e.Kind)
	}
}

func newOutboxEntry(kind entities.OutboxKind, recordID string, record interface{}) (entities.OutboxEntry, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return entities.OutboxEntry{}, err
	}
	return entities.OutboxEntry{
		Kind:      kind,
		RecordID:  recordID,
		Payload:   b,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}

func objectValue(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}
