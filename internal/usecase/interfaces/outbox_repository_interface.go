package interfaces

import (
	"context"

	"paystand_bridge/internal/domain/entities"
)

// IOutboxRepository stores local writes that still have to be applied.
type IOutboxRepository interface {
	Enqueue(ctx context.Context, e entities.OutboxEntry) error
	ListPending(ctx context.Context, limit int, maxAttempts int) ([]entities.OutboxEntry, error)
	RecordAttempt(ctx context.Context, id string, lastError string) error
	Delete(ctx context.Context, id string) error
}
