package usecase

import (
	"context"
	"errors"
	"log"

	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase/interfaces"
)

const (
	defaultOutboxBatchSize   = 25
	defaultOutboxMaxAttempts = 10
)

// OutboxReconciler replays local writes that failed after Paystand accepted
// the call, so the mirror converges on the upstream state.
type OutboxReconciler struct {
	outbox      interfaces.IOutboxRepository
	writer      *LocalWriter
	batchSize   int
	maxAttempts int
}

func NewOutboxReconciler(outbox interfaces.IOutboxRepository, writer *LocalWriter, batchSize, maxAttempts int) *OutboxReconciler {
	if batchSize <= 0 {
		batchSize = defaultOutboxBatchSize
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultOutboxMaxAttempts
	}
	return &OutboxReconciler{outbox: outbox, writer: writer, batchSize: batchSize, maxAttempts: maxAttempts}
}

// Drain applies one batch of pending entries and returns how many were
// applied. Entries that fail again stay in the outbox with their attempt
// count bumped; they are skipped once they reach maxAttempts.
func (r *OutboxReconciler) Drain(ctx context.Context) (int, error) {
	if r.outbox == nil || r.writer == nil {
		return 0, errors.New("outbox reconciler not configured")
	}

	pending, err := r.outbox.ListPending(ctx, r.batchSize, r.maxAttempts)
	if err != nil {
		log.Printf("[outbox][reconciler] list pending failed err=%v", err)
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	log.Printf("[outbox][reconciler] drain start pending=%d", len(pending))

	applied := 0
	for _, e := range pending {
		if err := r.replay(ctx, e); err != nil {
			log.Printf("[outbox][reconciler] replay failed entry_id=%s kind=%s record_id=%s attempts=%d err=%v", e.ID, e.Kind, e.RecordID, e.Attempts+1, err)
			if recErr := r.outbox.RecordAttempt(ctx, e.ID, err.Error()); recErr != nil {
				log.Printf("[outbox][reconciler] record attempt failed entry_id=%s err=%v", e.ID, recErr)
			}
			continue
		}
		applied++
	}
	log.Printf("[outbox][reconciler] drain done applied=%d failed=%d", applied, len(pending)-applied)
	return applied, nil
}

func (r *OutboxReconciler) replay(ctx context.Context, e entities.OutboxEntry) error {
	if err := r.writer.Apply(ctx, e); err != nil {
		return err
	}
	return r.outbox.Delete(ctx, e.ID)
}

// Run drains with a background context; it matches the func() shape cron jobs take.
func (r *OutboxReconciler) Run() {
	if _, err := r.Drain(context.Background()); err != nil {
		log.Printf("[outbox][reconciler] run failed err=%v", err)
	}
}
