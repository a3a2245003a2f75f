package jobs

import (
	"context"
	"time"

	"farmforce-backend/internal/logger"
	"farmforce-backend/internal/trigger"
)

// ReprocessStalledTransactions re-dispatches transactions whose creation
// event was never fully handled: unprocessed documents older than the
// configured threshold. The handler's processed marker makes re-dispatch
// safe; a transaction picked up here and by a concurrent watcher invocation
// is still applied once.
func (jr *JobRunner) ReprocessStalledTransactions() {
	jr.runWithRecovery("ReprocessStalledTransactions", func() {
		ctx := context.Background()
		cutoff := jr.config.StalledCutoff(time.Now().UTC())

		txs, err := jr.txRepo.ListUnprocessedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stalled transactions", "error", err)
			return
		}
		if len(txs) == 0 {
			return
		}
		logger.Info("Reprocessing stalled transactions", "count", len(txs), "cutoff", cutoff)

		for i := range txs {
			tx := txs[i]
			evt := &trigger.CreateEvent{ID: tx.ID, Data: &tx}
			if err := jr.handler.HandleCreated(ctx, evt); err != nil {
				logger.Error("Failed to reprocess transaction", "transaction_id", tx.ID, "error", err)
			}
		}
	})
}
