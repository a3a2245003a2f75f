package trigger

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/logger"
	"farmforce-backend/internal/repository"
)

// CreateEvent is one transaction-creation event delivered by the watcher.
// Data is nil when the document snapshot could not be decoded.
type CreateEvent struct {
	ID   string
	Data *domain.Transaction
}

// Handler processes transaction-creation events.
type Handler interface {
	HandleCreated(ctx context.Context, evt *CreateEvent) error
}

// BalanceAdjuster applies a created transaction's amount to the balances of
// the workers it references. For credit transaction types the amount is
// forced negative and written back onto the transaction before the balance
// delta is applied.
type BalanceAdjuster struct {
	typeRepo  repository.TransactionTypeRepository
	txRepo    repository.TransactionRepository
	groupRepo repository.PaymentGroupRepository
}

func NewBalanceAdjuster(
	typeRepo repository.TransactionTypeRepository,
	txRepo repository.TransactionRepository,
	groupRepo repository.PaymentGroupRepository,
) *BalanceAdjuster {
	return &BalanceAdjuster{
		typeRepo:  typeRepo,
		txRepo:    txRepo,
		groupRepo: groupRepo,
	}
}

// HandleCreated runs once per created transaction document. Invalid input is
// a terminal, logged outcome: the event is consumed and no balance changes.
// Only storage failures are returned, so the dispatcher can surface them and
// the sweep job can retry the transaction later.
func (b *BalanceAdjuster) HandleCreated(ctx context.Context, evt *CreateEvent) error {
	if evt == nil {
		logger.Error("No snapshot available for transaction creation event")
		return nil
	}
	log := logger.WithTransaction(evt.ID)

	tx := evt.Data
	if tx == nil {
		log.Error("Transaction data undefined")
		return nil
	}
	if tx.Processed {
		log.Debug("Transaction already processed, skipping")
		return nil
	}

	delta := tx.Amount

	txType, err := b.typeRepo.GetByID(ctx, tx.TransactionTypeID)
	if errors.Is(err, domain.ErrNotFound) {
		log.Error("TransactionType not found", "transaction_type_id", tx.TransactionTypeID)
		return nil
	}
	if err != nil {
		log.Error("Failed to load transaction type", "transaction_type_id", tx.TransactionTypeID, "error", err)
		return err
	}

	fn := tx.Function
	if fn == "" {
		// Records created before the function field existed carry only
		// workerId and amount.
		fn = domain.TransactionFunctionSingle
	}

	switch fn {
	case domain.TransactionFunctionSingle:
		if txType.IsCredit {
			delta = -math.Abs(delta)
			if err := b.txRepo.SetAmount(ctx, evt.ID, delta); err != nil {
				return err
			}
			log.Info("Flipped credit amount", "mode", "single", "amount", delta)
		}
		if tx.WorkerID == "" {
			log.Error("Missing workerId on transaction", "mode", "single")
			return nil
		}
		return b.apply(ctx, log, evt.ID, []string{tx.WorkerID}, delta)

	case domain.TransactionFunctionBulk:
		if len(tx.MultiWorkerID) == 0 {
			log.Error("multiWorkerId missing or empty on transaction", "mode", "bulk")
			return nil
		}
		if txType.IsCredit {
			delta = -math.Abs(delta)
			if err := b.txRepo.SetAmount(ctx, evt.ID, delta); err != nil {
				return err
			}
			log.Info("Flipped credit amount", "mode", "bulk", "amount", delta)
		}
		return b.apply(ctx, log, evt.ID, tx.MultiWorkerID, delta)

	case domain.TransactionFunctionPaymentGroup:
		if len(tx.PaymentGroupIDs) == 0 {
			log.Error("paymentGroupIds missing or empty on transaction", "mode", "payment-group")
			return nil
		}
		if txType.IsCredit {
			delta = -math.Abs(delta)
			if err := b.txRepo.SetAmount(ctx, evt.ID, delta); err != nil {
				return err
			}
			log.Info("Flipped credit amount", "mode", "payment-group", "amount", delta)
		}
		workerIDs, err := b.resolveGroupMembers(ctx, log, tx.PaymentGroupIDs)
		if err != nil {
			return err
		}
		if len(workerIDs) == 0 {
			log.Error("Payment groups resolved to no workers", "mode", "payment-group")
			return nil
		}
		return b.apply(ctx, log, evt.ID, workerIDs, delta)

	default:
		log.Warn("Unknown transaction function", "function", string(fn))
		return nil
	}
}

// apply hands the delta to the storage layer, which increments each worker's
// currentBalance atomically and sets the processed marker in the same
// storage transaction. A redelivered event hits the marker and is a no-op.
func (b *BalanceAdjuster) apply(ctx context.Context, log *slog.Logger, txID string, workerIDs []string, delta float64) error {
	err := b.txRepo.ApplyDelta(ctx, txID, workerIDs, delta)
	if errors.Is(err, domain.ErrAlreadyProcessed) {
		log.Debug("Balance delta already applied, skipping")
		return nil
	}
	if err != nil {
		return err
	}
	for _, workerID := range workerIDs {
		log.Info("Applied transaction delta", "delta", delta, "worker_id", workerID)
	}
	return nil
}

// resolveGroupMembers returns the union of worker ids across the named
// payment groups, preserving first-seen order. Unknown groups are logged and
// skipped rather than failing the whole transaction.
func (b *BalanceAdjuster) resolveGroupMembers(ctx context.Context, log *slog.Logger, groupIDs []string) ([]string, error) {
	seen := make(map[string]bool)
	var workerIDs []string
	for _, groupID := range groupIDs {
		group, err := b.groupRepo.GetByID(ctx, groupID)
		if errors.Is(err, domain.ErrNotFound) {
			log.Error("Payment group not found", "payment_group_id", groupID)
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, workerID := range group.WorkerIDs {
			if !seen[workerID] {
				seen[workerID] = true
				workerIDs = append(workerIDs, workerID)
			}
		}
	}
	return workerIDs, nil
}
