package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

type transactionRepository struct {
	client *firestore.Client
}

func NewTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &transactionRepository{client: client}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC()
	}
	tx.Processed = false
	_, err := r.client.Collection(CollectionTransactions).Doc(tx.ID).Set(ctx, tx)
	return mapError(err)
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	snap, err := r.client.Collection(CollectionTransactions).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	tx := &domain.Transaction{}
	if err := snap.DataTo(tx); err != nil {
		return nil, err
	}
	tx.ID = snap.Ref.ID
	return tx, nil
}

func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.client.Collection(CollectionTransactions).Doc(tx.ID).Set(ctx, tx)
	return mapError(err)
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionTransactions).Doc(id).Delete(ctx)
	return mapError(err)
}

func (r *transactionRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.Transaction, error) {
	query := r.client.Collection(CollectionTransactions).
		Where("workerId", "==", workerID).
		OrderBy("timestamp", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *transactionRepository) ListUnprocessedBefore(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	query := r.client.Collection(CollectionTransactions).
		Where("processed", "==", false).
		Where("timestamp", "<", cutoff)
	return r.collect(query.Documents(ctx))
}

// SetAmount rewrites only the amount field, leaving the rest of the
// transaction document untouched.
func (r *transactionRepository) SetAmount(ctx context.Context, id string, amount float64) error {
	_, err := r.client.Collection(CollectionTransactions).Doc(id).Update(ctx, []firestore.Update{
		{Path: "amount", Value: amount},
	})
	return mapError(err)
}

// ApplyDelta increments the currentBalance of every listed worker by delta
// and marks the transaction processed, all inside one Firestore transaction.
// Each balance mutation uses firestore.Increment rather than a
// read-modify-write of the balance, so concurrent transactions for the same
// worker cannot lose updates.
func (r *transactionRepository) ApplyDelta(ctx context.Context, txID string, workerIDs []string, delta float64) error {
	txRef := r.client.Collection(CollectionTransactions).Doc(txID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, t *firestore.Transaction) error {
		snap, err := t.Get(txRef)
		if err != nil {
			return mapError(err)
		}
		if processed, err := snap.DataAt("processed"); err == nil {
			if flag, ok := processed.(bool); ok && flag {
				return domain.ErrAlreadyProcessed
			}
		}
		for _, workerID := range workerIDs {
			workerRef := r.client.Collection(CollectionWorkers).Doc(workerID)
			err := t.Update(workerRef, []firestore.Update{
				{Path: "currentBalance", Value: firestore.Increment(delta)},
			})
			if err != nil {
				return mapError(err)
			}
		}
		return t.Update(txRef, []firestore.Update{
			{Path: "processed", Value: true},
		})
	})
	return err
}

func (r *transactionRepository) collect(it *firestore.DocumentIterator) ([]domain.Transaction, error) {
	defer it.Stop()
	var txs []domain.Transaction
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var tx domain.Transaction
		if err := snap.DataTo(&tx); err != nil {
			return nil, err
		}
		tx.ID = snap.Ref.ID
		txs = append(txs, tx)
	}
	return txs, nil
}
