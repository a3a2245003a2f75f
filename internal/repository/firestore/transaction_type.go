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

type transactionTypeRepository struct {
	client *firestore.Client
}

func NewTransactionTypeRepository(client *firestore.Client) repository.TransactionTypeRepository {
	return &transactionTypeRepository{client: client}
}

func (r *transactionTypeRepository) Create(ctx context.Context, tt *domain.TransactionType) error {
	if tt.ID == "" {
		tt.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	tt.CreatedAt = now
	tt.UpdatedAt = now
	_, err := r.client.Collection(CollectionTransactionTypes).Doc(tt.ID).Set(ctx, tt)
	return mapError(err)
}

func (r *transactionTypeRepository) GetByID(ctx context.Context, id string) (*domain.TransactionType, error) {
	snap, err := r.client.Collection(CollectionTransactionTypes).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	tt := &domain.TransactionType{}
	if err := snap.DataTo(tt); err != nil {
		return nil, err
	}
	tt.ID = snap.Ref.ID
	return tt, nil
}

func (r *transactionTypeRepository) Update(ctx context.Context, tt *domain.TransactionType) error {
	tt.UpdatedAt = time.Now().UTC()
	_, err := r.client.Collection(CollectionTransactionTypes).Doc(tt.ID).Set(ctx, tt)
	return mapError(err)
}

func (r *transactionTypeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionTransactionTypes).Doc(id).Delete(ctx)
	return mapError(err)
}

func (r *transactionTypeRepository) List(ctx context.Context) ([]domain.TransactionType, error) {
	it := r.client.Collection(CollectionTransactionTypes).Documents(ctx)
	defer it.Stop()
	var types []domain.TransactionType
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var tt domain.TransactionType
		if err := snap.DataTo(&tt); err != nil {
			return nil, err
		}
		tt.ID = snap.Ref.ID
		types = append(types, tt)
	}
	return types, nil
}
