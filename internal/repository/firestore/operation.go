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

type operationRepository struct {
	client *firestore.Client
}

func NewOperationRepository(client *firestore.Client) repository.OperationRepository {
	return &operationRepository{client: client}
}

func (r *operationRepository) Create(ctx context.Context, op *domain.Operation) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	op.CreatedAt = now
	op.UpdatedAt = now
	_, err := r.client.Collection(CollectionOperations).Doc(op.ID).Set(ctx, op)
	return mapError(err)
}

func (r *operationRepository) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	snap, err := r.client.Collection(CollectionOperations).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	op := &domain.Operation{}
	if err := snap.DataTo(op); err != nil {
		return nil, err
	}
	op.ID = snap.Ref.ID
	return op, nil
}

func (r *operationRepository) Update(ctx context.Context, op *domain.Operation) error {
	op.UpdatedAt = time.Now().UTC()
	_, err := r.client.Collection(CollectionOperations).Doc(op.ID).Set(ctx, op)
	return mapError(err)
}

func (r *operationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionOperations).Doc(id).Delete(ctx)
	return mapError(err)
}

func (r *operationRepository) List(ctx context.Context) ([]domain.Operation, error) {
	it := r.client.Collection(CollectionOperations).Documents(ctx)
	defer it.Stop()
	var ops []domain.Operation
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var op domain.Operation
		if err := snap.DataTo(&op); err != nil {
			return nil, err
		}
		op.ID = snap.Ref.ID
		ops = append(ops, op)
	}
	return ops, nil
}
