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

type workerTypeRepository struct {
	client *firestore.Client
}

func NewWorkerTypeRepository(client *firestore.Client) repository.WorkerTypeRepository {
	return &workerTypeRepository{client: client}
}

func (r *workerTypeRepository) Create(ctx context.Context, wt *domain.WorkerType) error {
	if wt.ID == "" {
		wt.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	wt.CreatedAt = now
	wt.UpdatedAt = now
	_, err := r.client.Collection(CollectionWorkerTypes).Doc(wt.ID).Set(ctx, wt)
	return mapError(err)
}

func (r *workerTypeRepository) GetByID(ctx context.Context, id string) (*domain.WorkerType, error) {
	snap, err := r.client.Collection(CollectionWorkerTypes).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	wt := &domain.WorkerType{}
	if err := snap.DataTo(wt); err != nil {
		return nil, err
	}
	wt.ID = snap.Ref.ID
	return wt, nil
}

func (r *workerTypeRepository) Update(ctx context.Context, wt *domain.WorkerType) error {
	wt.UpdatedAt = time.Now().UTC()
	_, err := r.client.Collection(CollectionWorkerTypes).Doc(wt.ID).Set(ctx, wt)
	return mapError(err)
}

func (r *workerTypeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionWorkerTypes).Doc(id).Delete(ctx)
	return mapError(err)
}

func (r *workerTypeRepository) List(ctx context.Context) ([]domain.WorkerType, error) {
	it := r.client.Collection(CollectionWorkerTypes).Documents(ctx)
	defer it.Stop()
	var types []domain.WorkerType
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var wt domain.WorkerType
		if err := snap.DataTo(&wt); err != nil {
			return nil, err
		}
		wt.ID = snap.Ref.ID
		types = append(types, wt)
	}
	return types, nil
}
