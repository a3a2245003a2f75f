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

type workerRepository struct {
	client *firestore.Client
}

func NewWorkerRepository(client *firestore.Client) repository.WorkerRepository {
	return &workerRepository{client: client}
}

func (r *workerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	if worker.ID == "" {
		worker.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	worker.CreatedAt = now
	worker.UpdatedAt = now
	_, err := r.client.Collection(CollectionWorkers).Doc(worker.ID).Set(ctx, worker)
	return mapError(err)
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	snap, err := r.client.Collection(CollectionWorkers).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	worker := &domain.Worker{}
	if err := snap.DataTo(worker); err != nil {
		return nil, err
	}
	worker.ID = snap.Ref.ID
	return worker, nil
}

func (r *workerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	worker.UpdatedAt = time.Now().UTC()
	_, err := r.client.Collection(CollectionWorkers).Doc(worker.ID).Set(ctx, worker)
	return mapError(err)
}

func (r *workerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionWorkers).Doc(id).Delete(ctx)
	return mapError(err)
}

func (r *workerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	return r.collect(r.client.Collection(CollectionWorkers).Documents(ctx))
}

func (r *workerRepository) ListByOperation(ctx context.Context, operationID string) ([]domain.Worker, error) {
	query := r.client.Collection(CollectionWorkers).Where("operationId", "==", operationID)
	return r.collect(query.Documents(ctx))
}

func (r *workerRepository) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.client.Collection(CollectionWorkers).Doc(id).Update(ctx, []firestore.Update{
		{Path: "active", Value: active},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	return mapError(err)
}

func (r *workerRepository) collect(it *firestore.DocumentIterator) ([]domain.Worker, error) {
	defer it.Stop()
	var workers []domain.Worker
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var worker domain.Worker
		if err := snap.DataTo(&worker); err != nil {
			return nil, err
		}
		worker.ID = snap.Ref.ID
		workers = append(workers, worker)
	}
	return workers, nil
}
