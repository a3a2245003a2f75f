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

type farmRepository struct {
	client *firestore.Client
}

func NewFarmRepository(client *firestore.Client) repository.FarmRepository {
	return &farmRepository{client: client}
}

func (r *farmRepository) Create(ctx context.Context, farm *domain.Farm) error {
	if farm.ID == "" {
		farm.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	farm.CreatedAt = now
	farm.UpdatedAt = now
	_, err := r.client.Collection(CollectionFarms).Doc(farm.ID).Set(ctx, farm)
	return mapError(err)
}

func (r *farmRepository) GetByID(ctx context.Context, id string) (*domain.Farm, error) {
	snap, err := r.client.Collection(CollectionFarms).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	farm := &domain.Farm{}
	if err := snap.DataTo(farm); err != nil {
		return nil, err
	}
	farm.ID = snap.Ref.ID
	return farm, nil
}

func (r *farmRepository) Update(ctx context.Context, farm *domain.Farm) error {
	farm.UpdatedAt = time.Now().UTC()
	_, err := r.client.Collection(CollectionFarms).Doc(farm.ID).Set(ctx, farm)
	return mapError(err)
}

func (r *farmRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionFarms).Doc(id).Delete(ctx)
	return mapError(err)
}

func (r *farmRepository) List(ctx context.Context) ([]domain.Farm, error) {
	it := r.client.Collection(CollectionFarms).Documents(ctx)
	defer it.Stop()
	var farms []domain.Farm
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var farm domain.Farm
		if err := snap.DataTo(&farm); err != nil {
			return nil, err
		}
		farm.ID = snap.Ref.ID
		farms = append(farms, farm)
	}
	return farms, nil
}
