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

type paymentGroupRepository struct {
	client *firestore.Client
}

func NewPaymentGroupRepository(client *firestore.Client) repository.PaymentGroupRepository {
	return &paymentGroupRepository{client: client}
}

func (r *paymentGroupRepository) Create(ctx context.Context, pg *domain.PaymentGroup) error {
	if pg.ID == "" {
		pg.ID = uuid.NewString()
	}
	pg.CreatedAt = time.Now().UTC()
	_, err := r.client.Collection(CollectionPaymentGroups).Doc(pg.ID).Set(ctx, pg)
	return mapError(err)
}

func (r *paymentGroupRepository) GetByID(ctx context.Context, id string) (*domain.PaymentGroup, error) {
	snap, err := r.client.Collection(CollectionPaymentGroups).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	pg := &domain.PaymentGroup{}
	if err := snap.DataTo(pg); err != nil {
		return nil, err
	}
	pg.ID = snap.Ref.ID
	return pg, nil
}

func (r *paymentGroupRepository) Update(ctx context.Context, pg *domain.PaymentGroup) error {
	_, err := r.client.Collection(CollectionPaymentGroups).Doc(pg.ID).Set(ctx, pg)
	return mapError(err)
}

func (r *paymentGroupRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionPaymentGroups).Doc(id).Delete(ctx)
	return mapError(err)
}

func (r *paymentGroupRepository) List(ctx context.Context) ([]domain.PaymentGroup, error) {
	it := r.client.Collection(CollectionPaymentGroups).Documents(ctx)
	defer it.Stop()
	var groups []domain.PaymentGroup
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var pg domain.PaymentGroup
		if err := snap.DataTo(&pg); err != nil {
			return nil, err
		}
		pg.ID = snap.Ref.ID
		groups = append(groups, pg)
	}
	return groups, nil
}
