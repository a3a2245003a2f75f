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

type reportRepository struct {
	client *firestore.Client
}

func NewReportRepository(client *firestore.Client) repository.ReportRepository {
	return &reportRepository{client: client}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now
	_, err := r.client.Collection(CollectionReports).Doc(report.ID).Set(ctx, report)
	return mapError(err)
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	snap, err := r.client.Collection(CollectionReports).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	report := &domain.Report{}
	if err := snap.DataTo(report); err != nil {
		return nil, err
	}
	report.ID = snap.Ref.ID
	return report, nil
}

func (r *reportRepository) Update(ctx context.Context, report *domain.Report) error {
	report.UpdatedAt = time.Now().UTC()
	_, err := r.client.Collection(CollectionReports).Doc(report.ID).Set(ctx, report)
	return mapError(err)
}

func (r *reportRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionReports).Doc(id).Delete(ctx)
	return mapError(err)
}

func (r *reportRepository) List(ctx context.Context) ([]domain.Report, error) {
	it := r.client.Collection(CollectionReports).Documents(ctx)
	defer it.Stop()
	var reports []domain.Report
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var report domain.Report
		if err := snap.DataTo(&report); err != nil {
			return nil, err
		}
		report.ID = snap.Ref.ID
		reports = append(reports, report)
	}
	return reports, nil
}
