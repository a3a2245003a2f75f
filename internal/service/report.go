package service

import (
	"context"
	"errors"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

// reportService manages report configurations. Running a report (turning a
// configuration into rendered output) happens client side.
type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) CreateReport(ctx context.Context, report *domain.Report) error {
	if report.Name == "" {
		return errors.New("report name is required")
	}
	return s.reportRepo.Create(ctx, report)
}

func (s *reportService) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	return s.reportRepo.GetByID(ctx, id)
}

func (s *reportService) UpdateReport(ctx context.Context, report *domain.Report) error {
	return s.reportRepo.Update(ctx, report)
}

func (s *reportService) DeleteReport(ctx context.Context, id string) error {
	return s.reportRepo.Delete(ctx, id)
}

func (s *reportService) ListReports(ctx context.Context) ([]domain.Report, error) {
	return s.reportRepo.List(ctx)
}
