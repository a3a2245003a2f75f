package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

// Collection names mirror the Firestore layout the web client writes to.
const (
	CollectionWorkers          = "workers"
	CollectionTransactions     = "transactions"
	CollectionTransactionTypes = "transactionTypes"
	CollectionOperations       = "operations"
	CollectionWorkerTypes      = "workerTypes"
	CollectionPaymentGroups    = "paymentGroups"
	CollectionFarms            = "farms"
	CollectionReports          = "reports"
)

// NewClient initializes the Firebase app and returns its Firestore client.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	conf := &firebase.Config{ProjectID: projectID}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}

type Store struct {
	client *firestore.Client
	repository.WorkerRepository
	repository.TransactionRepository
	repository.TransactionTypeRepository
	repository.OperationRepository
	repository.WorkerTypeRepository
	repository.PaymentGroupRepository
	repository.FarmRepository
	repository.ReportRepository
}

func NewStore(client *firestore.Client) *Store {
	return &Store{
		client:                    client,
		WorkerRepository:          NewWorkerRepository(client),
		TransactionRepository:     NewTransactionRepository(client),
		TransactionTypeRepository: NewTransactionTypeRepository(client),
		OperationRepository:       NewOperationRepository(client),
		WorkerTypeRepository:      NewWorkerTypeRepository(client),
		PaymentGroupRepository:    NewPaymentGroupRepository(client),
		FarmRepository:            NewFarmRepository(client),
		ReportRepository:          NewReportRepository(client),
	}
}

func (s *Store) Close() error {
	return s.client.Close()
}

// mapError converts Firestore status errors into domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return err
}
