package domain

import "time"

// TransactionFunction selects how a transaction's amount is fanned out to
// worker balances.
type TransactionFunction string

const (
	TransactionFunctionSingle       TransactionFunction = "single"
	TransactionFunctionBulk         TransactionFunction = "bulk"
	TransactionFunctionPaymentGroup TransactionFunction = "payment-group"
)

type Transaction struct {
	ID                string              `firestore:"-" json:"id"`
	Timestamp         time.Time           `firestore:"timestamp" json:"timestamp"`
	Amount            float64             `firestore:"amount" json:"amount"`
	Description       string              `firestore:"description" json:"description"`
	FarmID            string              `firestore:"farmId" json:"farm_id"`
	CreatorID         string              `firestore:"creatorId" json:"creator_id"`
	TransactionTypeID string              `firestore:"transactionTypeId" json:"transaction_type_id"`
	Function          TransactionFunction `firestore:"function" json:"function"`
	WorkerID          string              `firestore:"workerId,omitempty" json:"worker_id,omitempty"`
	MultiWorkerID     []string            `firestore:"multiWorkerId,omitempty" json:"multi_worker_id,omitempty"`
	OperationIDs      []string            `firestore:"operationIds,omitempty" json:"operation_ids,omitempty"`
	WorkerTypeIDs     []string            `firestore:"workerTypesIds,omitempty" json:"worker_type_ids,omitempty"`
	PaymentGroupIDs   []string            `firestore:"paymentGroupIds,omitempty" json:"payment_group_ids,omitempty"`
	// Processed is set once the balance delta has been applied, so a
	// redelivered creation event does not double-count.
	Processed bool `firestore:"processed" json:"processed"`
}

type TransactionType struct {
	ID          string    `firestore:"-" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	IsCredit    bool      `firestore:"isCredit" json:"is_credit"`
	CreatedAt   time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updated_at"`
}
