package domain

import "time"

type Worker struct {
	ID              string    `firestore:"-" json:"id"`
	FirstName       string    `firestore:"firstName" json:"first_name"`
	LastName        string    `firestore:"lastName" json:"last_name"`
	FarmID          string    `firestore:"farmId" json:"farm_id"`
	OperationID     string    `firestore:"operationId" json:"operation_id"`
	WorkerTypeID    string    `firestore:"workerTypeId,omitempty" json:"worker_type_id,omitempty"`
	PaymentGroupIDs []string  `firestore:"paymentGroupIds,omitempty" json:"payment_group_ids,omitempty"`
	CurrentBalance  float64   `firestore:"currentBalance" json:"current_balance"`
	Active          bool      `firestore:"active" json:"active"`
	ProfileImageURL string    `firestore:"profileImageUrl,omitempty" json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt       time.Time `firestore:"updatedAt" json:"updated_at"`
}

type WorkerType struct {
	ID          string    `firestore:"-" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	CreatedAt   time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updated_at"`
}
