package domain

import "time"

type PaymentGroup struct {
	ID          string    `firestore:"-" json:"id"`
	Description string    `firestore:"description" json:"description"`
	WorkerIDs   []string  `firestore:"workerIds" json:"worker_ids"`
	CreatedAt   time.Time `firestore:"createdAt" json:"created_at"`
}
