package domain

import "time"

type Operation struct {
	ID          string    `firestore:"-" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	CreatedAt   time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updated_at"`
}

type Farm struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Location  string    `firestore:"location" json:"location"`
	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updated_at"`
}
