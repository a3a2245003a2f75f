package domain

import "time"

// ReportField describes one column of a configurable report.
type ReportField struct {
	Name    string `firestore:"name" json:"name"`
	Label   string `firestore:"label" json:"label"`
	Include bool   `firestore:"include" json:"include"`
}

type Report struct {
	ID           string        `firestore:"-" json:"id"`
	Name         string        `firestore:"name" json:"name"`
	Description  string        `firestore:"description" json:"description"`
	Associations []string      `firestore:"associations" json:"associations"`
	Fields       []ReportField `firestore:"fields" json:"fields"`
	CreatedAt    time.Time     `firestore:"createdAt" json:"created_at"`
	UpdatedAt    time.Time     `firestore:"updatedAt" json:"updated_at"`
}
