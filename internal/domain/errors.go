package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyProcessed is returned when a transaction's balance delta
	// has already been applied to its workers.
	ErrAlreadyProcessed = errors.New("transaction already processed")
)
