// Package store provides durable persistence for RSVP confirmations.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"casamento/internal/models"
)

// ErrNotFound is returned when the referenced confirmation does not exist.
var ErrNotFound = errors.New("confirmation not found")

// ConfirmationStore is the persistence contract used by the handlers.
// The abstraction keeps the handlers testable against an in-memory fake.
type ConfirmationStore interface {
	// InsertConfirmation persists a new confirmation. The record must
	// already carry its ID and CreatedAt.
	InsertConfirmation(ctx context.Context, rec models.Confirmation) error

	// ListConfirmations returns all confirmations, newest first.
	ListConfirmations(ctx context.Context) ([]models.Confirmation, error)

	// DeleteConfirmation removes one confirmation by ID.
	// Returns ErrNotFound when no record has that ID.
	DeleteConfirmation(ctx context.Context, id uuid.UUID) error
}
