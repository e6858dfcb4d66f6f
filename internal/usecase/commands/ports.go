package commands

import (
	"context"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

// IdempotencyRecord is what a client's Idempotency-Key resolves to.
type IdempotencyRecord struct {
	Status      string     `json:"status"`
	RequestHash string     `json:"request_hash"`
	RentalID    *uuid.UUID `json:"rental_id,omitempty"`
}

type IdempotencyStore interface {
	// Reserve claims key for userID. When the key is already taken the
	// existing record is returned with claimed=false.
	Reserve(ctx context.Context, key string, userID uuid.UUID, requestHash string) (existing *IdempotencyRecord, claimed bool, err error)
	Complete(ctx context.Context, key string, userID uuid.UUID, requestHash string, rentalID uuid.UUID) error
	// Release drops a processing claim so the client may retry after a failure.
	Release(ctx context.Context, key string, userID uuid.UUID) error
}
