package idempotency

import (
	"context"
	"sync"
	"time"

	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type memoryEntry struct {
	record    commands.IdempotencyRecord
	expiresAt time.Time
}

// MemoryStore is the single-process counterpart of RedisStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: map[string]memoryEntry{},
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *MemoryStore) Reserve(_ context.Context, key string, userID uuid.UUID, requestHash string) (*commands.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	k := recordKey(key, userID)
	if entry, ok := s.entries[k]; ok && now.Before(entry.expiresAt) {
		existing := entry.record
		return &existing, false, nil
	}

	s.entries[k] = memoryEntry{
		record:    commands.IdempotencyRecord{Status: commands.IdempotencyStatusProcessing, RequestHash: requestHash},
		expiresAt: now.Add(s.ttl),
	}
	return nil, true, nil
}

func (s *MemoryStore) Complete(_ context.Context, key string, userID uuid.UUID, requestHash string, rentalID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[recordKey(key, userID)] = memoryEntry{
		record: commands.IdempotencyRecord{
			Status:      commands.IdempotencyStatusCompleted,
			RequestHash: requestHash,
			RentalID:    &rentalID,
		},
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, recordKey(key, userID))
	return nil
}
