package memstore

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// writerWeight is the full capacity of the semaphore: a writer excludes
// every reader, a reader takes one unit.
const writerWeight = 1 << 20

var errReadOnly = errors.New("write attempted in read-only unit of work")

type state struct {
	vehicles map[uuid.UUID]vehicle.Snapshot
	plates   map[string]uuid.UUID
	rentals  map[uuid.UUID]rental.Snapshot
}

func (s *state) clone() *state {
	return &state{
		vehicles: maps.Clone(s.vehicles),
		plates:   maps.Clone(s.plates),
		rentals:  maps.Clone(s.rentals),
	}
}

// Store keeps the catalog and the ledger in process memory. A unit of work
// sees either every write of another unit or none of them.
type Store struct {
	sem         *semaphore.Weighted
	lockTimeout time.Duration
	current     *state
	logger      *slog.Logger
}

func NewStore(lockTimeout time.Duration, logger *slog.Logger) *Store {
	return &Store{
		sem:         semaphore.NewWeighted(writerWeight),
		lockTimeout: lockTimeout,
		current: &state{
			vehicles: map[uuid.UUID]vehicle.Snapshot{},
			plates:   map[string]uuid.UUID{},
			rentals:  map[uuid.UUID]rental.Snapshot{},
		},
		logger: logger,
	}
}

// Within runs fn against a private copy and publishes it only when fn
// succeeds and ctx is still live.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := s.acquire(ctx, writerWeight); err != nil {
		return err
	}
	defer s.sem.Release(writerWeight)

	work := s.current.clone()
	if err := fn(ctx, &memTx{state: work, writable: true, logger: s.logger}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.current = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := s.acquire(ctx, 1); err != nil {
		return err
	}
	defer s.sem.Release(1)

	return fn(ctx, &memTx{state: s.current, logger: s.logger})
}

func (s *Store) acquire(ctx context.Context, weight int64) error {
	waitCtx := ctx
	if s.lockTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.lockTimeout)
		defer cancel()
	}

	if err := s.sem.Acquire(waitCtx, weight); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return infra.WrapRepoErr(s.logger, infra.KindStorageConflict, "timed out waiting for storage lock", err)
	}
	return nil
}

var _ shared.UnitOfWork = (*Store)(nil)

type memTx struct {
	state    *state
	writable bool
	logger   *slog.Logger
}

func (tx *memTx) Vehicles() shared.VehicleRepository {
	return &vehicleRepository{tx: tx}
}

func (tx *memTx) Rentals() shared.RentalRepository {
	return &rentalRepository{tx: tx}
}

func (tx *memTx) checkWritable() error {
	if !tx.writable {
		return infra.WrapRepoErr(tx.logger, infra.KindDBFailure, "write rejected", errReadOnly)
	}
	return nil
}
