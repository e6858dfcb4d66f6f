package queries

import (
	"context"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type RentalQueries interface {
	// GetByID returns Forbidden when a member asks for someone else's rental.
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RentalView, error)
	// GetByIDSystem skips ownership checks; used for idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*RentalView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RentalView, error)
}

type rentalQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRentalQueries(uow shared.UnitOfWork) RentalQueries {
	return &rentalQueriesImpl{uow: uow}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RentalView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && view.UserID != actor.UserID {
		return nil, rental.ErrNotOwner
	}
	return view, nil
}

func (q *rentalQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	var view *RentalView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindByID(ctx, id)
		if err != nil {
			return err
		}
		view = ToRentalView(r)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, rental.ErrRentalNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*RentalView, error) {
	var views []*RentalView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rs, err := tx.Rentals().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		views = toRentalViews(rs)
		return nil
	})
	return views, err
}
