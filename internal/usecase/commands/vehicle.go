package commands

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"
)

type VehicleCommands interface {
	RegisterVehicle(ctx context.Context, params vehicle.NewVehicleParams) (*queries.VehicleView, error)
	UpdateVehicle(ctx context.Context, plate string, patch vehicle.Patch) (*queries.VehicleView, error)
	// DeleteVehicle soft-deletes; it refuses while any blocking rental references the vehicle.
	DeleteVehicle(ctx context.Context, plate string) error
}

type vehicleUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewVehicleUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) VehicleCommands {
	return &vehicleUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *vehicleUseCaseImpl) RegisterVehicle(ctx context.Context, params vehicle.NewVehicleParams) (*queries.VehicleView, error) {
	v, err := vehicle.NewVehicle(params, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Vehicles().Create(ctx, v), infra.KindDuplicateKey, vehicle.ErrDuplicatePlate)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("vehicle registered", "vehicle_id", v.ID(), "plate", v.Plate())
	return queries.ToVehicleView(v), nil
}

func (uc *vehicleUseCaseImpl) UpdateVehicle(ctx context.Context, plate string, patch vehicle.Patch) (*queries.VehicleView, error) {
	var updated *vehicle.Vehicle
	err := uc.withLiveVehicle(ctx, plate, func(ctx context.Context, tx shared.Tx, v *vehicle.Vehicle) error {
		if err := v.ApplyPatch(patch, uc.clock.Now()); err != nil {
			return err
		}
		updated = v
		return tx.Vehicles().Update(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	return queries.ToVehicleView(updated), nil
}

func (uc *vehicleUseCaseImpl) DeleteVehicle(ctx context.Context, plate string) error {
	err := uc.withLiveVehicle(ctx, plate, func(ctx context.Context, tx shared.Tx, v *vehicle.Vehicle) error {
		blocked, err := tx.Rentals().HasBlocking(ctx, v.ID())
		if err != nil {
			return err
		}
		if blocked {
			return vehicle.ErrVehicleInUse
		}
		if err := v.MarkDeleted(uc.clock.Now()); err != nil {
			return err
		}
		return tx.Vehicles().Update(ctx, v)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("vehicle deleted", "plate", plate)
	return nil
}

// withLiveVehicle locks the vehicle addressed by plate; deleted vehicles count as absent.
func (uc *vehicleUseCaseImpl) withLiveVehicle(
	ctx context.Context,
	plate string,
	fn func(ctx context.Context, tx shared.Tx, v *vehicle.Vehicle) error,
) error {
	key, err := vehicle.NormalizePlate(plate)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().FindByPlateForUpdate(ctx, key)
		if err != nil {
			return translate(err, infra.KindNotFound, vehicle.ErrVehicleNotFound)
		}
		if v.IsDeleted() {
			return vehicle.ErrVehicleNotFound
		}
		return fn(ctx, tx, v)
	})
}
