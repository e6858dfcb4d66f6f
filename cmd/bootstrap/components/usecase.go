package components

import (
	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		rental.NewHourlyPriceCalculator,
		fx.As(new(rental.PriceCalculator)),
	),
	rental.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRentalUseCase,
		commands.NewVehicleUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewRentalQueries,
		queries.NewReportQueries,
	),
)
