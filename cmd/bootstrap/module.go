package bootstrap

import (
	"vehicle-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.UseCaseModule,
	IdempotencyModule,
	components.HandlerModule,
	SchedulerModule,
)
