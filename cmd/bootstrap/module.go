package bootstrap

import (
	"showroom-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	SchedulingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.EventsModule,
	components.HandlerModule,
)
