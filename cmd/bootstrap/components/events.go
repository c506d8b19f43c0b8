package components

import (
	"context"
	"log/slog"

	"showroom-scheduler/internal/infra/outbox"
	"showroom-scheduler/internal/pkg/clock"
	"showroom-scheduler/internal/pkg/config"
	"showroom-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(startRelay),
)

// NewPublisher falls back to logging events when no brokers are configured.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (outbox.Publisher, error) {
	var publisher outbox.Publisher
	if len(cfg.Events.KafkaBrokers) == 0 {
		logger.Warn("EVENTS_KAFKA_BROKERS not set, appointment events will only be logged")
		publisher = outbox.NewLogPublisher(logger)
	} else {
		kafkaPublisher, err := outbox.NewKafkaPublisher(cfg.Events, logger)
		if err != nil {
			return nil, err
		}
		publisher = kafkaPublisher
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewRelay(
	uow shared.UnitOfWork,
	publisher outbox.Publisher,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *outbox.Relay {
	return outbox.NewRelay(uow, publisher, clk, logger, cfg.Events)
}

func startRelay(lc fx.Lifecycle, relay *outbox.Relay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
