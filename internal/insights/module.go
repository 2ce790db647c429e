package insights

import (
	"fmt"

	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"insights",
		logger.WithNamedLogger("insights"),
		fx.Provide(NewCollector),
		fx.Invoke(func(collector *Collector) error {
			if err := prometheus.Register(collector); err != nil {
				return fmt.Errorf("failed to register insights collector: %w", err)
			}
			return nil
		}),
	)
}
