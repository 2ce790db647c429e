package members

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"members",
		logger.WithNamedLogger("members"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
