package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/foodloop/foodloop/internal/collections"
	"github.com/foodloop/foodloop/internal/config"
	"github.com/foodloop/foodloop/internal/insights"
	"github.com/foodloop/foodloop/internal/members"
	"github.com/foodloop/foodloop/internal/server"
	"github.com/foodloop/foodloop/pkg/badgerfx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		collections.Module(),
		members.Module(),
		insights.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 FoodLoop application starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 FoodLoop application shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
