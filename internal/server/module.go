package server

import (
	"github.com/foodloop/foodloop/internal/server/docs"
	"github.com/foodloop/foodloop/internal/server/handlers/home"
	"github.com/foodloop/foodloop/internal/server/handlers/impact"
	"github.com/foodloop/foodloop/internal/server/handlers/listings"
	membershandler "github.com/foodloop/foodloop/internal/server/handlers/members"
	"github.com/foodloop/foodloop/internal/server/handlers/orders"
	"github.com/foodloop/foodloop/internal/server/handlers/recyclers"
	"github.com/foodloop/foodloop/internal/server/handlers/services"
	"github.com/foodloop/foodloop/internal/server/handlers/steps"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	fiberswagger "github.com/gofiber/swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(home.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(steps.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(impact.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(listings.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(services.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(recyclers.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(orders.NewMarketplaceHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(orders.NewRecyclerHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(membershandler.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, healthHandler handler.Handler, app *fiber.App) {
					// Health endpoint
					healthHandler.Register(app)

					// Version 1 API group
					v1 := app.Group("/api/v1")
					v1.Get("/docs/*", fiberswagger.HandlerDefault)

					v1.Use(validation.Middleware)

					for _, h := range handlers {
						h.Register(v1)
					}
				},
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
