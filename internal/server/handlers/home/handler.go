package home

import (
	"errors"
	"fmt"
	"sync"

	"github.com/foodloop/foodloop/internal/collections"
	"github.com/foodloop/foodloop/internal/views"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const featuredListings = 3

// Handler assembles the landing page payload. The three collections are
// independent, so they are fetched concurrently.
type Handler struct {
	steps    *collections.Store[*collections.HowItWorksStep]
	metrics  *collections.Store[*collections.ImpactMetric]
	listings *collections.Store[*collections.MarketplaceListing]

	logger *zap.Logger
}

func NewHandler(
	steps *collections.Store[*collections.HowItWorksStep],
	metrics *collections.Store[*collections.ImpactMetric],
	listings *collections.Store[*collections.MarketplaceListing],
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		steps:    steps,
		metrics:  metrics,
		listings: listings,

		logger: logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/home", h.get)
}

//	@Summary	Landing page content
//	@Tags		home
//	@Produce	json
//	@Success	200	{object}	Response
//	@Router		/home [get]
func (h *Handler) get(c *fiber.Ctx) error {
	ctx := c.Context()

	var (
		steps    []*collections.HowItWorksStep
		metrics  []*collections.ImpactMetric
		listings []*collections.MarketplaceListing
		errs     [3]error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		steps, errs[0] = h.steps.List(ctx)
	}()
	go func() {
		defer wg.Done()
		metrics, errs[1] = h.metrics.List(ctx)
	}()
	go func() {
		defer wg.Done()
		listings, errs[2] = h.listings.List(ctx)
	}()
	wg.Wait()

	if err := errors.Join(errs[:]...); err != nil {
		return fmt.Errorf("failed to assemble home page: %w", err)
	}

	steps = views.SortByKey(steps, func(s *collections.HowItWorksStep) int { return s.StepNumber })

	return c.JSON(Response{
		Steps: lo.Map(steps, func(s *collections.HowItWorksStep, _ int) collections.HowItWorksStep {
			return *s
		}),
		ImpactMetrics: lo.Map(metrics, func(m *collections.ImpactMetric, _ int) collections.ImpactMetric {
			return *m
		}),
		FeaturedListings: lo.Map(lo.Subset(listings, 0, featuredListings), func(l *collections.MarketplaceListing, _ int) collections.MarketplaceListing {
			return *l
		}),
	})
}
