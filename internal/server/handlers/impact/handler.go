package impact

import (
	"errors"
	"fmt"

	"github.com/foodloop/foodloop/internal/collections"
	"github.com/foodloop/foodloop/internal/server/validation"
	"github.com/foodloop/foodloop/internal/storage"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	metrics *collections.Store[*collections.ImpactMetric]

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	metrics *collections.Store[*collections.ImpactMetric],
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		metrics: metrics,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/impact")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/visuals", h.visuals)
	r.Get("/:id", h.get)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary	Create an impact metric
//	@Tags		impact
//	@Accept		json
//	@Produce	json
//	@Param		metric	body		CreateRequest	true	"Metric creation request"
//	@Success	201		{object}	collections.ImpactMetric
//	@Router		/impact [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	entity := &collections.ImpactMetric{
		MetricName:           req.MetricName,
		MetricValue:          req.MetricValue,
		UnitOfMeasure:        req.UnitOfMeasure,
		MetricDescription:    req.MetricDescription,
		LastUpdated:          req.LastUpdated,
		VisualRepresentation: req.VisualRepresentation,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		entity.ID = id
	}

	created, err := h.metrics.Create(c.Context(), entity)
	if err != nil {
		return fmt.Errorf("failed to create metric: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

//	@Summary	List impact metrics
//	@Tags		impact
//	@Produce	json
//	@Success	200	{object}	ListResponse
//	@Router		/impact [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.metrics.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list metrics: %w", err)
	}

	return c.JSON(ListResponse{Items: deref(items)})
}

//	@Summary		List metrics with a visual representation
//	@Description	Only metrics carrying a visualRepresentation, which gates the secondary visualization view
//	@Tags			impact
//	@Produce		json
//	@Success		200	{object}	ListResponse
//	@Router			/impact/visuals [get]
func (h *Handler) visuals(c *fiber.Ctx) error {
	items, err := h.metrics.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list metrics: %w", err)
	}

	withVisuals := lo.Filter(items, func(m *collections.ImpactMetric, _ int) bool {
		return m.VisualRepresentation != ""
	})

	return c.JSON(ListResponse{Items: deref(withVisuals)})
}

//	@Summary	Get an impact metric
//	@Tags		impact
//	@Produce	json
//	@Param		id	path		string	true	"Metric ID"
//	@Success	200	{object}	collections.ImpactMetric
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/impact/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getMetricID(c)
	if err != nil {
		return err
	}

	metric, err := h.metrics.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get metric: %w", err)
	}

	return c.JSON(metric)
}

//	@Summary	Update an impact metric
//	@Tags		impact
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Metric ID"
//	@Param		metric	body		UpdateRequest	true	"Metric update request"
//	@Success	200		{object}	collections.ImpactMetric
//	@Router		/impact/{id} [patch]
func (h *Handler) patch(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := getMetricID(c)
	if err != nil {
		return err
	}

	updated, err := h.metrics.Update(c.Context(), id, func(m *collections.ImpactMetric) error {
		if req.MetricName != nil {
			m.MetricName = *req.MetricName
		}
		if req.MetricValue != nil {
			m.MetricValue = *req.MetricValue
		}
		if req.UnitOfMeasure != nil {
			m.UnitOfMeasure = *req.UnitOfMeasure
		}
		if req.MetricDescription != nil {
			m.MetricDescription = *req.MetricDescription
		}
		if req.LastUpdated != nil {
			m.LastUpdated = req.LastUpdated
		}
		if req.VisualRepresentation != nil {
			m.VisualRepresentation = *req.VisualRepresentation
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update metric: %w", err)
	}

	return c.JSON(updated)
}

//	@Summary	Delete an impact metric
//	@Tags		impact
//	@Param		id	path	string	true	"Metric ID"
//	@Success	204
//	@Router		/impact/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getMetricID(c)
	if err != nil {
		return err
	}

	if err := h.metrics.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("failed to delete metric: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func deref(items []*collections.ImpactMetric) []collections.ImpactMetric {
	return lo.Map(items, func(m *collections.ImpactMetric, _ int) collections.ImpactMetric {
		return *m
	})
}

func getMetricID(c *fiber.Ctx) (uuid.UUID, error) {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}
