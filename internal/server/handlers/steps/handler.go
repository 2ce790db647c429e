package steps

import (
	"errors"
	"fmt"

	"github.com/foodloop/foodloop/internal/collections"
	"github.com/foodloop/foodloop/internal/server/validation"
	"github.com/foodloop/foodloop/internal/storage"
	"github.com/foodloop/foodloop/internal/views"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	steps *collections.Store[*collections.HowItWorksStep]

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	steps *collections.Store[*collections.HowItWorksStep],
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		steps: steps,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/steps")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary	Create a walkthrough step
//	@Tags		steps
//	@Accept		json
//	@Produce	json
//	@Param		step	body		CreateRequest	true	"Step creation request"
//	@Success	201		{object}	collections.HowItWorksStep
//	@Router		/steps [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	entity := &collections.HowItWorksStep{
		StepNumber:      req.StepNumber,
		StepTitle:       req.StepTitle,
		StepDescription: req.StepDescription,
		StepImage:       req.StepImage,
		CTAText:         req.CTAText,
		CTAURL:          req.CTAURL,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		entity.ID = id
	}

	created, err := h.steps.Create(c.Context(), entity)
	if err != nil {
		return fmt.Errorf("failed to create step: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

//	@Summary	List walkthrough steps ordered by step number
//	@Tags		steps
//	@Produce	json
//	@Success	200	{object}	ListResponse
//	@Router		/steps [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.steps.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list steps: %w", err)
	}

	sorted := views.SortByKey(items, func(s *collections.HowItWorksStep) int { return s.StepNumber })

	return c.JSON(ListResponse{
		Items: lo.Map(sorted, func(s *collections.HowItWorksStep, _ int) collections.HowItWorksStep {
			return *s
		}),
	})
}

//	@Summary	Get a walkthrough step
//	@Tags		steps
//	@Produce	json
//	@Param		id	path		string	true	"Step ID"
//	@Success	200	{object}	collections.HowItWorksStep
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/steps/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getStepID(c)
	if err != nil {
		return err
	}

	step, err := h.steps.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get step: %w", err)
	}

	return c.JSON(step)
}

//	@Summary	Update a walkthrough step
//	@Tags		steps
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Step ID"
//	@Param		step	body		UpdateRequest	true	"Step update request"
//	@Success	200		{object}	collections.HowItWorksStep
//	@Router		/steps/{id} [patch]
func (h *Handler) patch(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := getStepID(c)
	if err != nil {
		return err
	}

	updated, err := h.steps.Update(c.Context(), id, func(s *collections.HowItWorksStep) error {
		if req.StepNumber != nil {
			s.StepNumber = *req.StepNumber
		}
		if req.StepTitle != nil {
			s.StepTitle = *req.StepTitle
		}
		if req.StepDescription != nil {
			s.StepDescription = *req.StepDescription
		}
		if req.StepImage != nil {
			s.StepImage = *req.StepImage
		}
		if req.CTAText != nil {
			s.CTAText = *req.CTAText
		}
		if req.CTAURL != nil {
			s.CTAURL = *req.CTAURL
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update step: %w", err)
	}

	return c.JSON(updated)
}

//	@Summary	Delete a walkthrough step
//	@Tags		steps
//	@Param		id	path	string	true	"Step ID"
//	@Success	204
//	@Router		/steps/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getStepID(c)
	if err != nil {
		return err
	}

	if err := h.steps.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("failed to delete step: %w", err)
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

func getStepID(c *fiber.Ctx) (uuid.UUID, error) {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}
