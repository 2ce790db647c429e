package recyclers

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
	recyclers *collections.Store[*collections.Recycler]

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	recyclers *collections.Store[*collections.Recycler],
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		recyclers: recyclers,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/recyclers")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary	Register a recycler profile
//	@Tags		recyclers
//	@Accept		json
//	@Produce	json
//	@Param		recycler	body		CreateRequest	true	"Recycler creation request"
//	@Success	201			{object}	collections.Recycler
//	@Router		/recyclers [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	entity := &collections.Recycler{
		RecyclerName:       req.RecyclerName,
		Logo:               req.Logo,
		Description:        req.Description,
		Location:           req.Location,
		WebsiteURL:         req.WebsiteURL,
		WasteTypesAccepted: req.WasteTypesAccepted,
		ProductsInReturn:   req.ProductsInReturn,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		entity.ID = id
	}

	created, err := h.recyclers.Create(c.Context(), entity)
	if err != nil {
		return fmt.Errorf("failed to create recycler: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

//	@Summary		List recycler profiles
//	@Description	Fetch every recycler, optionally narrowed by a case-insensitive text search
//	@Tags			recyclers
//	@Produce		json
//	@Param			q	query		string	false	"Substring match over name, description and accepted waste types"
//	@Success		200	{object}	ListResponse
//	@Router			/recyclers [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.recyclers.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list recyclers: %w", err)
	}

	filtered := views.Search(items, c.Query("q"), func(r *collections.Recycler) []string {
		return []string{r.RecyclerName, r.Description, r.WasteTypesAccepted}
	})

	return c.JSON(ListResponse{
		Items: lo.Map(filtered, func(r *collections.Recycler, _ int) collections.Recycler {
			return *r
		}),
	})
}

//	@Summary	Get a recycler profile
//	@Tags		recyclers
//	@Produce	json
//	@Param		id	path		string	true	"Recycler ID"
//	@Success	200	{object}	collections.Recycler
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/recyclers/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getRecyclerID(c)
	if err != nil {
		return err
	}

	recycler, err := h.recyclers.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get recycler: %w", err)
	}

	return c.JSON(recycler)
}

//	@Summary	Update a recycler profile
//	@Tags		recyclers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string			true	"Recycler ID"
//	@Param		recycler	body		UpdateRequest	true	"Recycler update request"
//	@Success	200			{object}	collections.Recycler
//	@Router		/recyclers/{id} [patch]
func (h *Handler) patch(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := getRecyclerID(c)
	if err != nil {
		return err
	}

	updated, err := h.recyclers.Update(c.Context(), id, func(r *collections.Recycler) error {
		if req.RecyclerName != nil {
			r.RecyclerName = *req.RecyclerName
		}
		if req.Logo != nil {
			r.Logo = *req.Logo
		}
		if req.Description != nil {
			r.Description = *req.Description
		}
		if req.Location != nil {
			r.Location = *req.Location
		}
		if req.WebsiteURL != nil {
			r.WebsiteURL = *req.WebsiteURL
		}
		if req.WasteTypesAccepted != nil {
			r.WasteTypesAccepted = *req.WasteTypesAccepted
		}
		if req.ProductsInReturn != nil {
			r.ProductsInReturn = *req.ProductsInReturn
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update recycler: %w", err)
	}

	return c.JSON(updated)
}

//	@Summary	Delete a recycler profile
//	@Tags		recyclers
//	@Param		id	path	string	true	"Recycler ID"
//	@Success	204
//	@Router		/recyclers/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getRecyclerID(c)
	if err != nil {
		return err
	}

	if err := h.recyclers.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("failed to delete recycler: %w", err)
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

func getRecyclerID(c *fiber.Ctx) (uuid.UUID, error) {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}
