package services

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
	services *collections.Store[*collections.SustainabilityService]

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	services *collections.Store[*collections.SustainabilityService],
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		services: services,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/services")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/facets", h.facets)
	r.Get("/:id", h.get)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary	Create a sustainability service
//	@Tags		services
//	@Accept		json
//	@Produce	json
//	@Param		service	body		CreateRequest	true	"Service creation request"
//	@Success	201		{object}	collections.SustainabilityService
//	@Router		/services [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	entity := &collections.SustainabilityService{
		ServiceName:      req.ServiceName,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		ServiceType:      req.ServiceType,
		PartnerName:      req.PartnerName,
		ServiceImage:     req.ServiceImage,
		ContactURL:       req.ContactURL,
		RecyclerID:       req.RecyclerID,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		entity.ID = id
	}

	created, err := h.services.Create(c.Context(), entity)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

//	@Summary		List sustainability services
//	@Description	Fetch every service, optionally narrowed by text search and exact-match service type
//	@Tags			services
//	@Produce		json
//	@Param			q			query		string	false	"Substring match over name and descriptions"
//	@Param			serviceType	query		string	false	"Exact service type, or 'all'"
//	@Success		200			{object}	ListResponse
//	@Router			/services [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.services.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	filtered := views.Search(items, c.Query("q"), func(s *collections.SustainabilityService) []string {
		return []string{s.ServiceName, s.ShortDescription, s.FullDescription, s.PartnerName}
	})
	filtered = views.MatchField(filtered, c.Query("serviceType"), func(s *collections.SustainabilityService) string {
		return s.ServiceType
	})

	return c.JSON(ListResponse{
		Items: lo.Map(filtered, func(s *collections.SustainabilityService, _ int) collections.SustainabilityService {
			return *s
		}),
	})
}

//	@Summary	Service filter facets
//	@Tags		services
//	@Produce	json
//	@Success	200	{object}	FacetsResponse
//	@Router		/services/facets [get]
func (h *Handler) facets(c *fiber.Ctx) error {
	items, err := h.services.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	return c.JSON(FacetsResponse{
		ServiceTypes: views.Distinct(items, func(s *collections.SustainabilityService) string {
			return s.ServiceType
		}),
	})
}

//	@Summary	Get a sustainability service
//	@Tags		services
//	@Produce	json
//	@Param		id	path		string	true	"Service ID"
//	@Success	200	{object}	collections.SustainabilityService
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/services/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getServiceID(c)
	if err != nil {
		return err
	}

	service, err := h.services.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get service: %w", err)
	}

	return c.JSON(service)
}

//	@Summary	Update a sustainability service
//	@Tags		services
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Service ID"
//	@Param		service	body		UpdateRequest	true	"Service update request"
//	@Success	200		{object}	collections.SustainabilityService
//	@Router		/services/{id} [patch]
func (h *Handler) patch(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := getServiceID(c)
	if err != nil {
		return err
	}

	updated, err := h.services.Update(c.Context(), id, func(s *collections.SustainabilityService) error {
		if req.ServiceName != nil {
			s.ServiceName = *req.ServiceName
		}
		if req.ShortDescription != nil {
			s.ShortDescription = *req.ShortDescription
		}
		if req.FullDescription != nil {
			s.FullDescription = *req.FullDescription
		}
		if req.ServiceType != nil {
			s.ServiceType = *req.ServiceType
		}
		if req.PartnerName != nil {
			s.PartnerName = *req.PartnerName
		}
		if req.ServiceImage != nil {
			s.ServiceImage = *req.ServiceImage
		}
		if req.ContactURL != nil {
			s.ContactURL = *req.ContactURL
		}
		if req.RecyclerID != nil {
			s.RecyclerID = *req.RecyclerID
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	return c.JSON(updated)
}

//	@Summary	Delete a sustainability service
//	@Tags		services
//	@Param		id	path	string	true	"Service ID"
//	@Success	204
//	@Router		/services/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getServiceID(c)
	if err != nil {
		return err
	}

	if err := h.services.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
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

func getServiceID(c *fiber.Ctx) (uuid.UUID, error) {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}
