package listings

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
	listings *collections.Store[*collections.MarketplaceListing]

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	listings *collections.Store[*collections.MarketplaceListing],
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		listings: listings,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/listings")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/facets", h.facets)
	r.Get("/:id", h.get)
	r.Get("/:id/inquiry", h.inquiry)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary		Create a marketplace listing
//	@Description	Create a listing from a fully-formed client-constructed entity, optionally with a pre-generated UUID
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			listing	body		CreateRequest	true	"Listing creation request"
//	@Success		201		{object}	ListingResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		409		{object}	fiberfx.ErrorResponse
//	@Router			/listings [post]
func (h *Handler) post(c *fiber.Ctx, req *CreateRequest) error {
	entity := &collections.MarketplaceListing{
		ListingTitle:   req.ListingTitle,
		Description:    req.Description,
		WasteType:      req.WasteType,
		Quantity:       req.Quantity,
		UnitOfMeasure:  req.UnitOfMeasure,
		PricePerUnit:   req.PricePerUnit,
		Location:       req.Location,
		ListingImage:   req.ListingImage,
		AvailableUntil: req.AvailableUntil,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		entity.ID = id
	}

	created, err := h.listings.Create(c.Context(), entity)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(created))
}

//	@Summary		List marketplace listings
//	@Description	Fetch every listing, optionally narrowed by a case-insensitive text search and exact-match waste type and location filters
//	@Tags			listings
//	@Produce		json
//	@Param			q			query		string	false	"Substring match over title and description"
//	@Param			wasteType	query		string	false	"Exact waste type, or 'all'"
//	@Param			location	query		string	false	"Exact location, or 'all'"
//	@Success		200			{object}	ListResponse
//	@Router			/listings [get]
func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.listings.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list listings: %w", err)
	}

	filtered := views.Search(items, c.Query("q"), func(l *collections.MarketplaceListing) []string {
		return []string{l.ListingTitle, l.Description}
	})
	filtered = views.MatchField(filtered, c.Query("wasteType"), func(l *collections.MarketplaceListing) string {
		return l.WasteType
	})
	filtered = views.MatchField(filtered, c.Query("location"), func(l *collections.MarketplaceListing) string {
		return l.Location
	})

	return c.JSON(ListResponse{
		Items: lo.Map(filtered, func(l *collections.MarketplaceListing, _ int) ListingResponse {
			return toResponse(l)
		}),
	})
}

//	@Summary		Listing filter facets
//	@Description	Distinct non-empty waste types and locations across all listings
//	@Tags			listings
//	@Produce		json
//	@Success		200	{object}	FacetsResponse
//	@Router			/listings/facets [get]
func (h *Handler) facets(c *fiber.Ctx) error {
	items, err := h.listings.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list listings: %w", err)
	}

	return c.JSON(FacetsResponse{
		WasteTypes: views.Distinct(items, func(l *collections.MarketplaceListing) string { return l.WasteType }),
		Locations:  views.Distinct(items, func(l *collections.MarketplaceListing) string { return l.Location }),
	})
}

//	@Summary		Get a listing
//	@Tags			listings
//	@Produce		json
//	@Param			id	path		string	true	"Listing ID"
//	@Success		200	{object}	ListingResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/listings/{id} [get]
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getListingID(c)
	if err != nil {
		return err
	}

	listing, err := h.listings.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get listing: %w", err)
	}

	return c.JSON(toResponse(listing))
}

//	@Summary		Seller inquiry email for a listing
//	@Description	Templated contact email with the listing details and derived total value
//	@Tags			listings
//	@Produce		json
//	@Param			id	path		string	true	"Listing ID"
//	@Success		200	{object}	InquiryResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/listings/{id}/inquiry [get]
func (h *Handler) inquiry(c *fiber.Ctx) error {
	id, err := getListingID(c)
	if err != nil {
		return err
	}

	listing, err := h.listings.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get listing: %w", err)
	}

	return c.JSON(newInquiry(listing))
}

//	@Summary		Update a listing
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Listing ID"
//	@Param			listing	body		UpdateRequest	true	"Listing update request"
//	@Success		200		{object}	ListingResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/listings/{id} [patch]
func (h *Handler) patch(c *fiber.Ctx, req *UpdateRequest) error {
	id, err := getListingID(c)
	if err != nil {
		return err
	}

	updated, err := h.listings.Update(c.Context(), id, func(l *collections.MarketplaceListing) error {
		if req.ListingTitle != nil {
			l.ListingTitle = *req.ListingTitle
		}
		if req.Description != nil {
			l.Description = *req.Description
		}
		if req.WasteType != nil {
			l.WasteType = *req.WasteType
		}
		if req.Quantity != nil {
			l.Quantity = *req.Quantity
		}
		if req.UnitOfMeasure != nil {
			l.UnitOfMeasure = *req.UnitOfMeasure
		}
		if req.PricePerUnit != nil {
			l.PricePerUnit = *req.PricePerUnit
		}
		if req.Location != nil {
			l.Location = *req.Location
		}
		if req.ListingImage != nil {
			l.ListingImage = *req.ListingImage
		}
		if req.AvailableUntil != nil {
			l.AvailableUntil = req.AvailableUntil
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}

	return c.JSON(toResponse(updated))
}

//	@Summary		Delete a listing
//	@Tags			listings
//	@Param			id	path	string	true	"Listing ID"
//	@Success		204
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/listings/{id} [delete]
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getListingID(c)
	if err != nil {
		return err
	}

	if err := h.listings.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
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

func toResponse(listing *collections.MarketplaceListing) ListingResponse {
	return ListingResponse{
		MarketplaceListing: *listing,
		TotalValue:         views.FormatAmount(views.TotalValue(listing.PricePerUnit, listing.Quantity)),
	}
}

func getListingID(c *fiber.Ctx) (uuid.UUID, error) {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}
