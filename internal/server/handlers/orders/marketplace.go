package orders

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

// MarketplaceHandler serves the future-facing marketplace order records. No
// marketplace surface drives a full order lifecycle yet; the contract is kept
// symmetric with the other collections.
type MarketplaceHandler struct {
	orders *collections.Store[*collections.MarketplaceOrder]

	validator *validator.Validate
	logger    *zap.Logger
}

func NewMarketplaceHandler(
	orders *collections.Store[*collections.MarketplaceOrder],
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &MarketplaceHandler{
		orders: orders,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *MarketplaceHandler) Register(r fiber.Router) {
	r = r.Group("/orders")

	r.Use(errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary	Record a marketplace order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateMarketplaceRequest	true	"Order creation request"
//	@Success	201		{object}	collections.MarketplaceOrder
//	@Router		/orders [post]
func (h *MarketplaceHandler) post(c *fiber.Ctx, req *CreateMarketplaceRequest) error {
	entity := &collections.MarketplaceOrder{
		OrderNumber:     req.OrderNumber,
		BuyerID:         req.BuyerID,
		ListingID:       req.ListingID,
		Quantity:        req.Quantity,
		TotalPrice:      req.TotalPrice,
		TransactionDate: req.TransactionDate,
		OrderStatus:     req.OrderStatus,
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		entity.ID = id
	}

	created, err := h.orders.Create(c.Context(), entity)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

//	@Summary	List marketplace orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	MarketplaceListResponse
//	@Router		/orders [get]
func (h *MarketplaceHandler) list(c *fiber.Ctx) error {
	items, err := h.orders.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	return c.JSON(MarketplaceListResponse{
		Items: lo.Map(items, func(o *collections.MarketplaceOrder, _ int) collections.MarketplaceOrder {
			return *o
		}),
	})
}

//	@Summary	Get a marketplace order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	collections.MarketplaceOrder
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/orders/{id} [get]
func (h *MarketplaceHandler) get(c *fiber.Ctx) error {
	id, err := getOrderID(c)
	if err != nil {
		return err
	}

	order, err := h.orders.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}

	return c.JSON(order)
}

//	@Summary	Update a marketplace order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Order ID"
//	@Param		order	body		UpdateMarketplaceRequest	true	"Order update request"
//	@Success	200		{object}	collections.MarketplaceOrder
//	@Router		/orders/{id} [patch]
func (h *MarketplaceHandler) patch(c *fiber.Ctx, req *UpdateMarketplaceRequest) error {
	id, err := getOrderID(c)
	if err != nil {
		return err
	}

	updated, err := h.orders.Update(c.Context(), id, func(o *collections.MarketplaceOrder) error {
		if req.OrderNumber != nil {
			o.OrderNumber = *req.OrderNumber
		}
		if req.Quantity != nil {
			o.Quantity = *req.Quantity
		}
		if req.TotalPrice != nil {
			o.TotalPrice = *req.TotalPrice
		}
		if req.TransactionDate != nil {
			o.TransactionDate = req.TransactionDate
		}
		if req.OrderStatus != nil {
			o.OrderStatus = *req.OrderStatus
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	return c.JSON(updated)
}

//	@Summary	Delete a marketplace order
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Router		/orders/{id} [delete]
func (h *MarketplaceHandler) delete(c *fiber.Ctx) error {
	id, err := getOrderID(c)
	if err != nil {
		return err
	}

	if err := h.orders.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func errorsHandler(c *fiber.Ctx) error {
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

func getOrderID(c *fiber.Ctx) (uuid.UUID, error) {
	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}
