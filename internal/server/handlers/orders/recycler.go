package orders

import (
	"fmt"

	"github.com/foodloop/foodloop/internal/collections"
	"github.com/foodloop/foodloop/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// RecyclerHandler serves the transaction records between members and
// recycling companies.
type RecyclerHandler struct {
	orders *collections.Store[*collections.RecyclerOrder]

	validator *validator.Validate
	logger    *zap.Logger
}

func NewRecyclerHandler(
	orders *collections.Store[*collections.RecyclerOrder],
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &RecyclerHandler{
		orders: orders,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *RecyclerHandler) Register(r fiber.Router) {
	r = r.Group("/recycler-orders")

	r.Use(errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary	Record a recycler transaction
//	@Tags		recycler-orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateRecyclerRequest	true	"Transaction creation request"
//	@Success	201		{object}	collections.RecyclerOrder
//	@Router		/recycler-orders [post]
func (h *RecyclerHandler) post(c *fiber.Ctx, req *CreateRecyclerRequest) error {
	entity := &collections.RecyclerOrder{
		InitiatingUserDisplayName: req.InitiatingUserDisplayName,
		RecyclerDisplayName:       req.RecyclerDisplayName,
		TransactionType:           req.TransactionType,
		TransactionDate:           req.TransactionDate,
		Status:                    req.Status,
		Amount:                    req.Amount,
		TransactionDetails:        req.TransactionDetails,
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
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

//	@Summary	List recycler transactions
//	@Tags		recycler-orders
//	@Produce	json
//	@Success	200	{object}	RecyclerListResponse
//	@Router		/recycler-orders [get]
func (h *RecyclerHandler) list(c *fiber.Ctx) error {
	items, err := h.orders.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	return c.JSON(RecyclerListResponse{
		Items: lo.Map(items, func(o *collections.RecyclerOrder, _ int) collections.RecyclerOrder {
			return *o
		}),
	})
}

//	@Summary	Get a recycler transaction
//	@Tags		recycler-orders
//	@Produce	json
//	@Param		id	path		string	true	"Transaction ID"
//	@Success	200	{object}	collections.RecyclerOrder
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/recycler-orders/{id} [get]
func (h *RecyclerHandler) get(c *fiber.Ctx) error {
	id, err := getOrderID(c)
	if err != nil {
		return err
	}

	order, err := h.orders.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	return c.JSON(order)
}

//	@Summary	Update a recycler transaction
//	@Tags		recycler-orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Transaction ID"
//	@Param		order	body		UpdateRecyclerRequest	true	"Transaction update request"
//	@Success	200		{object}	collections.RecyclerOrder
//	@Router		/recycler-orders/{id} [patch]
func (h *RecyclerHandler) patch(c *fiber.Ctx, req *UpdateRecyclerRequest) error {
	id, err := getOrderID(c)
	if err != nil {
		return err
	}

	updated, err := h.orders.Update(c.Context(), id, func(o *collections.RecyclerOrder) error {
		if req.TransactionType != nil {
			o.TransactionType = *req.TransactionType
		}
		if req.TransactionDate != nil {
			o.TransactionDate = req.TransactionDate
		}
		if req.Status != nil {
			o.Status = *req.Status
		}
		if req.Amount != nil {
			o.Amount = *req.Amount
		}
		if req.TransactionDetails != nil {
			o.TransactionDetails = *req.TransactionDetails
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return c.JSON(updated)
}

//	@Summary	Delete a recycler transaction
//	@Tags		recycler-orders
//	@Param		id	path	string	true	"Transaction ID"
//	@Success	204
//	@Router		/recycler-orders/{id} [delete]
func (h *RecyclerHandler) delete(c *fiber.Ctx) error {
	id, err := getOrderID(c)
	if err != nil {
		return err
	}

	if err := h.orders.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
