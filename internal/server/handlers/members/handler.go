package members

import (
	"errors"
	"fmt"

	"github.com/foodloop/foodloop/internal/members"
	"github.com/foodloop/foodloop/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	service *members.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	service *members.Service,
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		service: service,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/members")

	r.Use(errorsHandler)
	r.Post("/register", validation.DecorateWithBodyEx(h.validator, h.register))
	r.Post("/login", validation.DecorateWithBodyEx(h.validator, h.login))

	me := r.Group("/me", RequireMember(h.service))
	me.Get("/", h.me)
	me.Patch("/", validation.DecorateWithBodyEx(h.validator, h.update))
}

//	@Summary	Register a member
//	@Tags		members
//	@Accept		json
//	@Produce	json
//	@Param		member	body		RegisterRequest	true	"Registration request"
//	@Success	201		{object}	MemberResponse
//	@Failure	409		{object}	fiberfx.ErrorResponse
//	@Router		/members/register [post]
func (h *Handler) register(c *fiber.Ctx, req *RegisterRequest) error {
	member, err := h.service.Register(c.Context(), members.MemberDraft{
		MemberBase: members.MemberBase{
			LoginEmail: req.Email,
			Contact: members.Contact{
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Phones:    req.Phones,
			},
		},
		Password: req.Password,
	})
	if err != nil {
		return fmt.Errorf("failed to register member: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newMemberResponse(member))
}

//	@Summary	Authenticate a member
//	@Tags		members
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		LoginRequest	true	"Login request"
//	@Success	200			{object}	LoginResponse
//	@Failure	401			{object}	fiberfx.ErrorResponse
//	@Router		/members/login [post]
func (h *Handler) login(c *fiber.Ctx, req *LoginRequest) error {
	token, member, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	return c.JSON(LoginResponse{
		Token:  token,
		Member: newMemberResponse(member),
	})
}

//	@Summary	Get the authenticated member
//	@Tags		members
//	@Produce	json
//	@Success	200	{object}	MemberResponse
//	@Failure	401	{object}	fiberfx.ErrorResponse
//	@Security	ApiAuth
//	@Router		/members/me [get]
func (h *Handler) me(c *fiber.Ctx) error {
	return c.JSON(newMemberResponse(memberFromLocals(c)))
}

//	@Summary	Update the authenticated member's profile
//	@Tags		members
//	@Accept		json
//	@Produce	json
//	@Param		profile	body		UpdateProfileRequest	true	"Profile update request"
//	@Success	200		{object}	MemberResponse
//	@Failure	401		{object}	fiberfx.ErrorResponse
//	@Security	ApiAuth
//	@Router		/members/me [patch]
func (h *Handler) update(c *fiber.Ctx, req *UpdateProfileRequest) error {
	member := memberFromLocals(c)

	contact := member.Contact
	if req.FirstName != nil {
		contact.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		contact.LastName = *req.LastName
	}
	if req.Phones != nil {
		contact.Phones = *req.Phones
	}

	updated, err := h.service.UpdateContact(c.Context(), member.ID, contact)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return c.JSON(newMemberResponse(updated))
}

func errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, members.ErrMemberNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, members.ErrDuplicateMember):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, members.ErrInvalidCredentials), errors.Is(err, members.ErrTokenInvalid):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
