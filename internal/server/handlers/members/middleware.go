package members

import (
	"strings"

	"github.com/foodloop/foodloop/internal/members"
	"github.com/gofiber/fiber/v2"
)

const localsMemberKey = "member"

// RequireMember authenticates the bearer token and stores the member in the
// request locals. Requests without a valid token get 401.
func RequireMember(svc *members.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		member, err := svc.Authenticate(c.Context(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(localsMemberKey, member)

		return c.Next()
	}
}

func memberFromLocals(c *fiber.Ctx) *members.Member {
	member, _ := c.Locals(localsMemberKey).(*members.Member)
	return member
}
