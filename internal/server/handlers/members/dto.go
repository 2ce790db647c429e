package members

import (
	"time"

	"github.com/foodloop/foodloop/internal/members"
)

type RegisterRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	FirstName string   `json:"firstName" validate:"omitempty,max=64"`
	LastName  string   `json:"lastName" validate:"omitempty,max=64"`
	Phones    []string `json:"phones" validate:"omitempty,dive,e164"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string   `json:"firstName" validate:"omitempty,max=64"`
	LastName  *string   `json:"lastName" validate:"omitempty,max=64"`
	Phones    *[]string `json:"phones" validate:"omitempty,dive,e164"`
}

type MemberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Phones    []string  `json:"phones,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	Token  string         `json:"token"`
	Member MemberResponse `json:"member"`
}

func newMemberResponse(m *members.Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID.String(),
		Email:     m.LoginEmail,
		FirstName: m.Contact.FirstName,
		LastName:  m.Contact.LastName,
		Phones:    m.Contact.Phones,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
