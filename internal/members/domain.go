package members

import (
	"time"

	"github.com/google/uuid"
)

// Contact holds the optional profile fields a member may carry, read when
// pre-filling a profile view.
type Contact struct {
	FirstName string
	LastName  string
	Phones    []string
}

type MemberBase struct {
	LoginEmail string
	Contact    Contact
}

type MemberDraft struct {
	MemberBase

	Password string
}

type Member struct {
	MemberBase

	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
