package members

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/foodloop/foodloop/internal/storage"
	"github.com/google/uuid"
)

// memberModel is the stored representation of a member.
type memberModel struct {
	storage.BaseEntity

	LoginEmail   string   `json:"loginEmail"`
	PasswordHash string   `json:"passwordHash"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	Phones       []string `json:"phones,omitempty"`
}

func newMemberModel(draft MemberDraft, passwordHash string) *memberModel {
	return &memberModel{
		BaseEntity: storage.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LoginEmail:   draft.LoginEmail,
		PasswordHash: passwordHash,
		FirstName:    draft.Contact.FirstName,
		LastName:     draft.Contact.LastName,
		Phones:       draft.Contact.Phones,
	}
}

// ToBadgerKey converts a member to its BadgerDB key.
func (m *memberModel) ToBadgerKey() []byte {
	return []byte("member:" + m.ID.String())
}

func (m *memberModel) indexes() []string {
	return []string{"member:email:" + m.LoginEmail}
}

// ToBadgerValue converts a member to a BadgerDB value.
func (m *memberModel) ToBadgerValue() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal member: %w", err)
	}

	return data, nil
}

// FromBadgerValue parses a member from a BadgerDB value.
func (m *memberModel) FromBadgerValue(value []byte) error {
	if err := json.Unmarshal(value, m); err != nil {
		return fmt.Errorf("failed to unmarshal member: %w", err)
	}

	return nil
}

func (m *memberModel) toDomain() *Member {
	if m == nil {
		return nil
	}

	return &Member{
		MemberBase: MemberBase{
			LoginEmail: m.LoginEmail,
			Contact: Contact{
				FirstName: m.FirstName,
				LastName:  m.LastName,
				Phones:    m.Phones,
			},
		},
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m *memberModel) update(base MemberBase) {
	m.FirstName = base.Contact.FirstName
	m.LastName = base.Contact.LastName
	m.Phones = base.Contact.Phones
	m.UpdatedAt = time.Now()
}
