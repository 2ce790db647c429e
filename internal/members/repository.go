package members

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Repository stores members in BadgerDB with a login-email index.
type Repository struct {
	db *badger.DB
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a member by identifier.
func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*Member, error) {
	var member *memberModel
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		member, err = r.get(txn, id)
		return err
	})

	if err != nil {
		return nil, err
	}

	return member.toDomain(), nil
}

// GetByEmail retrieves a member through the login-email index.
func (r *Repository) GetByEmail(_ context.Context, email string) (*Member, error) {
	var member *memberModel
	key := []byte("member:email:" + email)

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("failed to get member index: %w", err)
		}

		id := uuid.UUID{}
		if valErr := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &id)
		}); valErr != nil {
			return fmt.Errorf("failed to unmarshal member ID: %w", valErr)
		}

		member, err = r.get(txn, id)
		return err
	})

	if err != nil {
		return nil, err
	}

	return member.toDomain(), nil
}

// GetPasswordHash retrieves the stored password hash for a login email.
func (r *Repository) GetPasswordHash(_ context.Context, email string) (string, error) {
	var hash string
	key := []byte("member:email:" + email)

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("failed to get member index: %w", err)
		}

		id := uuid.UUID{}
		if valErr := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &id)
		}); valErr != nil {
			return fmt.Errorf("failed to unmarshal member ID: %w", valErr)
		}

		model, err := r.get(txn, id)
		if err != nil {
			return err
		}

		hash = model.PasswordHash
		return nil
	})

	if err != nil {
		return "", err
	}

	return hash, nil
}

// Create stores a new member. A duplicate login email yields ErrDuplicateMember.
func (r *Repository) Create(_ context.Context, draft MemberDraft, passwordHash string) (*Member, error) {
	model := newMemberModel(draft, passwordHash)

	err := r.db.Update(func(txn *badger.Txn) error {
		indexKey := []byte("member:email:" + model.LoginEmail)
		if _, getErr := txn.Get(indexKey); getErr == nil {
			return ErrDuplicateMember
		} else if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check email uniqueness: %w", getErr)
		}

		return r.write(txn, model)
	})

	if err != nil {
		return nil, err
	}

	return model.toDomain(), nil
}

// Update applies updater to a member's profile fields.
func (r *Repository) Update(_ context.Context, id uuid.UUID, updater func(*Member) error) (*Member, error) {
	var updated *Member

	err := r.db.Update(func(txn *badger.Txn) error {
		model, err := r.get(txn, id)
		if err != nil {
			return err
		}

		member := model.toDomain()
		if updErr := updater(member); updErr != nil {
			return updErr
		}

		// Login email is the index key and stays immutable.
		member.LoginEmail = model.LoginEmail
		model.update(member.MemberBase)

		if wrErr := r.write(txn, model); wrErr != nil {
			return wrErr
		}

		updated = model.toDomain()
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repository) get(txn *badger.Txn, id uuid.UUID) (*memberModel, error) {
	key := []byte("member:" + id.String())
	item, err := txn.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	member := new(memberModel)
	if valErr := item.Value(func(val []byte) error {
		return member.FromBadgerValue(val)
	}); valErr != nil {
		return nil, fmt.Errorf("failed to unmarshal member: %w", valErr)
	}

	return member, nil
}

func (r *Repository) write(txn *badger.Txn, model *memberModel) error {
	data, err := model.ToBadgerValue()
	if err != nil {
		return err
	}

	if setErr := txn.Set(model.ToBadgerKey(), data); setErr != nil {
		return fmt.Errorf("failed to store member: %w", setErr)
	}

	for _, index := range model.indexes() {
		idData, err := json.Marshal(model.ID)
		if err != nil {
			return fmt.Errorf("failed to marshal member ID: %w", err)
		}
		if setErr := txn.Set([]byte(index), idData); setErr != nil {
			return fmt.Errorf("failed to set member index: %w", setErr)
		}
	}

	return nil
}
