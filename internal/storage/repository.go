package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type EntityFactory[T Entity] func() T

// Repository is a generic Badger-backed repository for one named collection.
// Entities are stored as JSON under "<collection>:id:<uuid>" keys; all
// operations run inside Badger transactions.
type Repository[T Entity] struct {
	db      *badger.DB
	prefix  string
	factory EntityFactory[T]
}

func NewRepository[T Entity](db *badger.DB, collection string, factory EntityFactory[T]) *Repository[T] {
	return &Repository[T]{
		db:      db,
		prefix:  collection + ":id:",
		factory: factory,
	}
}

// List retrieves every entity in the collection. An empty collection yields
// an empty slice, not an error.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list aborted: %w", err)
	}

	entities := []T{}

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(r.prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			entity := r.factory()
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, entity)
			}); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}

			entities = append(entities, entity)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	return entities, nil
}

// Get retrieves a single entity by its identifier. A missing entity surfaces
// as ErrNotFound, distinct from any storage failure.
func (r *Repository[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("get aborted: %w", err)
	}

	var entity T
	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.get(txn, id)
		if err == nil {
			entity = found
		}

		return err
	})

	if err != nil {
		return zero, err
	}

	return entity, nil
}

// Create persists a client-constructed entity. A caller-supplied identifier is
// kept as-is; when absent, a fresh UUID is minted. Timestamps are always
// store-assigned. Reusing an existing identifier yields ErrConflict.
func (r *Repository[T]) Create(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("create aborted: %w", err)
	}

	base := entity.Base()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}

	now := time.Now()
	base.CreatedAt = now
	base.UpdatedAt = now

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		key := r.key(base.ID)
		if _, getErr := txn.Get(key); getErr == nil {
			return fmt.Errorf("%w: %s", ErrConflict, base.ID.String())
		} else if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check identifier uniqueness: %w", getErr)
		}

		if setErr := txn.Set(key, data); setErr != nil {
			return fmt.Errorf("failed to store entity: %w", setErr)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// Update applies updater to the current entity state and persists the result.
// The identifier and creation timestamp are immutable; UpdatedAt is bumped.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, updater func(T) error) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("update aborted: %w", err)
	}

	var updated T
	err := r.db.Update(func(txn *badger.Txn) error {
		entity, err := r.get(txn, id)
		if err != nil {
			return err
		}

		old := *entity.Base()

		if updErr := updater(entity); updErr != nil {
			return updErr
		}

		base := entity.Base()
		base.ID = old.ID
		base.CreatedAt = old.CreatedAt
		base.UpdatedAt = time.Now()

		data, err := json.Marshal(entity)
		if err != nil {
			return fmt.Errorf("failed to marshal entity: %w", err)
		}

		if setErr := txn.Set(r.key(id), data); setErr != nil {
			return fmt.Errorf("failed to update entity: %w", setErr)
		}

		updated = entity
		return nil
	})

	if err != nil {
		return zero, err
	}

	return updated, nil
}

// Delete removes an entity. Deleting a missing entity yields ErrNotFound.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete aborted: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := r.get(txn, id); err != nil {
			return err
		}

		if delErr := txn.Delete(r.key(id)); delErr != nil {
			return fmt.Errorf("failed to delete entity: %w", delErr)
		}

		return nil
	})
}

// Count reports the number of entities currently in the collection.
func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("count aborted: %w", err)
	}

	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(r.prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}

	return count, nil
}

func (r *Repository[T]) get(txn *badger.Txn, id uuid.UUID) (T, error) {
	var zero T

	item, err := txn.Get(r.key(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id.String())
	}
	if err != nil {
		return zero, fmt.Errorf("failed to get entity: %w", err)
	}

	entity := r.factory()
	if valErr := item.Value(func(val []byte) error {
		return json.Unmarshal(val, entity)
	}); valErr != nil {
		return zero, fmt.Errorf("failed to unmarshal entity: %w", valErr)
	}

	return entity, nil
}

func (r *Repository[T]) key(id uuid.UUID) []byte {
	return []byte(r.prefix + id.String())
}
