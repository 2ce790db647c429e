package collections

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/foodloop/foodloop/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the generic collection service: a uniform access facade over one
// named collection, used identically regardless of entity shape. Adding a
// collection means registering a new entity type; the store itself never
// changes.
type Store[T storage.Entity] struct {
	name string
	repo *storage.Repository[T]

	logger *zap.Logger
}

func NewStore[T storage.Entity](db *badger.DB, name string, factory storage.EntityFactory[T], logger *zap.Logger) *Store[T] {
	return &Store[T]{
		name:   name,
		repo:   storage.NewRepository(db, name, factory),
		logger: logger,
	}
}

// Name reports the collection identifier the store is bound to.
func (s *Store[T]) Name() string {
	return s.name
}

// List fetches every entity currently in the collection.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list collection", zap.String("collection", s.name), zap.Error(err))
		return nil, err
	}

	return items, nil
}

// Get fetches a single entity. A missing entity surfaces as
// storage.ErrNotFound, never as a generic failure.
func (s *Store[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Warn("failed to get entity",
			zap.String("collection", s.name),
			zap.String("id", id.String()),
			zap.Error(err))
		return entity, err
	}

	return entity, nil
}

// Create persists a fully-formed client-constructed entity and returns it
// with store-assigned timestamps. No retry is performed.
func (s *Store[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T

	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("failed to create entity", zap.String("collection", s.name), zap.Error(err))
		return zero, err
	}

	s.logger.Info("entity created",
		zap.String("collection", s.name),
		zap.String("id", entity.Base().ID.String()))

	return entity, nil
}

// Update applies updater inside the store transaction and returns the
// persisted result.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, updater func(T) error) (T, error) {
	entity, err := s.repo.Update(ctx, id, updater)
	if err != nil {
		s.logger.Error("failed to update entity",
			zap.String("collection", s.name),
			zap.String("id", id.String()),
			zap.Error(err))
		return entity, err
	}

	return entity, nil
}

// Delete removes a single entity by identifier.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete entity",
			zap.String("collection", s.name),
			zap.String("id", id.String()),
			zap.Error(err))
		return err
	}

	return nil
}

// Count reports the current collection size.
func (s *Store[T]) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
