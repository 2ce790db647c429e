package storage

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides the common fields shared by every collection entity.
// The identifier is unique within its collection and immutable after creation;
// timestamps are assigned by the store when the entity is persisted.
type BaseEntity struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Base exposes the embedded system fields to the generic repository.
func (b *BaseEntity) Base() *BaseEntity {
	return b
}

// Entity is satisfied by any pointer-to-struct embedding BaseEntity.
type Entity interface {
	Base() *BaseEntity
}
