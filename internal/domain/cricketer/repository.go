package cricketer

import "context"

// Repository describes cricketer persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, query Query) ([]Cricketer, error)
	// GetByName returns the oldest record with exactly this name.
	GetByName(ctx context.Context, name string) (Cricketer, bool, error)
	// GetByNameForUpdate is GetByName read from the backing store, never from a cache.
	// Read-modify-write callers must use it.
	GetByNameForUpdate(ctx context.Context, name string) (Cricketer, bool, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c Cricketer) (Cricketer, error)
	// CreateMany inserts all records or none of them.
	CreateMany(ctx context.Context, items []Cricketer) ([]Cricketer, error)
	Update(ctx context.Context, c Cricketer) error
	Delete(ctx context.Context, id string) error
}
