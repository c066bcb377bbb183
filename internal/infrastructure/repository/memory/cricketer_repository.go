package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/cricviz/internal/domain/cricketer"
)

// CricketerRepository keeps records in insertion order, which stands in for primary key order.
type CricketerRepository struct {
	mu    sync.RWMutex
	items []cricketer.Cricketer
	now   func() time.Time
}

func NewCricketerRepository(seed ...cricketer.Cricketer) *CricketerRepository {
	r := &CricketerRepository{now: time.Now}
	for _, c := range seed {
		r.items = append(r.items, c.Clone())
	}
	return r
}

func (r *CricketerRepository) List(_ context.Context, query cricketer.Query) ([]cricketer.Cricketer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := query.Apply(r.items)
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out, nil
}

func (r *CricketerRepository) GetByName(_ context.Context, name string) (cricketer.Cricketer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.Name == name {
			return c.Clone(), true, nil
		}
	}
	return cricketer.Cricketer{}, false, nil
}

func (r *CricketerRepository) GetByNameForUpdate(ctx context.Context, name string) (cricketer.Cricketer, bool, error) {
	return r.GetByName(ctx, name)
}

func (r *CricketerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *CricketerRepository) Create(_ context.Context, c cricketer.Cricketer) (cricketer.Cricketer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return cricketer.Cricketer{}, fmt.Errorf("create cricketer %q: id is required", c.Name)
	}
	if r.indexOf(c.ID) >= 0 {
		return cricketer.Cricketer{}, fmt.Errorf("create cricketer %q: duplicate id %s", c.Name, c.ID)
	}

	now := r.now().UTC()
	c = c.Clone()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.items = append(r.items, c)

	return c.Clone(), nil
}

func (r *CricketerRepository) CreateMany(_ context.Context, items []cricketer.Cricketer) ([]cricketer.Cricketer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, c := range items {
		if c.ID == "" {
			return nil, fmt.Errorf("create cricketer %q: id is required", c.Name)
		}
		if _, dup := seen[c.ID]; dup || r.indexOf(c.ID) >= 0 {
			return nil, fmt.Errorf("create cricketer %q: duplicate id %s", c.Name, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	now := r.now().UTC()
	out := make([]cricketer.Cricketer, 0, len(items))
	for _, c := range items {
		c = c.Clone()
		c.CreatedAt = now
		c.UpdatedAt = now
		r.items = append(r.items, c)
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *CricketerRepository) Update(_ context.Context, c cricketer.Cricketer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(c.ID)
	if idx < 0 {
		return &cricketer.NotFoundError{Name: c.Name}
	}

	c = c.Clone()
	c.CreatedAt = r.items[idx].CreatedAt
	c.UpdatedAt = r.now().UTC()
	r.items[idx] = c
	return nil
}

func (r *CricketerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	return nil
}

func (r *CricketerRepository) indexOf(id string) int {
	for i, c := range r.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}
