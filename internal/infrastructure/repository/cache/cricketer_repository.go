package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricviz/internal/domain/cricketer"
	basecache "github.com/riskibarqy/cricviz/internal/platform/cache"
)

const cricketerKeyPrefix = "cricketer:"

// CricketerRepository is a read-through decorator. Every write drops all cricketer keys
// because a single update can move a record in or out of any cached list.
type CricketerRepository struct {
	next  cricketer.Repository
	cache *basecache.Store
}

func NewCricketerRepository(next cricketer.Repository, cache *basecache.Store) *CricketerRepository {
	return &CricketerRepository{next: next, cache: cache}
}

func (r *CricketerRepository) List(ctx context.Context, query cricketer.Query) ([]cricketer.Cricketer, error) {
	v, err := r.cache.GetOrLoad(ctx, cricketerListKey(query), func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, query)
		if err != nil {
			return nil, err
		}
		return cloneCricketers(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]cricketer.Cricketer)
	return cloneCricketers(items), nil
}

func (r *CricketerRepository) GetByName(ctx context.Context, name string) (cricketer.Cricketer, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, cricketerKeyPrefix+"name:"+name, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedCricketerByName{value: item.Clone(), exists: exists}, nil
	})
	if err != nil {
		return cricketer.Cricketer{}, false, err
	}

	cached, _ := v.(cachedCricketerByName)
	return cached.value.Clone(), cached.exists, nil
}

func (r *CricketerRepository) GetByNameForUpdate(ctx context.Context, name string) (cricketer.Cricketer, bool, error) {
	return r.next.GetByNameForUpdate(ctx, name)
}

func (r *CricketerRepository) Count(ctx context.Context) (int, error) {
	v, err := r.cache.GetOrLoad(ctx, cricketerKeyPrefix+"count", func(ctx context.Context) (any, error) {
		count, err := r.next.Count(ctx)
		if err != nil {
			return nil, err
		}
		return count, nil
	})
	if err != nil {
		return 0, err
	}

	count, _ := v.(int)
	return count, nil
}

func (r *CricketerRepository) Create(ctx context.Context, c cricketer.Cricketer) (cricketer.Cricketer, error) {
	created, err := r.next.Create(ctx, c)
	if err != nil {
		return cricketer.Cricketer{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *CricketerRepository) CreateMany(ctx context.Context, items []cricketer.Cricketer) ([]cricketer.Cricketer, error) {
	created, err := r.next.CreateMany(ctx, items)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *CricketerRepository) Update(ctx context.Context, c cricketer.Cricketer) error {
	if err := r.next.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CricketerRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CricketerRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, cricketerKeyPrefix)
}

type cachedCricketerByName struct {
	value  cricketer.Cricketer
	exists bool
}

func cloneCricketers(items []cricketer.Cricketer) []cricketer.Cricketer {
	out := make([]cricketer.Cricketer, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

func cricketerListKey(query cricketer.Query) string {
	var b strings.Builder
	b.WriteString(cricketerKeyPrefix)
	b.WriteString("list:country=")
	for i, country := range query.Countries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(country))
	}
	b.WriteString(":role=")
	for i, role := range query.Roles {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(string(role)))
	}
	b.WriteString(":by_matches=")
	b.WriteString(strconv.FormatBool(query.DescendingByMatches))
	b.WriteString(":limit=")
	b.WriteString(strconv.Itoa(query.Limit))
	return b.String()
}
