package orchestrator

import (
	"github.com/griffnb/core-resolve/internal/domain"
	"github.com/griffnb/core-resolve/internal/resolver"
	lru "github.com/hashicorp/golang-lru/v2"
)

// flattenCache memoizes flattened field sets per object type. The resolver
// itself stays stateless; caching only happens here, where many emit calls
// revisit the same shapes of a frozen graph. Keys are type identities, which
// is sound because the graph is immutable for the duration of a batch.
type flattenCache struct {
	cache *lru.Cache[*domain.ObjectType, *domain.FieldMap]
}

func newFlattenCache(size int) (*flattenCache, error) {
	cache, err := lru.New[*domain.ObjectType, *domain.FieldMap](size)
	if err != nil {
		return nil, err
	}
	return &flattenCache{cache: cache}, nil
}

// Flatten returns the memoized field set, computing and storing it on miss.
func (c *flattenCache) Flatten(model *domain.ObjectType) (*domain.FieldMap, error) {
	if fields, ok := c.cache.Get(model); ok {
		return fields, nil
	}

	fields, err := resolver.Flatten(model)
	if err != nil {
		return nil, err
	}

	c.cache.Add(model, fields)
	return fields, nil
}
