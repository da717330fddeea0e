package harmonic

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 128

// Cache memoizes solves by request. It is safe for concurrent use.
type Cache struct {
	solver  Solver
	entries *lru.Cache[Request, Params]
}

func NewCache(size int, solver Solver) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[Request, Params](size)
	if err != nil {
		return nil, err
	}
	return &Cache{solver: solver, entries: entries}, nil
}

func (c *Cache) Solve(wobbles, overshoot float64) (Params, error) {
	key := Request{Wobbles: wobbles, Overshoot: overshoot}
	if p, ok := c.entries.Get(key); ok {
		return p, nil
	}
	p, err := c.solver.Solve(wobbles, overshoot)
	if err != nil {
		return Params{}, err
	}
	c.entries.Add(key, p)
	return p, nil
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) Purge() {
	c.entries.Purge()
}
