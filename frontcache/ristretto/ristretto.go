// Package ristretto adapts dgraph-io/ristretto as a cost-aware Frontcache.
// The store passes entry size as cost, so MaxCost bounds resident bytes.
package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	fc "github.com/unkn0wn-root/remcache/frontcache"
)

type Frontcache struct {
	c *rc.Cache
}

var _ fc.Frontcache = (*Frontcache)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Frontcache, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Frontcache{c: c}, nil
}

func (p *Frontcache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (p *Frontcache) Set(_ context.Context, key string, value []byte, cost int64) (bool, error) {
	// ok==false means the admission policy refused the entry under pressure.
	return p.c.Set(key, value, cost), nil
}

func (p *Frontcache) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Frontcache) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto's counters (not part of frontcache.Frontcache).
func (p *Frontcache) Metrics() *rc.Metrics { return p.c.Metrics }
