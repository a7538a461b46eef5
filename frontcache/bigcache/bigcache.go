// Package bigcache adapts allegro/bigcache as a Frontcache. BigCache has no
// per-entry TTL; entries age out through the global LifeWindow, which is a
// good fit for fingerprint-addressed entries that never change.
package bigcache

import (
	"context"
	"time"

	bc "github.com/allegro/bigcache/v3"

	fc "github.com/unkn0wn-root/remcache/frontcache"
)

type Frontcache struct {
	c *bc.BigCache
}

var _ fc.Frontcache = (*Frontcache)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Frontcache, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Frontcache{c: c}, nil
}

func (p *Frontcache) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := p.c.Get(key)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (p *Frontcache) Set(_ context.Context, key string, value []byte, _ int64) (bool, error) {
	// cost is ignored; BigCache is window/size based.
	return true, p.c.Set(key, value)
}

func (p *Frontcache) Del(_ context.Context, key string) error {
	return p.c.Delete(key)
}

func (p *Frontcache) Close(_ context.Context) error {
	return p.c.Close()
}
