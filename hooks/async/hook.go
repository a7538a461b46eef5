// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/remcache"
//	asynchook "github.com/unkn0wn-root/remcache/hooks/async"
//	"github.com/unkn0wn-root/remcache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    MissEvery: 100, // sample logs: ~every 100th miss
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	store, _ := remcache.New[Artifact](remcache.Options[Artifact]{
//	    Endpoint: "https://cache.internal:8080/v1/artifacts",
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/remcache"
)

type Hooks struct {
	inner remcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ remcache.Hooks = (*Hooks)(nil)

func New(inner remcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Miss(k string)              { h.try(func() { h.inner.Miss(k) }) }
func (h *Hooks) FrontSetRejected(k string)  { h.try(func() { h.inner.FrontSetRejected(k) }) }
func (h *Hooks) FrontSelfHeal(k, r string)  { h.try(func() { h.inner.FrontSelfHeal(k, r) }) }
func (h *Hooks) DecodeFault(k, r string)    { h.try(func() { h.inner.DecodeFault(k, r) }) }
func (h *Hooks) TransportFault(k, c string) { h.try(func() { h.inner.TransportFault(k, c) }) }
func (h *Hooks) ProtocolFault(k string, status int) {
	h.try(func() { h.inner.ProtocolFault(k, status) })
}
func (h *Hooks) WriteStatusIgnored(k string, status int) {
	h.try(func() { h.inner.WriteStatusIgnored(k, status) })
}
