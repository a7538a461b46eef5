package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/remcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all. Misses dominate event volume
	// on cold builds, so sample those aggressively.
	MissEvery     uint64
	SelfHealEvery uint64
	// Optional key shortener. Defaults to the first 16 hex chars of the
	// storage key (keys are already fingerprints, nothing secret in them).
	Shorten func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	missCtr     atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ remcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) short(k string) string {
	if h.opts.Shorten != nil {
		return h.opts.Shorten(k)
	}
	if len(k) > 16 {
		return k[:16]
	}
	return k
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Miss(storageKey string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("remcache.miss",
		"key", h.short(storageKey))
}

func (h *Hooks) ProtocolFault(storageKey string, statusCode int) {
	if h.l == nil {
		return
	}
	h.l.Warn("remcache.protocol_fault",
		"key", h.short(storageKey),
		"status", statusCode)
}

func (h *Hooks) TransportFault(storageKey string, code string) {
	if h.l == nil {
		return
	}
	h.l.Warn("remcache.transport_fault",
		"key", h.short(storageKey),
		"code", code)
}

func (h *Hooks) DecodeFault(storageKey string, reason string) {
	if h.l == nil {
		return
	}
	h.l.Error("remcache.decode_fault",
		"key", h.short(storageKey),
		"reason", reason)
}

func (h *Hooks) WriteStatusIgnored(storageKey string, statusCode int) {
	if h.l == nil {
		return
	}
	h.l.Info("remcache.write_status_ignored",
		"key", h.short(storageKey),
		"status", statusCode)
}

func (h *Hooks) FrontSelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("remcache.front_self_heal",
		"key", h.short(storageKey),
		"reason", reason)
}

func (h *Hooks) FrontSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("remcache.front_set_rejected",
		"key", h.short(storageKey))
}
