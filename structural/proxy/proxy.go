// Package proxy shows the proxy pattern: a stand-in that implements the same
// interface as the real thing and decides when to actually call it.
//
// The real thing here is a menu Source, expensive to consult (think: parsing
// a document, or a round trip to head office). CachingProxy satisfies Source
// too, answers from memory after the first successful fetch, and takes an
// optional TTL after which it quietly goes back upstream. Callers cannot tell
// the difference, which is the whole point.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNilSource is returned by NewCachingProxy when given nothing to wrap.
var ErrNilSource = errors.New("proxy: nil source")

// Item is one menu entry.
type Item struct {
	Name  string `json:"name"`
	Base  string `json:"base"`
	Cents int    `json:"cents"`
}

// Menu is the document a Source produces.
type Menu struct {
	Updated string `json:"updated"`
	Items   []Item `json:"items"`
}

// clone copies the menu so callers can never reach into the proxy's cache.
func (m *Menu) clone() *Menu {
	if m == nil {
		return nil
	}
	return &Menu{
		Updated: m.Updated,
		Items:   append([]Item(nil), m.Items...),
	}
}

// Source produces the current menu. Implementations may be arbitrarily
// expensive; that is why proxies exist.
type Source interface {
	Fetch(ctx context.Context) (*Menu, error)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(ctx context.Context) (*Menu, error)

// SourceFunc implements Source.
var _ Source = (SourceFunc)(nil)

// Fetch implements Source. It calls f.
func (f SourceFunc) Fetch(ctx context.Context) (*Menu, error) {
	return f(ctx)
}

// now is a seam for the TTL tests.
var now = time.Now

// CachingProxy implements Source by remembering the last successful fetch.
//
// With no TTL the first answer is kept until Invalidate. Failed upstream
// fetches are never cached. Safe for concurrent use.
type CachingProxy struct {
	src Source
	ttl time.Duration // 0 = never expires

	mu        sync.Mutex
	menu      *Menu
	fetchedAt time.Time
	upstream  int
}

// Option customizes a CachingProxy.
type Option func(*CachingProxy)

// WithTTL makes cached answers expire after d. Non-positive d keeps the
// default behavior (cache until Invalidate).
func WithTTL(d time.Duration) Option {
	return func(p *CachingProxy) {
		if d > 0 {
			p.ttl = d
		}
	}
}

// NewCachingProxy wraps src. It returns ErrNilSource when src is nil.
func NewCachingProxy(src Source, opts ...Option) (*CachingProxy, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	p := &CachingProxy{src: src}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Fetch implements Source.
//
// A fresh cached menu is returned as a copy, without touching the upstream.
// Otherwise the upstream is consulted once under the lock, so concurrent
// callers cannot stampede it.
func (p *CachingProxy) Fetch(ctx context.Context) (*Menu, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.menu != nil && !p.expired() {
		return p.menu.clone(), nil
	}

	menu, err := p.src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("proxy: fetch upstream: %w", err)
	}

	p.upstream++
	p.menu = menu.clone()
	p.fetchedAt = now()
	return menu.clone(), nil
}

// expired reports whether the cached menu is past its TTL. Callers hold mu.
func (p *CachingProxy) expired() bool {
	if p.ttl <= 0 {
		return false
	}
	return now().Sub(p.fetchedAt) >= p.ttl
}

// Invalidate drops the cached menu; the next Fetch goes upstream.
func (p *CachingProxy) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.menu = nil
	p.fetchedAt = time.Time{}
}

// Upstream reports how many times the real source has been consulted.
func (p *CachingProxy) Upstream() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.upstream
}
