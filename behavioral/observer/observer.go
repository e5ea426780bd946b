// Package observer shows the observer pattern: a subject that tells an
// open-ended set of listeners about events as they happen, without knowing
// who they are.
//
// The subject here is the kitchen Bell. The counter, the delivery desk and
// anyone else interested subscribe to it; when an order changes status the
// bell rings once and every current subscriber hears about it, in the order
// they subscribed.
package observer

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ErrNilObserver is returned by Subscribe when given nothing to notify.
var ErrNilObserver = errors.New("observer: nil observer")

// Event is one order status announcement.
type Event struct {
	Order  string
	Status string
}

// Observer receives events from a Bell it subscribed to.
type Observer interface {
	Notify(e Event)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(e Event)

// ObserverFunc implements Observer.
var _ Observer = (ObserverFunc)(nil)

// Notify implements Observer. It calls f.
func (f ObserverFunc) Notify(e Event) {
	f(e)
}

// subscription pairs an observer with the token that removes it.
type subscription struct {
	token    string
	observer Observer
}

// Bell is the subject. Subscribers are notified synchronously, in
// subscription order. Safe for concurrent use.
type Bell struct {
	log *slog.Logger

	mu   sync.RWMutex
	subs []subscription
}

// Option customizes a Bell.
type Option func(*Bell)

// WithLogger makes the bell log each ring at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bell) {
		b.log = log
	}
}

// NewBell returns a bell with no subscribers.
func NewBell(opts ...Option) *Bell {
	b := &Bell{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers o and returns the token that unsubscribes it. It
// returns ErrNilObserver when o is nil.
func (b *Bell) Subscribe(o Observer) (string, error) {
	if o == nil {
		return "", ErrNilObserver
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	token := uuid.NewString()
	b.subs = append(b.subs, subscription{token: token, observer: o})
	return token, nil
}

// Unsubscribe removes the subscription behind token. It reports whether a
// subscription was actually removed; a second call with the same token is a
// harmless no-op.
func (b *Bell) Unsubscribe(token string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.token == token {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Subscribers reports how many observers are currently subscribed.
func (b *Bell) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Ring publishes e to every subscriber, synchronously and in subscription
// order. Subscriptions added or removed while a ring is in flight take
// effect from the next ring on.
func (b *Bell) Ring(e Event) {
	b.mu.RLock()
	subs := append([]subscription(nil), b.subs...)
	b.mu.RUnlock()

	if b.log != nil {
		b.log.Debug("ring", "order", e.Order, "status", e.Status, "subscribers", len(subs))
	}

	for _, sub := range subs {
		sub.observer.Notify(e)
	}
}
