// Package singleton shows the singleton pattern in its honest Go form:
// a package-level instance materialized once via sync.Once, reachable with a
// Default accessor, next to a plain constructor for callers (and tests) that
// would rather not share.
//
// The pizzeria owns exactly one deck oven. Everyone bakes in it, so the oven
// itself has to be safe for concurrent use; the singleton machinery only
// guarantees there is one of it.
package singleton

import "sync"

// Oven bakes pizzas and hands out strictly increasing receipt numbers.
// Safe for concurrent use.
type Oven struct {
	mu    sync.Mutex
	bakes int
	last  string
}

var (
	defaultOnce sync.Once
	defaultOven *Oven
)

// Default returns the process-wide oven. Every call, from any goroutine,
// returns the same instance.
func Default() *Oven {
	defaultOnce.Do(func() {
		defaultOven = New()
	})
	return defaultOven
}

// New builds an isolated oven. Use it in tests and in composition roots that
// refuse package-level state; use Default everywhere the point is sharing.
func New() *Oven {
	return &Oven{}
}

// Bake runs one pizza through the oven and returns its receipt number
// (1-based, strictly increasing per oven).
func (o *Oven) Bake(name string) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.bakes++
	o.last = name
	return o.bakes
}

// Bakes reports how many pizzas this oven has baked.
func (o *Oven) Bakes() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.bakes
}

// Last returns the name passed to the most recent Bake, and false if the oven
// is still cold.
func (o *Oven) Last() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.last, o.bakes > 0
}
