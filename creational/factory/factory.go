// Package factory shows the factory pattern: callers ask for an Oven by kind
// and get a concrete implementation behind an interface, never touching the
// concrete type names.
//
// Construction knowledge lives in a Registry of constructor functions. The
// package ships a registry pre-loaded with the stock kinds and exposes it via
// package-level New/MustNew/Register, the way database/sql registers drivers.
package factory

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Stock oven kinds, registered out of the box.
const (
	KindWoodFired = "wood-fired"
	KindElectric  = "electric"
	KindConveyor  = "conveyor"
)

var (
	// ErrNoKind is returned when an empty kind is registered.
	ErrNoKind = errors.New("factory: oven kind is empty")

	// ErrNilConstructor is returned when a nil constructor is registered.
	ErrNilConstructor = errors.New("factory: nil constructor")

	// ErrConstructorPanic is returned when a registered constructor panics.
	// New converts the panic into an error so a misbehaving registration
	// cannot take the caller down.
	ErrConstructorPanic = errors.New("factory: constructor panicked")
)

// DuplicateKindError is returned when a kind is registered twice.
type DuplicateKindError struct{ Kind string }

// Error implements the error interface.
func (e DuplicateKindError) Error() string {
	return "factory: duplicate oven kind " + strconv.Quote(e.Kind)
}

// UnknownKindError is returned when no constructor exists for the kind.
type UnknownKindError struct{ Kind string }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	return "factory: unknown oven kind " + strconv.Quote(e.Kind)
}

// Oven is what every factory-made oven can do. Callers depend on this
// interface only; the concrete type is the factory's business.
type Oven interface {
	// Kind names the construction style the oven was built as.
	Kind() string

	// Bake describes putting one pizza through this oven.
	Bake(pizza string) string
}

// WoodFired bakes hot and fast over oak.
type WoodFired struct{}

// Kind implements Oven.
func (WoodFired) Kind() string { return KindWoodFired }

// Bake implements Oven.
func (WoodFired) Bake(pizza string) string {
	return pizza + ": 90 seconds over oak at 450°C"
}

// Electric bakes on stone at a steady temperature.
type Electric struct{}

// Kind implements Oven.
func (Electric) Kind() string { return KindElectric }

// Bake implements Oven.
func (Electric) Bake(pizza string) string {
	return pizza + ": 4 minutes on stone at 300°C"
}

// Conveyor bakes on a moving belt, the same every time.
type Conveyor struct{}

// Kind implements Oven.
func (Conveyor) Kind() string { return KindConveyor }

// Bake implements Oven.
func (Conveyor) Bake(pizza string) string {
	return pizza + ": 6 minutes through the belt at 260°C"
}

// Func constructs an oven. Constructors should not panic; if one does, New
// reports ErrConstructorPanic instead of crashing.
type Func func() Oven

// Registry maps oven kinds to constructors. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry returns an empty registry. Most callers want the package-level
// functions instead, which use a registry pre-loaded with the stock kinds.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register stores a constructor under a kind.
//
// It returns ErrNoKind for a blank kind, ErrNilConstructor for a nil
// constructor, and DuplicateKindError when the kind is already taken.
func (r *Registry) Register(kind string, fn Func) error {
	if kind == "" {
		return ErrNoKind
	}
	if fn == nil {
		return ErrNilConstructor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[kind]; exists {
		return DuplicateKindError{Kind: kind}
	}
	r.funcs[kind] = fn
	return nil
}

// New builds an oven of the given kind.
//
// It returns UnknownKindError for unregistered kinds and converts constructor
// panics into ErrConstructorPanic-wrapped errors.
func (r *Registry) New(kind string) (oven Oven, err error) {
	r.mu.RLock()
	fn, ok := r.funcs[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, UnknownKindError{Kind: kind}
	}

	defer func() {
		if rec := recover(); rec != nil {
			oven = nil
			err = fmt.Errorf("%w: %v", ErrConstructorPanic, rec)
		}
	}()

	return fn(), nil
}

// MustNew builds an oven or panics with a helpful message.
// Useful in examples/tests where a missing kind should fail fast.
func (r *Registry) MustNew(kind string) Oven {
	oven, err := r.New(kind)
	if err != nil {
		panic(fmt.Errorf("factory: MustNew(%q): %w", kind, err))
	}
	return oven
}

// Kinds lists the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.funcs))
	for kind := range r.funcs {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// defaultRegistry backs the package-level functions.
var defaultRegistry = stockRegistry()

// stockRegistry builds a registry holding the stock kinds. Registration of
// the stock kinds cannot fail: the names are distinct and non-empty.
func stockRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(KindWoodFired, func() Oven { return WoodFired{} })
	_ = r.Register(KindElectric, func() Oven { return Electric{} })
	_ = r.Register(KindConveyor, func() Oven { return Conveyor{} })
	return r
}

// New builds an oven of the given kind from the package registry.
func New(kind string) (Oven, error) { return defaultRegistry.New(kind) }

// MustNew builds an oven from the package registry or panics.
func MustNew(kind string) Oven { return defaultRegistry.MustNew(kind) }

// Register extends the package registry with a custom kind.
func Register(kind string, fn Func) error { return defaultRegistry.Register(kind, fn) }

// Kinds lists the package registry's kinds in sorted order.
func Kinds() []string { return defaultRegistry.Kinds() }
