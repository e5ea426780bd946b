package builder

import (
	"errors"
	"strings"
)

// ErrNoBase is returned by New when the base description is empty or blank.
// A pizza without a base is not a pizza.
var ErrNoBase = errors.New("builder: missing required base")

// Pizza is assembled incrementally: a fixed base plus optional toppings.
//
// All fields are unexported so the construction protocol is the only way to
// change one: the base is set by New and never again, and each topping moves
// unset→set exactly once, through its Add method.
//
// A Pizza is exclusively owned by the caller building it and is not safe for
// concurrent mutation.
type Pizza struct {
	base        string
	pepperoni   bool
	mushrooms   bool
	extraCheese bool
}

// New starts a pizza from its required base ("gluten free", "sourdough", ...).
//
// The base cannot be altered afterwards. All toppings start unset.
// The only error condition is a blank base (ErrNoBase).
func New(base string) (*Pizza, error) {
	if strings.TrimSpace(base) == "" {
		return nil, ErrNoBase
	}
	return &Pizza{base: base}, nil
}

// MustNew is New for examples and tests: it panics on a blank base so the
// construction chain can start inline.
func MustNew(base string) *Pizza {
	p, err := New(base)
	if err != nil {
		panic(err)
	}
	return p
}

// AddPepperoni sets the pepperoni topping and returns the same pizza so the
// next call can chain. Adding it again is harmless.
func (p *Pizza) AddPepperoni() *Pizza {
	p.pepperoni = true
	return p
}

// AddMushrooms sets the mushroom topping and returns the same pizza so the
// next call can chain. Adding it again is harmless.
func (p *Pizza) AddMushrooms() *Pizza {
	p.mushrooms = true
	return p
}

// AddExtraCheese sets the extra-cheese topping and returns the same pizza so
// the next call can chain. Adding it again is harmless.
func (p *Pizza) AddExtraCheese() *Pizza {
	p.extraCheese = true
	return p
}

// Base returns the base the pizza was created with.
func (p *Pizza) Base() string { return p.base }

// HasPepperoni reports whether pepperoni was added.
func (p *Pizza) HasPepperoni() bool { return p.pepperoni }

// HasMushrooms reports whether mushrooms were added.
func (p *Pizza) HasMushrooms() bool { return p.mushrooms }

// HasExtraCheese reports whether extra cheese was added.
func (p *Pizza) HasExtraCheese() bool { return p.extraCheese }

// Toppings lists the chosen toppings in menu order (pepperoni, mushrooms,
// extra cheese), regardless of the order the Add calls were made in.
func (p *Pizza) Toppings() []string {
	var ts []string
	if p.pepperoni {
		ts = append(ts, "pepperoni")
	}
	if p.mushrooms {
		ts = append(ts, "mushrooms")
	}
	if p.extraCheese {
		ts = append(ts, "extra cheese")
	}
	return ts
}

// String renders the order line a human would read back:
//
//	gluten free pizza + pepperoni + mushrooms
//
// A pizza with no toppings reads "<base> pizza, plain".
func (p *Pizza) String() string {
	ts := p.Toppings()
	if len(ts) == 0 {
		return p.base + " pizza, plain"
	}
	return p.base + " pizza + " + strings.Join(ts, " + ")
}
