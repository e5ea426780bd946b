// Package prototype shows the prototype pattern: new values start life as
// copies of a registered exemplar, then get customized, and the copy never
// aliases the original.
//
// The pizzeria's menu presets ("margherita", "diavola") are the prototypes.
// Every order clones its preset, so one customer's "margherita, extra basil"
// cannot leak basil onto the menu or onto anyone else's pizza.
package prototype

import (
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNilPreset is returned when a nil preset is registered.
	ErrNilPreset = errors.New("prototype: nil preset")

	// ErrNoName is returned when a preset with an empty name is registered.
	ErrNoName = errors.New("prototype: preset name is empty")
)

// DuplicatePresetError is returned when a preset name is registered twice.
type DuplicatePresetError struct{ Name string }

// Error implements the error interface.
func (e DuplicatePresetError) Error() string {
	return "prototype: duplicate preset " + strconv.Quote(e.Name)
}

// UnknownPresetError is returned when no preset exists under the name.
type UnknownPresetError struct{ Name string }

// Error implements the error interface.
func (e UnknownPresetError) Error() string {
	return "prototype: unknown preset " + strconv.Quote(e.Name)
}

// Preset is a menu entry used as a prototype.
//
// ID identifies this particular instance, not the recipe: clones always get a
// fresh ID so two pizzas derived from the same preset stay distinguishable.
// Toppings and Notes belong to the instance and are deep-copied by Clone.
type Preset struct {
	ID       string
	Name     string
	Base     string
	Toppings []string
	Notes    map[string]string
}

// NewPreset builds a preset with a fresh ID and its own topping slice.
func NewPreset(name, base string, toppings ...string) *Preset {
	return &Preset{
		ID:       uuid.NewString(),
		Name:     name,
		Base:     base,
		Toppings: append([]string(nil), toppings...),
		Notes:    make(map[string]string),
	}
}

// Clone returns a copy of the preset with a fresh ID.
//
// Toppings and Notes are copied into new storage so mutating the clone never
// touches the original. Cloning a nil preset yields nil.
func (p *Preset) Clone() *Preset {
	if p == nil {
		return nil
	}
	cp := &Preset{
		ID:       uuid.NewString(),
		Name:     p.Name,
		Base:     p.Base,
		Toppings: append([]string(nil), p.Toppings...),
	}
	if len(p.Notes) > 0 {
		cp.Notes = make(map[string]string, len(p.Notes))
		for k, v := range p.Notes {
			cp.Notes[k] = v
		}
	} else {
		cp.Notes = make(map[string]string)
	}
	return cp
}

// WithTopping appends a topping and returns the same preset for chaining.
// Meant for customizing clones; calling it on a registered original is how
// menus get ruined.
func (p *Preset) WithTopping(topping string) *Preset {
	p.Toppings = append(p.Toppings, topping)
	return p
}

// WithNote records a kitchen annotation and returns the same preset for
// chaining.
func (p *Preset) WithNote(key, value string) *Preset {
	if p.Notes == nil {
		p.Notes = make(map[string]string)
	}
	p.Notes[key] = value
	return p
}

// Catalog holds the menu's prototypes and serves per-order copies.
// Safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	presets map[string]*Preset
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{presets: make(map[string]*Preset)}
}

// Register stores a preset under its name.
//
// It returns ErrNilPreset for nil input, ErrNoName for a blank name, and
// DuplicatePresetError when the name is already taken. The catalog keeps its
// own clone, so later mutation of the argument does not reach the menu.
func (c *Catalog) Register(p *Preset) error {
	if p == nil {
		return ErrNilPreset
	}
	if p.Name == "" {
		return ErrNoName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.presets[p.Name]; exists {
		return DuplicatePresetError{Name: p.Name}
	}
	c.presets[p.Name] = p.Clone()
	return nil
}

// Get returns a fresh clone of the named preset, or UnknownPresetError.
// Every call yields an independent copy.
func (c *Catalog) Get(name string) (*Preset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.presets[name]
	if !ok {
		return nil, UnknownPresetError{Name: name}
	}
	return p.Clone(), nil
}

// Names lists the registered preset names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.presets))
	for name := range c.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
