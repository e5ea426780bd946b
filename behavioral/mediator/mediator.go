// Package mediator shows the mediator pattern: colleagues that never talk to
// each other directly, only through a hub that knows who is where.
//
// The hub here is the shop's Dispatcher. The counter, the kitchen and the
// delivery desk register as stations; a note from one to another always goes
// through the dispatcher, so no station holds a reference to any other.
package mediator

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"
)

var (
	// ErrNilStation is returned by Register when given nothing to register.
	ErrNilStation = errors.New("mediator: nil station")

	// ErrNoName is returned by Register for a station with an empty name.
	ErrNoName = errors.New("mediator: station has no name")
)

// DuplicateStationError is returned by Register when the name is taken.
type DuplicateStationError struct {
	Name string
}

// Error implements the error interface.
func (e DuplicateStationError) Error() string {
	return fmt.Sprintf("mediator: station %s already registered", strconv.Quote(e.Name))
}

// UnknownStationError is returned by Send for a sender or recipient the
// dispatcher has never heard of.
type UnknownStationError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownStationError) Error() string {
	return fmt.Sprintf("mediator: unknown station %s", strconv.Quote(e.Name))
}

// Station is a colleague. Stations are addressed by Name and hear notes
// through Receive; they never see each other.
type Station interface {
	Name() string
	Receive(from, note string)
}

// Dispatcher routes notes between registered stations. Safe for concurrent
// use.
type Dispatcher struct {
	log *slog.Logger

	mu       sync.RWMutex
	stations map[string]Station
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithLogger makes the dispatcher log each delivery at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// NewDispatcher returns a dispatcher with no stations.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{stations: make(map[string]Station)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds s under its own name. It returns ErrNilStation for a nil
// station, ErrNoName for an empty name and DuplicateStationError when the
// name is already taken.
func (d *Dispatcher) Register(s Station) error {
	if s == nil {
		return ErrNilStation
	}
	name := s.Name()
	if name == "" {
		return ErrNoName
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.stations[name]; ok {
		return DuplicateStationError{Name: name}
	}
	d.stations[name] = s
	return nil
}

// Stations returns the registered names in sorted order.
func (d *Dispatcher) Stations() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.stations))
	for name := range d.stations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Send delivers a note from one station to another. Both ends must be
// registered; otherwise Send returns an UnknownStationError naming the
// missing one.
func (d *Dispatcher) Send(from, to, note string) error {
	d.mu.RLock()
	_, fromKnown := d.stations[from]
	target, toKnown := d.stations[to]
	d.mu.RUnlock()

	if !fromKnown {
		return UnknownStationError{Name: from}
	}
	if !toKnown {
		return UnknownStationError{Name: to}
	}

	if d.log != nil {
		d.log.Debug("deliver", "from", from, "to", to)
	}
	target.Receive(from, note)
	return nil
}

// Broadcast delivers a note from one station to every other station, in
// sorted name order. The sender does not hear its own note.
func (d *Dispatcher) Broadcast(from, note string) error {
	d.mu.RLock()
	if _, ok := d.stations[from]; !ok {
		d.mu.RUnlock()
		return UnknownStationError{Name: from}
	}
	targets := make([]Station, 0, len(d.stations))
	for name, s := range d.stations {
		if name != from {
			targets = append(targets, s)
		}
	}
	d.mu.RUnlock()

	sort.Slice(targets, func(i, j int) bool { return targets[i].Name() < targets[j].Name() })

	if d.log != nil {
		d.log.Debug("broadcast", "from", from, "stations", len(targets))
	}
	for _, target := range targets {
		target.Receive(from, note)
	}
	return nil
}
