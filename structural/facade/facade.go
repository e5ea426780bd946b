package facade

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

var (
	// ErrNoCustomer is returned when an order names no customer.
	ErrNoCustomer = errors.New("facade: order has no customer")

	// ErrNoPizza is returned when an order names no pizza.
	ErrNoPizza = errors.New("facade: order has no pizza")

	// ErrOutOfStock is returned by Inventory implementations when the
	// ingredients for a pizza have run out.
	ErrOutOfStock = errors.New("facade: out of stock")
)

// NotWiredError is returned by NewCounter when a required subsystem is nil.
type NotWiredError struct{ Subsystem string }

// Error implements the error interface.
func (e NotWiredError) Error() string {
	return "facade: counter not wired: missing " + e.Subsystem
}

// DeclinedError is returned by Payments implementations when a charge is
// refused.
type DeclinedError struct {
	Customer string
	Cents    int
}

// Error implements the error interface.
func (e DeclinedError) Error() string {
	return "facade: payment declined for " + strconv.Quote(e.Customer) +
		" (" + strconv.Itoa(e.Cents) + " cents)"
}

// Inventory is the stock subsystem.
type Inventory interface {
	// Reserve takes one pizza's ingredients out of stock, or reports
	// ErrOutOfStock.
	Reserve(pizza string) error

	// Release puts one pizza's ingredients back, undoing a Reserve.
	Release(pizza string)
}

// Payments is the charging subsystem.
type Payments interface {
	// Charge captures the amount and returns a receipt reference.
	Charge(customer string, cents int) (receipt string, err error)
}

// Kitchen is the preparation subsystem.
type Kitchen interface {
	// Queue accepts a pizza for preparation and returns its ticket number.
	Queue(pizza string) (ticket int)
}

// Order is everything the counter needs to place one.
type Order struct {
	Customer string
	Pizza    string
	Cents    int
}

// Confirmation is the single result of a successfully placed order.
type Confirmation struct {
	Ticket  int
	Receipt string
}

// Counter is the facade. One PlaceOrder call instead of the
// reserve/charge/queue dance, with the unwinding handled inside.
type Counter struct {
	inventory Inventory
	payments  Payments
	kitchen   Kitchen
	log       *slog.Logger // optional
}

// Option customizes a Counter.
type Option func(*Counter)

// WithLogger attaches a logger for per-step diagnostics. Without it the
// counter stays silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *Counter) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCounter wires the three subsystems into a counter.
//
// Every subsystem is required; a nil one is reported as NotWiredError naming
// the missing piece, so the composition root fails loudly instead of the
// first customer.
func NewCounter(inv Inventory, pay Payments, kit Kitchen, opts ...Option) (*Counter, error) {
	if inv == nil {
		return nil, NotWiredError{Subsystem: "inventory"}
	}
	if pay == nil {
		return nil, NotWiredError{Subsystem: "payments"}
	}
	if kit == nil {
		return nil, NotWiredError{Subsystem: "kitchen"}
	}

	c := &Counter{inventory: inv, payments: pay, kitchen: kit}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PlaceOrder runs the full front-of-house flow: reserve ingredients, charge
// the customer, queue the pizza.
//
// A failed charge releases the reservation before the error is returned, so
// a declined card never strands ingredients.
func (c *Counter) PlaceOrder(o Order) (*Confirmation, error) {
	if o.Customer == "" {
		return nil, ErrNoCustomer
	}
	if o.Pizza == "" {
		return nil, ErrNoPizza
	}

	if err := c.inventory.Reserve(o.Pizza); err != nil {
		return nil, fmt.Errorf("facade: reserve %q: %w", o.Pizza, err)
	}
	if c.log != nil {
		c.log.Debug("ingredients reserved", "pizza", o.Pizza)
	}

	receipt, err := c.payments.Charge(o.Customer, o.Cents)
	if err != nil {
		c.inventory.Release(o.Pizza)
		if c.log != nil {
			c.log.Debug("charge failed, reservation released", "pizza", o.Pizza, "customer", o.Customer)
		}
		return nil, fmt.Errorf("facade: charge %q: %w", o.Customer, err)
	}

	ticket := c.kitchen.Queue(o.Pizza)
	if c.log != nil {
		c.log.Debug("order placed", "pizza", o.Pizza, "ticket", ticket, "receipt", receipt)
	}

	return &Confirmation{Ticket: ticket, Receipt: receipt}, nil
}
