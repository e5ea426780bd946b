// Package state shows the state pattern: an object whose legal operations
// depend on which state it is in, with the transition rules kept in one
// table instead of scattered through if-chains.
//
// The object here is an order Ticket moving through the shop. A ticket is
// received, prepared, baked, sent out and delivered; it can be canceled up
// until it leaves the kitchen. Every move is checked against the transition
// table and recorded, so a ticket can always tell where it has been.
package state

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// Status is one stop in a ticket's life.
type Status string

// The statuses a ticket can be in.
const (
	StatusReceived   Status = "received"
	StatusPreparing  Status = "preparing"
	StatusBaking     Status = "baking"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCanceled   Status = "canceled"
)

// ErrClosed is returned by Advance and Cancel once a ticket has reached a
// terminal status.
var ErrClosed = errors.New("state: ticket already closed")

// UnknownStatusError is returned by To for a status outside the lifecycle.
type UnknownStatusError struct {
	Status Status
}

// Error implements the error interface.
func (e UnknownStatusError) Error() string {
	return fmt.Sprintf("state: unknown status %s", strconv.Quote(string(e.Status)))
}

// TransitionError is returned for a move the transition table does not
// allow.
type TransitionError struct {
	From Status
	To   Status
}

// Error implements the error interface.
func (e TransitionError) Error() string {
	return fmt.Sprintf("state: cannot go from %s to %s",
		strconv.Quote(string(e.From)), strconv.Quote(string(e.To)))
}

// transitions is the whole lifecycle. A status maps to the statuses a
// ticket may move to next; terminal statuses map to nothing. Once a pizza
// is out for delivery it can no longer be canceled.
var transitions = map[Status][]Status{
	StatusReceived:   {StatusPreparing, StatusCanceled},
	StatusPreparing:  {StatusBaking, StatusCanceled},
	StatusBaking:     {StatusDelivering, StatusCanceled},
	StatusDelivering: {StatusDelivered},
	StatusDelivered:  nil,
	StatusCanceled:   nil,
}

// next is the happy path Advance follows.
var next = map[Status]Status{
	StatusReceived:   StatusPreparing,
	StatusPreparing:  StatusBaking,
	StatusBaking:     StatusDelivering,
	StatusDelivering: StatusDelivered,
}

// allowed reports whether the table permits moving from one status to
// another.
func allowed(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Ticket is an order working its way through the shop. A fresh ticket
// starts at StatusReceived. Safe for concurrent use.
type Ticket struct {
	pizza string

	mu      sync.Mutex
	status  Status
	history []Status
}

// NewTicket opens a ticket for the given pizza.
func NewTicket(pizza string) *Ticket {
	return &Ticket{
		pizza:   pizza,
		status:  StatusReceived,
		history: []Status{StatusReceived},
	}
}

// Status reports where the ticket currently is.
func (t *Ticket) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.status
}

// Closed reports whether the ticket has reached a terminal status.
func (t *Ticket) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(transitions[t.status]) == 0
}

// History returns every status the ticket has been in, oldest first.
func (t *Ticket) History() []Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Status(nil), t.history...)
}

// move performs the checked transition. Callers hold mu.
func (t *Ticket) move(target Status) error {
	if !allowed(t.status, target) {
		return TransitionError{From: t.status, To: target}
	}

	t.status = target
	t.history = append(t.history, target)
	return nil
}

// To moves the ticket to target. It returns an UnknownStatusError for a
// status outside the lifecycle and a TransitionError for a move the table
// forbids; on either error the ticket stays where it was.
func (t *Ticket) To(target Status) error {
	if _, ok := transitions[target]; !ok {
		return UnknownStatusError{Status: target}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.move(target)
}

// Advance moves the ticket one step along the happy path. It returns
// ErrClosed once the ticket is delivered or canceled.
func (t *Ticket) Advance() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	target, ok := next[t.status]
	if !ok {
		return ErrClosed
	}
	return t.move(target)
}

// Cancel closes the ticket if the pizza has not left the kitchen yet. It
// returns ErrClosed for an already closed ticket and a TransitionError when
// the order is out for delivery.
func (t *Ticket) Cancel() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(transitions[t.status]) == 0 {
		return ErrClosed
	}
	return t.move(StatusCanceled)
}

// String renders the ticket as "<pizza>: <status>".
func (t *Ticket) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return fmt.Sprintf("%s: %s", t.pizza, t.status)
}
