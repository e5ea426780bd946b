package facade

import (
	"fmt"
	"sync"
)

// Stockroom is an in-memory Inventory tracking how many portions of each
// pizza's ingredients remain. Safe for concurrent use.
type Stockroom struct {
	mu       sync.Mutex
	portions map[string]int
}

// NewStockroom builds a stockroom from a portions map (pizza name → how many
// can still be made). The map is copied.
func NewStockroom(portions map[string]int) *Stockroom {
	s := &Stockroom{portions: make(map[string]int, len(portions))}
	for pizza, n := range portions {
		s.portions[pizza] = n
	}
	return s
}

// Reserve implements Inventory.
func (s *Stockroom) Reserve(pizza string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.portions[pizza] <= 0 {
		return ErrOutOfStock
	}
	s.portions[pizza]--
	return nil
}

// Release implements Inventory.
func (s *Stockroom) Release(pizza string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.portions[pizza]++
}

// Portions reports how many of the pizza can still be made.
func (s *Stockroom) Portions(pizza string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.portions[pizza]
}

// CardReader is an in-memory Payments that declines any charge above its
// limit. Safe for concurrent use.
type CardReader struct {
	mu       sync.Mutex
	limit    int
	receipts int
}

// NewCardReader builds a card reader declining charges above limitCents.
func NewCardReader(limitCents int) *CardReader {
	return &CardReader{limit: limitCents}
}

// Charge implements Payments. Receipts are numbered sequentially
// ("rcpt-0001", "rcpt-0002", ...).
func (r *CardReader) Charge(customer string, cents int) (string, error) {
	if cents > r.limit {
		return "", DeclinedError{Customer: customer, Cents: cents}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.receipts++
	return fmt.Sprintf("rcpt-%04d", r.receipts), nil
}

// Line is an in-memory Kitchen: a ticketed queue of pizzas waiting for the
// oven. Safe for concurrent use.
type Line struct {
	mu      sync.Mutex
	tickets int
	pending []string
}

// NewLine returns an empty kitchen line.
func NewLine() *Line {
	return &Line{}
}

// Queue implements Kitchen. Tickets are numbered from 1.
func (l *Line) Queue(pizza string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tickets++
	l.pending = append(l.pending, pizza)
	return l.tickets
}

// Pending returns a copy of the queued pizzas in order.
func (l *Line) Pending() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.pending...)
}
