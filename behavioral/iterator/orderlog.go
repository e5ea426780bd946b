package iterator

import "sync"

// Order is one ticket in the log.
type Order struct {
	Ticket   int
	Customer string
	Pizza    string
}

// OrderLog collects the orders a shop takes. Tickets are numbered from 1 in
// the order they arrive. Safe for concurrent use.
//
// The log never hands out its backing slice; traversal goes through Orders.
type OrderLog struct {
	mu     sync.RWMutex
	orders []Order
}

// NewOrderLog returns an empty log.
func NewOrderLog() *OrderLog {
	return &OrderLog{}
}

// Take records an order and returns it with its ticket number filled in.
func (l *OrderLog) Take(customer, pizza string) Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	order := Order{
		Ticket:   len(l.orders) + 1,
		Customer: customer,
		Pizza:    pizza,
	}
	l.orders = append(l.orders, order)
	return order
}

// Len reports how many orders have been taken.
func (l *OrderLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.orders)
}

// Orders returns an Iterator over a snapshot of the log. Orders taken after
// the call do not show up in the returned iterator.
func (l *OrderLog) Orders() Iterator[Order] {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return FromSlice(l.orders)
}
