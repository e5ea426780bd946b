// Package iterator shows the iterator pattern: sequential access to the
// elements of a collection without exposing how the collection stores them.
//
// The collection here is an OrderLog, the running list of pizza orders a
// shop takes during the day. Its Orders method hands out an Iterator over a
// stable snapshot, so the kitchen can walk yesterday's tickets while the
// counter keeps appending new ones.
package iterator

// done is the type behind Done. Keeping it unexported means the only value
// of it callers can ever see is Done itself.
type done int

// Error implements the error interface.
func (done) Error() string { return "iterator: no more elements" }

// Done is returned by Next once the sequence is exhausted. Every later call
// returns Done again; exhaustion is not an error condition worth wrapping.
const Done done = 0

// Iterator yields the elements of some sequence one at a time.
type Iterator[T any] interface {
	// Next returns the next element, or Done once the sequence is over.
	Next() (T, error)
}

// slice is the Iterator behind FromSlice and OrderLog.Orders.
type slice[T any] struct {
	elems []T
	pos   int
}

var _ Iterator[int] = (*slice[int])(nil)

// Next implements Iterator.
func (s *slice[T]) Next() (T, error) {
	if s.pos >= len(s.elems) {
		var zero T
		return zero, Done
	}

	elem := s.elems[s.pos]
	s.pos++
	return elem, nil
}

// FromSlice returns an Iterator over a copy of elems. Mutating elems after
// the call does not affect the iteration.
func FromSlice[T any](elems []T) Iterator[T] {
	return &slice[T]{elems: append([]T(nil), elems...)}
}

// Collect drains it into a slice. It returns the elements seen so far and
// the first error other than Done.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T
	for {
		elem, err := it.Next()
		if err == Done {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, elem)
	}
}

// Each calls fn for every element until the sequence is exhausted. If fn
// returns an error, iteration stops and that error is returned.
func Each[T any](it Iterator[T], fn func(T) error) error {
	for {
		elem, err := it.Next()
		if err == Done {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(elem); err != nil {
			return err
		}
	}
}
