package iterator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornaio/gopatterns/behavioral/iterator"
)

func TestFromSlice_Next(t *testing.T) {
	t.Parallel()

	it := iterator.FromSlice([]string{"margherita", "diavola"})

	first, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "margherita", first)

	second, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "diavola", second)

	_, err = it.Next()
	assert.ErrorIs(t, err, iterator.Done)
}

func TestFromSlice_DoneStaysDone(t *testing.T) {
	t.Parallel()

	it := iterator.FromSlice([]int{})

	for i := 0; i < 3; i++ {
		v, err := it.Next()
		assert.ErrorIs(t, err, iterator.Done)
		assert.Zero(t, v, "an exhausted iterator yields the zero value")
	}
}

func TestFromSlice_CopiesInput(t *testing.T) {
	t.Parallel()

	elems := []string{"margherita"}
	it := iterator.FromSlice(elems)

	elems[0] = "graffiti"

	got, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "margherita", got)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	got, err := iterator.Collect(iterator.FromSlice([]int{1, 2, 3}))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()

	got, err := iterator.Collect(iterator.FromSlice[string](nil))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEach_StopsOnError(t *testing.T) {
	t.Parallel()

	errBurnt := errors.New("burnt crust")

	var seen []string
	err := iterator.Each(iterator.FromSlice([]string{"a", "b", "c"}), func(s string) error {
		seen = append(seen, s)
		if s == "b" {
			return errBurnt
		}
		return nil
	})

	require.ErrorIs(t, err, errBurnt)
	assert.Equal(t, []string{"a", "b"}, seen, "iteration must stop at the failing element")
}

func TestEach_VisitsAll(t *testing.T) {
	t.Parallel()

	var sum int
	err := iterator.Each(iterator.FromSlice([]int{1, 2, 3, 4}), func(n int) error {
		sum += n
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 10, sum)
}

func TestOrderLog_Take(t *testing.T) {
	t.Parallel()

	log := iterator.NewOrderLog()

	first := log.Take("ada", "margherita")
	second := log.Take("bo", "gluten free special")

	assert.Equal(t, 1, first.Ticket)
	assert.Equal(t, 2, second.Ticket)
	assert.Equal(t, 2, log.Len())
}

func TestOrderLog_OrdersIsASnapshot(t *testing.T) {
	t.Parallel()

	log := iterator.NewOrderLog()
	log.Take("ada", "margherita")

	it := log.Orders()

	// New orders must not leak into an iterator handed out earlier.
	log.Take("bo", "diavola")

	orders, err := iterator.Collect(it)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ada", orders[0].Customer)

	later, err := iterator.Collect(log.Orders())
	require.NoError(t, err)
	assert.Len(t, later, 2)
}

func TestOrderLog_EmptyIteratesToDone(t *testing.T) {
	t.Parallel()

	it := iterator.NewOrderLog().Orders()

	_, err := it.Next()
	assert.ErrorIs(t, err, iterator.Done)
}
