package singleton_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fornaio/gopatterns/creational/singleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_SameInstance verifies repeated Default calls return the same
// oven.
func TestDefault_SameInstance(t *testing.T) {
	t.Parallel()

	first := singleton.Default()
	require.NotNil(t, first)

	for i := 0; i < 10; i++ {
		assert.Same(t, first, singleton.Default())
	}
}

// TestDefault_SameInstanceUnderConcurrency verifies Default never hands out a
// second oven, even when many goroutines race the first call.
func TestDefault_SameInstanceUnderConcurrency(t *testing.T) {
	t.Parallel()

	const goroutines = 64

	ovens := make([]*singleton.Oven, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			ovens[i] = singleton.Default()
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.Same(t, ovens[0], ovens[i])
	}
}

// TestNew_IsolatedInstances verifies New ovens are independent of each other
// and of the shared one.
func TestNew_IsolatedInstances(t *testing.T) {
	t.Parallel()

	a := singleton.New()
	b := singleton.New()
	require.NotSame(t, a, b)
	require.NotSame(t, a, singleton.Default())

	a.Bake("margherita")
	assert.Equal(t, 1, a.Bakes())
	assert.Equal(t, 0, b.Bakes())
}

// TestBake_ReceiptsAndLast verifies receipt numbers increase from 1 and Last
// tracks the most recent bake.
func TestBake_ReceiptsAndLast(t *testing.T) {
	t.Parallel()

	o := singleton.New()

	_, ok := o.Last()
	assert.False(t, ok, "cold oven has no last bake")

	assert.Equal(t, 1, o.Bake("margherita"))
	assert.Equal(t, 2, o.Bake("diavola"))

	last, ok := o.Last()
	require.True(t, ok)
	assert.Equal(t, "diavola", last)
	assert.Equal(t, 2, o.Bakes())
}

// TestBake_ConcurrencySafe verifies the bake counter never loses increments
// under parallel load.
func TestBake_ConcurrencySafe(t *testing.T) {
	t.Parallel()

	const (
		goroutines = 16
		perG       = 50
	)

	o := singleton.New()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		g := g
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				o.Bake(fmt.Sprintf("order-%d-%d", g, i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perG, o.Bakes())
}
