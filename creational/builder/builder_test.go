package builder_test

import (
	"errors"
	"testing"

	"github.com/fornaio/gopatterns/creational/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toppingState flattens a pizza's observable topping flags for comparisons.
func toppingState(p *builder.Pizza) [3]bool {
	return [3]bool{p.HasPepperoni(), p.HasMushrooms(), p.HasExtraCheese()}
}

//
// -----------------------------------------------------------------------------
// New / MustNew
// -----------------------------------------------------------------------------

// TestNew_SetsBaseAndNoToppings verifies New fixes the base and leaves every
// topping unset.
func TestNew_SetsBaseAndNoToppings(t *testing.T) {
	t.Parallel()

	bases := []string{"gluten free", "sourdough", "thin crust"}
	for _, base := range bases {
		base := base
		t.Run(base, func(t *testing.T) {
			t.Parallel()

			p, err := builder.New(base)
			require.NoError(t, err)
			require.NotNil(t, p)

			assert.Equal(t, base, p.Base())
			assert.Equal(t, [3]bool{false, false, false}, toppingState(p))
			assert.Empty(t, p.Toppings())
		})
	}
}

// TestNew_BlankBase verifies New rejects empty and whitespace-only bases with
// ErrNoBase.
func TestNew_BlankBase(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", " ", "\t\n"} {
		p, err := builder.New(base)
		require.Error(t, err)
		assert.True(t, errors.Is(err, builder.ErrNoBase))
		assert.Nil(t, p)
	}
}

// TestMustNew_ReturnsPizza verifies MustNew behaves like New on valid input.
func TestMustNew_ReturnsPizza(t *testing.T) {
	t.Parallel()

	p := builder.MustNew("gluten free")
	require.NotNil(t, p)
	assert.Equal(t, "gluten free", p.Base())
}

// TestMustNew_PanicsOnBlankBase verifies MustNew panics with ErrNoBase.
func TestMustNew_PanicsOnBlankBase(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, builder.ErrNoBase.Error(), func() {
		_ = builder.MustNew("   ")
	})
}

//
// -----------------------------------------------------------------------------
// Chaining
// -----------------------------------------------------------------------------

// TestAdd_ChainSetsExactlyInvokedToppings verifies a chain flips exactly the
// invoked toppings: gluten free + pepperoni + mushrooms leaves extra cheese
// unset.
func TestAdd_ChainSetsExactlyInvokedToppings(t *testing.T) {
	t.Parallel()

	p := builder.MustNew("gluten free").AddPepperoni().AddMushrooms()

	assert.Equal(t, "gluten free", p.Base())
	assert.Equal(t, [3]bool{true, true, false}, toppingState(p))
}

// TestAdd_ReturnsSameInstance verifies every Add returns the pizza it mutated,
// not a copy.
func TestAdd_ReturnsSameInstance(t *testing.T) {
	t.Parallel()

	p := builder.MustNew("sourdough")

	require.Same(t, p, p.AddPepperoni())
	require.Same(t, p, p.AddMushrooms())
	require.Same(t, p, p.AddExtraCheese())
}

// TestAdd_Idempotent verifies adding the same topping twice is
// indistinguishable from adding it once.
func TestAdd_Idempotent(t *testing.T) {
	t.Parallel()

	once := builder.MustNew("thin crust").AddPepperoni()
	twice := builder.MustNew("thin crust").AddPepperoni().AddPepperoni()

	assert.Equal(t, toppingState(once), toppingState(twice))
	assert.Equal(t, once.Toppings(), twice.Toppings())
}

// TestAdd_OrderIndependent verifies pepperoni-then-mushrooms equals
// mushrooms-then-pepperoni.
func TestAdd_OrderIndependent(t *testing.T) {
	t.Parallel()

	ab := builder.MustNew("gluten free").AddPepperoni().AddMushrooms()
	ba := builder.MustNew("gluten free").AddMushrooms().AddPepperoni()

	assert.Equal(t, ab.Base(), ba.Base())
	assert.Equal(t, toppingState(ab), toppingState(ba))
	assert.Equal(t, ab.Toppings(), ba.Toppings())
	assert.Equal(t, ab.String(), ba.String())
}

// TestAdd_NeverResets verifies no sequence of Add calls clears a topping that
// was already set.
func TestAdd_NeverResets(t *testing.T) {
	t.Parallel()

	p := builder.MustNew("sourdough").AddExtraCheese()
	require.True(t, p.HasExtraCheese())

	p.AddPepperoni().AddMushrooms().AddExtraCheese().AddPepperoni()
	assert.Equal(t, [3]bool{true, true, true}, toppingState(p))
}

//
// -----------------------------------------------------------------------------
// Observation
// -----------------------------------------------------------------------------

// TestToppings_MenuOrder verifies Toppings lists in menu order no matter the
// chain order.
func TestToppings_MenuOrder(t *testing.T) {
	t.Parallel()

	p := builder.MustNew("gluten free").AddExtraCheese().AddPepperoni()
	assert.Equal(t, []string{"pepperoni", "extra cheese"}, p.Toppings())
}

// TestString_RendersOrderLine verifies the human-readable echo of the pizza.
func TestString_RendersOrderLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		make func() *builder.Pizza
		want string
	}{
		{
			name: "plain",
			make: func() *builder.Pizza { return builder.MustNew("gluten free") },
			want: "gluten free pizza, plain",
		},
		{
			name: "two toppings",
			make: func() *builder.Pizza {
				return builder.MustNew("gluten free").AddPepperoni().AddMushrooms()
			},
			want: "gluten free pizza + pepperoni + mushrooms",
		},
		{
			name: "everything",
			make: func() *builder.Pizza {
				return builder.MustNew("sourdough").AddMushrooms().AddExtraCheese().AddPepperoni()
			},
			want: "sourdough pizza + pepperoni + mushrooms + extra cheese",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.make().String())
		})
	}
}
