// Package builder shows the builder pattern the way Go code actually writes
// it: a required value fixed at construction time, plus chainable mutators
// that flip optional attributes on and return the receiver.
//
// The constructed thing is a pizza. The base is mandatory, chosen exactly
// once, and immutable afterwards. Toppings are optional booleans that start
// unset and can only be switched on; adding the same topping twice is a
// no-op, and the order of Add calls never changes the final pizza.
//
// Two styles exist for builders in Go: mutate-and-return-receiver (this
// package) and copy-on-write value builders. The mutating style fits here
// because the pizza is exclusively owned by the caller assembling it; no
// sharing happens mid-chain, so there is nothing to protect with copies.
//
// Usage:
//
//	p, err := builder.New("gluten free")
//	if err != nil {
//		// only possible failure: blank base
//	}
//	p.AddPepperoni().AddMushrooms()
//	fmt.Println(p) // gluten free pizza + pepperoni + mushrooms
package builder
