// Package gopatterns collects the classic design patterns as small,
// self-contained Go packages.
//
// The repository is teaching material: each pattern lives in its own package
// with no dependency on any other pattern, told through the same running
// example (a small pizzeria) so the code stays concrete:
//
//   - creational/builder:   step-wise construction of a pizza from a required
//     base plus chainable optional toppings
//   - creational/singleton: the pizzeria's one shared oven (sync.Once)
//   - creational/prototype: menu presets cloned per order, never aliased
//   - creational/factory:   ovens built by kind, with an extensible registry
//   - structural/facade:    one PlaceOrder call over stock, payment and kitchen
//   - structural/proxy:     a caching stand-in for an expensive menu source
//   - behavioral/iterator:  Done-sentinel iteration over orders
//   - behavioral/observer:  order events fanned out to subscribers
//   - behavioral/mediator:  shop stations talking only through a dispatcher
//   - behavioral/state:     the order lifecycle as an explicit transition table
//
// The goal is not a framework. Each package shows the shape Go gives a pattern
// once interfaces, closures and composite literals replace class hierarchies,
// and keeps the surface area intentionally small.
//
// Start with the README, then the runnable walkthroughs:
//   - examples/creational, examples/structural, examples/behavioral
//   - cmd/patterns: an interactive browser over all ten demos
package gopatterns
