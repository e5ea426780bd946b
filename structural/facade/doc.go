// Package facade shows the facade pattern: one front-of-house call that hides
// the subsystem choreography behind placing a pizza order.
//
// Placing an order really means three things: reserving ingredients, charging
// the card, and queueing the pizza in the kitchen. Callers talk to a Counter
// and never learn that; the Counter owns the ordering of the steps and the
// compensation when a later step fails (a declined card puts the reserved
// ingredients back).
//
// The subsystems are interfaces so tests and composition roots can swap them.
// In-memory implementations (Stockroom, CardReader, Line) ship in the package
// so the facade is usable out of the box.
package facade
