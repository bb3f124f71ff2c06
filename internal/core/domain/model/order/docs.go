// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves through a linear lifecycle:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition ever leaves them.
// The aggregate enforces every transition precondition itself; callers only
// ever see the named transitions (Confirm, Ship, Deliver, Cancel).
package order
