package order

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Totals and the delivery address may still change.
	Pending

	// Confirmed indicates the order has been accepted and priced.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	// Cancellation is no longer possible.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was abandoned before shipping.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// transitionTable holds every transition the named operations may perform,
// keyed by the current status. Same-state entries for the terminal statuses
// make repeated cancellation idempotent while still forbidding any escape.
func transitionTable() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		Pending:   {Confirmed: true, Cancelled: true},
		Confirmed: {Shipped: true, Cancelled: true},
		Shipped:   {Delivered: true},
		Delivered: {Delivered: true},
		Cancelled: {Cancelled: true},
	}
}

// canTransitionTo consults the transition table.
func (s Status) canTransitionTo(next Status) bool {
	return transitionTable()[s][next]
}

// Validate checks if the Status value is one of the five defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further progress.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other source status is rejected. The positive-total precondition is
// the aggregate's concern, not the status machine's.
func (s Status) Confirm() (Status, error) {
	if !s.canTransitionTo(Confirmed) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("only pending orders can be confirmed"),
		)
	}

	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
func (s Status) Ship() (Status, error) {
	if !s.canTransitionTo(Shipped) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("only confirmed orders can be shipped"),
		)
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("only shipped orders can be delivered"),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//   - Cancelled -> Cancelled (idempotent)
//
// Shipped and Delivered orders cannot be cancelled, each with its own
// message so the caller can tell the two refusals apart.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("cannot cancel an already delivered order"),
		)
	}

	if s == Shipped {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("cannot cancel an already shipped order"),
		)
	}

	if !s.canTransitionTo(Cancelled) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// AllowsAddressChange reports whether the delivery address may still be edited.
// Only Pending and Confirmed orders accept address changes.
func (s Status) AllowsAddressChange() bool {
	return s == Pending || s == Confirmed
}
