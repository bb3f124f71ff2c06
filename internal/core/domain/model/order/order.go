package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the back office. It is the aggregate
// root that manages the order lifecycle from creation through confirmation,
// shipping and delivery, with cancellation as a side branch.
//
// Order follows these invariants:
//   - Identity, order number and creation date are generated once and immutable
//   - The customer reference is set at creation and immutable
//   - Both totals are non-negative and the gross total never undercuts the net total
//   - Status transitions follow the rules encoded in the Status state machine
//   - Once Cancelled or Delivered, no field changes any more
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable code, generated once at creation
	orderNumber string

	// orderDate is the UTC creation timestamp
	orderDate time.Time

	// customerID references the ordering customer
	customerID kernel.UUID

	// totalExcludingTax and totalIncludingTax are the supplied order totals;
	// both start at zero and are always replaced together
	totalExcludingTax decimal.Decimal
	totalIncludingTax decimal.Decimal

	// status is the current state in the order lifecycle
	status Status

	// deliveryAddress is editable only while the order is Pending or Confirmed
	deliveryAddress string

	// notes is optional free text
	notes string

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid Order, ensuring all business invariants are maintained.
//
// The customer id must be a valid UUID and the delivery address must not be
// empty. The constructor generates the identity, the order number and the UTC
// creation timestamp, and starts the order as Pending with zero totals.
func NewOrder(customerID kernel.UUID, deliveryAddress string, notes string) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		id:                kernel.NewUUID(),
		orderNumber:       generateOrderNumber(now),
		orderDate:         now,
		totalExcludingTax: decimal.Zero,
		totalIncludingTax: decimal.Zero,
		status:            Pending,
		notes:             notes,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order code.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// OrderDate returns the UTC creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TotalAmountExcludingTax returns the net order total.
func (o *Order) TotalAmountExcludingTax() decimal.Decimal {
	return o.totalExcludingTax
}

// TotalAmountIncludingTax returns the gross order total.
func (o *Order) TotalAmountIncludingTax() decimal.Decimal {
	return o.totalIncludingTax
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// UpdateTotals replaces both order totals atomically.
//
// Business rules:
//   - The net amount must not be negative
//   - The gross amount must be greater than or equal to the net amount
//   - Cancelled and Delivered orders are frozen
func (o *Order) UpdateTotals(amountExcludingTax, amountIncludingTax decimal.Decimal) error {
	if amountExcludingTax.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount excluding tax",
			errors.New("the amount excluding tax cannot be negative"),
		)
	}

	if amountIncludingTax.LessThan(amountExcludingTax) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount including tax",
			errors.New("the amount including tax must be greater than or equal to the amount excluding tax"),
		)
	}

	if o.status == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			errors.New("cannot modify a cancelled order"),
		)
	}

	if o.status == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			errors.New("cannot modify an already delivered order"),
		)
	}

	o.totalExcludingTax = amountExcludingTax
	o.totalIncludingTax = amountIncludingTax
	return nil
}

// Confirm moves the order from Pending to Confirmed.
//
// Beyond the state machine rule, an order cannot be confirmed with no amount:
// the net total must be strictly positive.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	if !o.totalExcludingTax.GreaterThan(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order total",
			errors.New("cannot confirm an order with no amount"),
		)
	}

	return o.changeStatus(newStatus)
}

// Ship moves the order from Confirmed to Shipped.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	return o.changeStatus(newStatus)
}

// Deliver moves the order from Shipped to Delivered, the terminal success state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	return o.changeStatus(newStatus)
}

// Cancel abandons the order. Only Pending and Confirmed orders can be
// cancelled; cancelling an already cancelled order is a no-op.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	return o.changeStatus(newStatus)
}

// UpdateDeliveryAddress replaces the delivery address.
// The address must not be empty and the order must still be editable
// (Pending or Confirmed).
func (o *Order) UpdateDeliveryAddress(newAddress string) error {
	if kernel.IsBlank(newAddress) {
		return errs.NewValueIsRequiredError("delivery address")
	}

	if !o.status.AllowsAddressChange() {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			errors.New("cannot change the address of a shipped, delivered or cancelled order"),
		)
	}

	o.deliveryAddress = newAddress
	return nil
}

// changeStatus is the low-level transition primitive the named transitions
// build on. It only refuses to leave a terminal state; every higher-level
// precondition (legal source state, positive total) is the caller's duty.
func (o *Order) changeStatus(newStatus Status) error {
	if o.status == Cancelled && newStatus != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			errors.New("cannot reactivate a cancelled order"),
		)
	}

	if o.status == Delivered && newStatus != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			errors.New("cannot modify an already delivered order"),
		)
	}

	o.status = newStatus
	return nil
}

// setCustomerID validates and sets the customer reference.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

// setDeliveryAddress validates and sets the delivery address.
// This is a private method used only during construction.
func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if kernel.IsBlank(deliveryAddress) {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}
