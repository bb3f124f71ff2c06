package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/supplier"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrUpdateSupplierCommandIsNotConstructed = errors.New(
	"UpdateSupplierCommand must be created via NewUpdateSupplierCommand constructor",
)

// UpdateSupplierCommand represents a request to replace a supplier's
// contact information. Validation mirrors creation.
type UpdateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID  kernel.UUID
	name        string
	email       string
	phoneNumber string
	address     string

	guard kernel.ConstructorGuard
}

// NewUpdateSupplierCommand creates a command to update a supplier.
func NewUpdateSupplierCommand(
	supplierID kernel.UUID,
	name, email, phoneNumber, address string,
) (UpdateSupplierCommand, error) {
	cmd := UpdateSupplierCommand{
		phoneNumber: phoneNumber,
		address:     address,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSupplierID(supplierID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return UpdateSupplierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSupplierCommandIsNotConstructed)
}

// SupplierID returns the target supplier's identifier.
func (c UpdateSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the replacement supplier name.
func (c UpdateSupplierCommand) Name() string {
	return c.name
}

// Email returns the replacement contact email.
func (c UpdateSupplierCommand) Email() string {
	return c.email
}

// PhoneNumber returns the replacement phone number.
func (c UpdateSupplierCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the replacement postal address.
func (c UpdateSupplierCommand) Address() string {
	return c.address
}

func (c *UpdateSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier id", err)
	}

	c.supplierID = supplierID
	return nil
}

func (c *UpdateSupplierCommand) setName(name string) error {
	if kernel.IsBlank(name) {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateSupplierCommand) setEmail(email string) error {
	if kernel.IsBlank(email) {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

// UpdateSupplierCommandHandler handles supplier updates.
type UpdateSupplierCommandHandler struct {
	suppliers ports.SupplierRepository
}

// NewUpdateSupplierCommandHandler creates a handler for supplier updates.
func NewUpdateSupplierCommandHandler(suppliers ports.SupplierRepository) UpdateSupplierCommandHandler {
	return UpdateSupplierCommandHandler{suppliers: suppliers}
}

// Handle loads the supplier, applies the new info and persists the result.
func (h UpdateSupplierCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateSupplierCommand,
) (*supplier.Supplier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.suppliers.Get(ctx, cmd.SupplierID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.UpdateInfo(cmd.Name(), cmd.Email(), cmd.PhoneNumber(), cmd.Address()); err != nil {
		return nil, err
	}

	if err := h.suppliers.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
