package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/supplier"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrCreateSupplierCommandIsNotConstructed = errors.New(
	"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
)

// CreateSupplierCommand represents a request to register a supplier.
// Email format and required fields are enforced by the supplier aggregate;
// the command checks only for blank name and email up front.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	name        string
	email       string
	phoneNumber string
	address     string

	guard kernel.ConstructorGuard
}

// NewCreateSupplierCommand creates a command to register a supplier.
func NewCreateSupplierCommand(name, email, phoneNumber, address string) (CreateSupplierCommand, error) {
	cmd := CreateSupplierCommand{
		phoneNumber: phoneNumber,
		address:     address,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return CreateSupplierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

// Name returns the supplier name.
func (c CreateSupplierCommand) Name() string {
	return c.name
}

// Email returns the supplier contact email.
func (c CreateSupplierCommand) Email() string {
	return c.email
}

// PhoneNumber returns the optional phone number.
func (c CreateSupplierCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the optional postal address.
func (c CreateSupplierCommand) Address() string {
	return c.address
}

func (c *CreateSupplierCommand) setName(name string) error {
	if kernel.IsBlank(name) {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateSupplierCommand) setEmail(email string) error {
	if kernel.IsBlank(email) {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

// CreateSupplierCommandHandler handles supplier registration.
type CreateSupplierCommandHandler struct {
	suppliers ports.SupplierRepository
}

// NewCreateSupplierCommandHandler creates a handler for supplier creation.
func NewCreateSupplierCommandHandler(suppliers ports.SupplierRepository) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{suppliers: suppliers}
}

// Handle creates the supplier and persists it.
func (h CreateSupplierCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSupplierCommand,
) (*supplier.Supplier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := supplier.NewSupplier(cmd.Name(), cmd.Email(), cmd.PhoneNumber(), cmd.Address())
	if err != nil {
		return nil, err
	}

	if err := h.suppliers.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
