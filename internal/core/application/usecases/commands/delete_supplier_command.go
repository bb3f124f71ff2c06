package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var ErrDeleteSupplierCommandIsNotConstructed = errors.New(
	"DeleteSupplierCommand must be created via NewDeleteSupplierCommand constructor",
)

// DeleteSupplierCommand represents a request to soft delete a supplier.
// Products keep their supplier reference; only the supplier record is
// deactivated.
type DeleteSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDeleteSupplierCommand creates a command to soft delete a supplier.
func NewDeleteSupplierCommand(supplierID kernel.UUID) (DeleteSupplierCommand, error) {
	cmd := DeleteSupplierCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setSupplierID(supplierID); err != nil {
		return DeleteSupplierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteSupplierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSupplierCommandIsNotConstructed)
}

// SupplierID returns the target supplier's identifier.
func (c DeleteSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

func (c *DeleteSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier id", err)
	}

	c.supplierID = supplierID
	return nil
}

// DeleteSupplierCommandHandler handles supplier soft deletion.
type DeleteSupplierCommandHandler struct {
	suppliers ports.SupplierRepository
}

// NewDeleteSupplierCommandHandler creates a handler for supplier deletion.
func NewDeleteSupplierCommandHandler(suppliers ports.SupplierRepository) DeleteSupplierCommandHandler {
	return DeleteSupplierCommandHandler{suppliers: suppliers}
}

// Handle loads the supplier, deactivates it and persists the result.
func (h DeleteSupplierCommandHandler) Handle(ctx context.Context, cmd DeleteSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.suppliers.Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	aggregate.SetActive(false)

	return h.suppliers.Save(ctx, aggregate)
}
