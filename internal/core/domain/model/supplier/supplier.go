// Package supplier contains the Supplier aggregate: a flat validated record
// with soft delete. Name and email are required, email must look like one.
package supplier

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrSupplierIsNotConstructed is returned when a Supplier instance was not
// created through the NewSupplier factory method.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

// Supplier represents a goods supplier. Phone number and address are
// optional; name and a plausible email are mandatory.
type Supplier struct {
	id          kernel.UUID
	name        string
	email       string
	phoneNumber string
	address     string
	isActive    bool

	isConstructed bool
}

// NewSupplier creates an active Supplier with a generated identity.
func NewSupplier(name, email, phoneNumber, address string) (*Supplier, error) {
	s := &Supplier{
		id:            kernel.NewUUID(),
		isActive:      true,
		isConstructed: true,
	}

	if err := s.setInfo(name, email, phoneNumber, address); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Supplier instance was created through NewSupplier.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}

	return nil
}

// IsEqual compares two suppliers by their unique identifiers.
func (s *Supplier) IsEqual(other *Supplier) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier name.
func (s *Supplier) Name() string {
	return s.name
}

// Email returns the supplier contact email.
func (s *Supplier) Email() string {
	return s.email
}

// PhoneNumber returns the optional phone number.
func (s *Supplier) PhoneNumber() string {
	return s.phoneNumber
}

// Address returns the optional postal address.
func (s *Supplier) Address() string {
	return s.address
}

// IsActive reports whether the supplier is active (not soft-deleted).
func (s *Supplier) IsActive() bool {
	return s.isActive
}

// UpdateInfo replaces the supplier's contact details, applying the same
// validation as construction.
func (s *Supplier) UpdateInfo(name, email, phoneNumber, address string) error {
	return s.setInfo(name, email, phoneNumber, address)
}

// SetActive implements kernel.Deactivatable. Unconditional and idempotent.
func (s *Supplier) SetActive(active bool) {
	s.isActive = active
}

func (s *Supplier) setInfo(name, email, phoneNumber, address string) error {
	if kernel.IsBlank(name) {
		return errs.NewValueIsRequiredError("supplier name")
	}

	if kernel.IsBlank(email) {
		return errs.NewValueIsRequiredError("supplier email")
	}

	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"supplier email",
			errors.New("email must contain an @ sign"),
		)
	}

	s.name = name
	s.email = email
	s.phoneNumber = phoneNumber
	s.address = address
	return nil
}
