// Package kernel provides core domain primitives and utilities for the back-office system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Price: A value object representing a net amount with its VAT rate
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//   - Deactivatable: The shared soft-delete capability of catalog aggregates
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
