// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
//
// All commands follow a consistent shape: a command struct with a validating
// constructor and a kernel.ConstructorGuard, and a handler that validates
// the command, drives the aggregate, and persists it through a repository
// port. Handlers return the affected aggregate so the transport layer can
// render it without a follow-up read.
package commands
