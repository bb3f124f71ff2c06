// Package queries contains read operations for retrieving system state.
// Implements the Query side of the CQRS split: each query is a guarded
// struct with a handler that reads through a repository port and maps
// aggregates to plain response structs.
//
// List queries over products, suppliers and users hide soft deleted
// records; order listings are unfiltered so history stays visible.
package queries
