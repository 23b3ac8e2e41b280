// Package services provides domain services that coordinate operations
// across multiple aggregates.
//
// The package includes:
//   - TransferSettler: applies an accepted transfer to a unit's piece
//     distribution while preserving piece conservation
//
// Domain services hold the business logic that does not naturally belong to
// a single aggregate root.
package services
