// Package kernel contains the shared value objects of the domain model:
// identifiers and production areas. These types are immutable, validate
// themselves on construction, and are used by every aggregate in the system.
//
// The zero value of each type is invalid by design; construct values through
// the provided factory functions and check Validate() when reconstructing
// from persistence or external input.
package kernel
