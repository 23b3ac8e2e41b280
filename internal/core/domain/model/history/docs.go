// Package history models the append-only audit timeline of a unit.
package history
