// Package ledger models piece custody. Each Record says how many pieces of
// a unit one area holds; a Distribution is the whole picture for one unit.
// The conservation invariant (counts sum to the unit's totalPieces, no zero
// rows) is maintained by the transfer settlement service.
package ledger
