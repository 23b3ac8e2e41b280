// Package unit contains the Unit aggregate: the immutable identity and
// total piece count of a tracked work unit, plus its lifecycle state
// machine. Orders and repositions share the aggregate but follow different
// status sets; see Kind and Status.
//
// The piece distribution across areas is not stored here (it lives in the
// ledger package), but the aggregate carries the denormalized currentArea,
// maintained by the transfer protocol under the single-holder rule.
package unit
