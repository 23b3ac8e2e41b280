// Package transfer models the two-phase custody handshake between areas.
// A transfer is proposed by the source area and settles only when the
// destination accepts it; rejection leaves the piece ledger untouched.
package transfer
