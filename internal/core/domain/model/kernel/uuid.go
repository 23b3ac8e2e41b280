package kernel

import (
	"fmt"

	"tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID that
// never went through a constructor.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identity value object of the tracker. Units, transfers,
// history events and users are all keyed by one; the wrapped
// github.com/google/uuid value stays private so identifiers only come into
// existence through a constructor.
//
// The zero value is invalid; Validate exposes that to aggregate and command
// constructors, which refuse it.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 identifier. Every freshly created
// unit, transfer and history event gets its identity here.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses an identifier from its text form, as it arrives in
// URL path segments and the X-User-ID header.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs an identifier from its 16-byte binary form,
// used when restoring rows whose key columns are stored as uuid. The nil
// UUID is rejected: a persisted row can never carry an unconstructed
// identity.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-..." text form, used in JSON
// responses, notification payloads and history descriptions.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the wrapped uuid.UUID for use as a query parameter against
// uuid-typed columns. Slice it (`u.Bytes()[:]`) for a raw byte form.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers name the same object.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value. Aggregate and command constructors call
// this on every identity field they receive.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
