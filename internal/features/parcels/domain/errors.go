package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when a parcel with the same ID is already in the collection.
	ErrDuplicateID = errors.New("parcel id already exists")
	// ErrNotFound is returned when no parcel with the requested ID is in the collection.
	ErrNotFound = errors.New("parcel not found")
	// ErrEmptyCollection is returned by Pop and Dequeue on an empty collection.
	ErrEmptyCollection = errors.New("collection is empty")
)

// ParcelError describes a rejected operation on a collection.
// It unwraps to one of the sentinel errors above.
type ParcelError struct {
	Collection Collection
	Op         string
	// ID is zero for operations that take no id (Pop, Dequeue).
	ID    int
	Cause error
}

// NewDuplicateIDError reports an insert with a colliding id.
func NewDuplicateIDError(c Collection, op string, id int) *ParcelError {
	return &ParcelError{Collection: c, Op: op, ID: id, Cause: ErrDuplicateID}
}

// NewNotFoundError reports a lookup or mutation on an absent id.
func NewNotFoundError(c Collection, op string, id int) *ParcelError {
	return &ParcelError{Collection: c, Op: op, ID: id, Cause: ErrNotFound}
}

// NewEmptyCollectionError reports a removal from an empty collection.
func NewEmptyCollectionError(c Collection, op string) *ParcelError {
	return &ParcelError{Collection: c, Op: op, Cause: ErrEmptyCollection}
}

func (e *ParcelError) Error() string {
	if errors.Is(e.Cause, ErrEmptyCollection) {
		return fmt.Sprintf("%s %s: %v", e.Collection, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v: id %d", e.Collection, e.Op, e.Cause, e.ID)
}

func (e *ParcelError) Unwrap() error {
	return e.Cause
}
